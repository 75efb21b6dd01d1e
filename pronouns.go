package grammatica

import "strings"

// analyzePronoun appends the pronoun record for t and returns the label
// justification. The form sets are checked in a fixed order; "you" and
// "it" read as subjective before objective, and an interrogative or
// relative reading additionally requires a matching dependency relation.
func (e *Engine) analyzePronoun(s *Sentence, t *Token, a *Analysis) []string {
	form := strings.ToLower(t.Text)

	info := PronounInfo{
		I:     t.I,
		Text:  t.Text,
		Lemma: t.Lemma,
		Type:  "other",
		Case:  "(n/a)",
	}

	switch {
	case e.personalSubj.has(form):
		info.Type = "personal"
		info.Case = "subjective"
		info.Why = []string{"Personal pronoun (subjective case)."}
	case e.personalObj.has(form):
		info.Type = "personal"
		info.Case = "objective"
		info.Why = []string{"Personal pronoun (objective case)."}
	case e.possessiveAbs.has(form):
		info.Type = "possessive"
		info.PossessiveForm = "absolute"
		info.Why = []string{"Possessive pronoun (absolute)."}
	case e.possessiveDep.has(form):
		info.Type = "possessive"
		info.PossessiveForm = "dependent"
		info.Why = []string{"Possessive determiner (dependent)."}
	case e.demonstrative.has(form):
		info.Type = "demonstrative"
		info.Why = []string{"Demonstrative pronoun."}
	case e.interrogative.has(form) && interrogativeDeps.has(t.Dep):
		info.Type = "interrogative"
		info.Why = []string{"Interrogative pronoun."}
	case e.relative.has(form) && relativeDeps.has(t.Dep):
		info.Type = "relative"
		info.Why = []string{"Relative pronoun within a clause."}
	case e.reflexive.has(form):
		info.Type = "reflexive"
		info.ReflexiveOrIntensive = true
		info.Why = []string{"Reflexive/Intensive pronoun."}
	default:
		if t.Tag == "PRP" || t.Tag == "PRP$" {
			info.Type = "indefinite"
		}
		info.Why = []string{"Pronoun identified by POS tag and context."}
	}

	a.Pronouns = append(a.Pronouns, info)
	return info.Why
}
