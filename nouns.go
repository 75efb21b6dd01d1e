package grammatica

import "strings"

// isPossessive reports a possessive noun: an 's clitic attached as case,
// or the noun itself standing in a possessor relation.
func isPossessive(s *Sentence, t *Token) bool {
	for _, c := range s.Children(t.I) {
		if s.Tokens[c].Dep == "case" && s.Tokens[c].Text == "'s" {
			return true
		}
	}
	return t.Dep == "poss"
}

// analyzeNoun appends the noun record for t and returns the label
// justification, which restates the record's own reasons.
func (e *Engine) analyzeNoun(s *Sentence, t *Token, a *Analysis) []string {
	proper := properTags.has(t.Tag)
	plural := pluralTags.has(t.Tag)
	possessive := isPossessive(s, t)

	concreteness := "abstract"
	if t.EntType != "" || strings.HasPrefix(t.Tag, "NN") {
		concreteness = "concrete"
	}
	countability := "noncount"
	if plural || nounTags.has(t.Tag) {
		countability = "count"
	}
	collective := e.collectiveLemmas.has(strings.ToLower(t.Lemma))

	why := make([]string, 0, 3)
	if proper {
		why = append(why, "Proper: capitalized name or title form.")
	} else {
		why = append(why, "Common: general category word.")
	}
	if possessive {
		why = append(why, "Possessive form detected.")
	}
	if collective {
		why = append(why, "Collective noun (group as a unit).")
	}

	typ := "common"
	if proper {
		typ = "proper"
	}
	a.Nouns = append(a.Nouns, NounInfo{
		I:            t.I,
		Text:         t.Text,
		Lemma:        t.Lemma,
		Type:         typ,
		Concreteness: concreteness,
		Countability: countability,
		Collective:   collective,
		Possessive:   possessive,
		Why:          why,
	})
	return why
}
