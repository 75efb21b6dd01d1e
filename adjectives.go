package grammatica

import "fmt"

// analyzeAdjective appends the adjective record for t and returns the
// label justification. A capitalized adjective only counts as proper in a
// modifier or predicative relation, so sentence-initial capitals do not
// leak in.
func (e *Engine) analyzeAdjective(s *Sentence, t *Token, a *Analysis) []string {
	degree := "positive"
	switch t.Tag {
	case "JJR":
		degree = "comparative"
	case "JJS":
		degree = "superlative"
	}

	typ := "common"
	if isCapitalized(t.Text) && properAdjDeps.has(t.Dep) {
		typ = "proper"
	}

	why := []string{fmt.Sprintf("Adjective (%s); degree: %s.", t.Tag, degree)}
	a.Adjectives = append(a.Adjectives, AdjectiveInfo{
		I:      t.I,
		Text:   t.Text,
		Lemma:  t.Lemma,
		Type:   typ,
		Degree: degree,
		Why:    why,
	})
	return why
}
