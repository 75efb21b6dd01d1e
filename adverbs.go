package grammatica

import (
	"fmt"
	"strings"
)

// analyzeAdverb appends the adverb record for t and returns the label
// justification. The modified category follows the head of an advmod
// relation; an adverbial-clause relation reads as sentence-level.
func (e *Engine) analyzeAdverb(s *Sentence, t *Token, a *Analysis) []string {
	degree := "positive"
	switch t.Tag {
	case "RBR":
		degree = "comparative"
	case "RBS":
		degree = "superlative"
	}

	conjunctive := e.conjAdverbs.has(strings.ToLower(t.Lemma))

	modifies := "verb"
	head := &s.Tokens[t.Head]
	switch {
	case t.Dep == "advmod" && head.POS == posAdjective:
		modifies = "adjective"
	case t.Dep == "advmod" && head.POS == posAdverb:
		modifies = "adverb"
	case t.Dep == "advmod" && (head.POS == posVerb || head.POS == posAux):
		modifies = "verb"
	case t.Dep == "advcl":
		modifies = "sentence"
	}

	why := []string{fmt.Sprintf("Adverb (%s); degree: %s.", t.Tag, degree)}
	if conjunctive {
		why = append(why, "Conjunctive adverb (links clauses).")
	}

	a.Adverbs = append(a.Adverbs, AdverbInfo{
		I:           t.I,
		Text:        t.Text,
		Lemma:       t.Lemma,
		Modifies:    modifies,
		Degree:      degree,
		Conjunctive: conjunctive,
		Why:         why,
	})
	return why
}
