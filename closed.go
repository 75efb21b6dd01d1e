package grammatica

import "strings"

// analyzePreposition appends the preposition record for t.
func (e *Engine) analyzePreposition(s *Sentence, t *Token, a *Analysis) []string {
	why := []string{"Preposition heads a PP or marks relation."}
	a.Prepositions = append(a.Prepositions, PrepositionInfo{
		I:     t.I,
		Text:  t.Text,
		Lemma: t.Lemma,
		Type:  "preposition",
		Why:   why,
	})
	return why
}

// analyzeConjunction appends the conjunction record for t, typed by lemma:
// the FANBOYS set is coordinating, the subordinator set subordinating, and
// a handful of linking adverbs keep their conjunctive-adverb reading even
// when tagged as conjunctions.
func (e *Engine) analyzeConjunction(s *Sentence, t *Token, a *Analysis) []string {
	lemma := strings.ToLower(t.Lemma)

	typ := "other"
	why := []string{"Conjunction."}
	switch {
	case e.coordinators.has(lemma):
		typ = "coordinating"
		why = []string{"Coordinating conjunction (FANBOYS)."}
	case e.subordinators.has(lemma):
		typ = "subordinating"
		why = []string{"Subordinating conjunction (introduces dependent clause)."}
	case e.conjAdverbConjs.has(lemma):
		typ = "conjunctive_adverb"
		why = []string{"Conjunctive adverb connecting clauses."}
	}

	a.Conjunctions = append(a.Conjunctions, ConjunctionInfo{
		I:     t.I,
		Text:  t.Text,
		Lemma: t.Lemma,
		Type:  typ,
		Why:   why,
	})
	return why
}

// analyzeInterjection appends the interjection record for t.
func (e *Engine) analyzeInterjection(s *Sentence, t *Token, a *Analysis) []string {
	why := []string{"Interjection expresses emotion/reaction."}
	a.Interjections = append(a.Interjections, InterjectionInfo{
		I:              t.I,
		Text:           t.Text,
		Lemma:          t.Lemma,
		IsInterjection: true,
		Why:            why,
	})
	return why
}
