package grammatica

import "fmt"

// segmentClauses appends clause records: the root predicate as an
// independent clause, and every complement, adverbial, or relative
// predicate as a dependent one. Spans are raw subtree text; a dependent
// clause's text is therefore contained in its governor's.
func (e *Engine) segmentClauses(s *Sentence, a *Analysis) {
	for i := range s.Tokens {
		t := &s.Tokens[i]

		if t.Dep == depRoot && (t.POS == posVerb || t.POS == posAux) {
			a.Clauses = append(a.Clauses, Clause{
				I:         t.I,
				Text:      s.Span(t.I),
				Type:      "independent",
				Finite:    true,
				HasMarker: false,
				Why:       []string{"Root predicate => independent clause."},
			})
		}

		if clauseDeps.has(t.Dep) {
			typ := "complement"
			switch t.Dep {
			case "advcl":
				typ = "adverbial"
			case "relcl":
				typ = "relative"
			}

			hasMarker := false
			for _, c := range s.Children(t.I) {
				if markerDeps.has(s.Tokens[c].Dep) {
					hasMarker = true
					break
				}
			}

			a.Clauses = append(a.Clauses, Clause{
				I:         t.I,
				Text:      s.Span(t.I),
				Type:      typ,
				Finite:    !t.HasMorph("VerbForm", "Inf"),
				HasMarker: hasMarker,
				Why:       []string{fmt.Sprintf("%s attached to %s.", t.Dep, s.Tokens[t.Head].Text)},
			})
		}
	}
}
