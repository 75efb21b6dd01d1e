package grammatica

import (
	"fmt"
	"sort"
	"strings"
)

// isAux reports whether a token reads as an auxiliary: coarse AUX, a modal
// tag, or one of the auxiliary lemmas even when tagged as a main verb.
func (e *Engine) isAux(t *Token) bool {
	return t.POS == posAux || t.Tag == "MD" || e.auxLemmas.has(t.Lemma)
}

// auxRole names the auxiliary's function in its verb group. head is the
// auxiliary's syntactic head; the role of "be" depends on the head's tag
// (VBG → progressive, VBN → passive).
func (e *Engine) auxRole(t, head *Token) string {
	if t.Tag == "MD" || e.modalLemmas.has(t.Lemma) {
		return "modal"
	}
	if t.Lemma == "have" {
		return "perfect"
	}
	if t.Lemma == "be" {
		if head.Tag == "VBG" {
			return "progressive"
		}
		if head.Tag == "VBN" {
			return "passive"
		}
	}
	if t.Lemma == "do" {
		return "do-support"
	}
	return "other"
}

// auxChain collects the surface forms of a verb's auxiliaries: children
// attached as aux or auxpass, plus any modal headed by the verb, in
// sentence order without duplicates.
func (e *Engine) auxChain(s *Sentence, verb *Token) []string {
	seen := make(map[int]bool)
	var idxs []int
	for _, c := range s.Children(verb.I) {
		if auxChainDeps.has(s.Tokens[c].Dep) && !seen[c] {
			seen[c] = true
			idxs = append(idxs, c)
		}
	}
	for i := range s.Tokens {
		if s.Tokens[i].Head == verb.I && s.Tokens[i].Tag == "MD" && !seen[i] {
			seen[i] = true
			idxs = append(idxs, i)
		}
	}
	sort.Ints(idxs)
	out := make([]string, len(idxs))
	for k, i := range idxs {
		out[k] = s.Tokens[i].Text
	}
	return out
}

// particles returns the rightward particles forming a phrasal verb:
// children attached as prt, prep, or advmod whose coarse tag allows a
// particle reading and that follow the verb.
func (e *Engine) particles(s *Sentence, verb *Token) []string {
	out := make([]string, 0)
	for _, c := range s.Children(verb.I) {
		ct := &s.Tokens[c]
		if particleDeps.has(ct.Dep) && particlePOS.has(ct.POS) && ct.I > verb.I {
			out = append(out, ct.Text)
		}
	}
	return out
}

// hasObject reports whether the verb governs an object: a direct object or
// clausal complement, or a passive subject standing in for one.
func (e *Engine) hasObject(s *Sentence, verb *Token) bool {
	for _, c := range s.Children(verb.I) {
		d := s.Tokens[c].Dep
		if objectDeps.has(d) || d == "nsubjpass" {
			return true
		}
	}
	return false
}

// analyzeAux appends the auxiliary record for t and returns the label
// justification.
func (e *Engine) analyzeAux(s *Sentence, t *Token, a *Analysis) []string {
	head := &s.Tokens[t.Head]
	role := e.auxRole(t, head)
	a.Auxiliaries = append(a.Auxiliaries, AuxInfo{
		I:        t.I,
		Text:     t.Text,
		Lemma:    t.Lemma,
		POS:      t.POS,
		Tag:      t.Tag,
		Role:     role,
		HeadText: head.Text,
		Why:      []string{fmt.Sprintf("Auxiliary (%s).", role)},
	})
	return []string{fmt.Sprintf("Auxiliary '%s' (%s).", t.Text, role)}
}

// analyzeVerb appends the main-verb record for t and returns the label
// justification. A linking lemma only counts as linking in a predicative
// relation; otherwise the verb is an occurrence or an action by lemma.
func (e *Engine) analyzeVerb(s *Sentence, t *Token, a *Analysis) []string {
	parts := e.particles(s, t)
	phrasal := t.Text
	if len(parts) > 0 {
		phrasal = t.Text + " " + strings.Join(parts, " ")
	}

	trans := "intransitive"
	if e.hasObject(s, t) {
		trans = "transitive"
	}

	linking := e.linkingLemmas.has(t.Lemma) && linkingDeps.has(t.Dep)
	soa := "action"
	if linking {
		soa = "state"
	} else if e.occurrenceLemmas.has(t.Lemma) {
		soa = "occurrence"
	}

	partsText := "none"
	if len(parts) > 0 {
		partsText = strings.Join(parts, " ")
	}
	soaWhy := "Action/occurrence based on context."
	if linking {
		soaWhy = "Linking verb (state)"
	}

	a.Verbs = append(a.Verbs, VerbInfo{
		I:            t.I,
		Text:         t.Text,
		Lemma:        t.Lemma,
		POS:          t.POS,
		Tag:          t.Tag,
		AuxChain:     e.auxChain(s, t),
		Particles:    parts,
		Phrasal:      phrasal,
		Transitivity: trans,
		IsLinking:    linking,
		IsModal:      false,
		SOA:          soa,
		Why: []string{
			fmt.Sprintf("Verb detected (%s).", t.Tag),
			fmt.Sprintf("Phrasal particles: %s.", partsText),
			fmt.Sprintf("Transitivity: %s.", trans),
			soaWhy,
		},
	})
	return []string{fmt.Sprintf("Main verb '%s'.", t.Text)}
}
