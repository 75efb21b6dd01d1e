package grammatica

import "unicode"

// Coarse part-of-speech values used by the classifiers. The tag set is the
// universal one emitted by the parse oracle.
const (
	posVerb         = "VERB"
	posAux          = "AUX"
	posNoun         = "NOUN"
	posProperNoun   = "PROPN"
	posPronoun      = "PRON"
	posAdjective    = "ADJ"
	posAdverb       = "ADV"
	posAdposition   = "ADP"
	posCoordConj    = "CCONJ"
	posSubordConj   = "SCONJ"
	posInterjection = "INTJ"
	posParticle     = "PART"
)

// depRoot is the relation carried by a sentence's root predicate.
const depRoot = "ROOT"

// wordSet is a membership set over lowercase word forms; callers lowercase
// before lookup.
type wordSet map[string]bool

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

func (s wordSet) has(w string) bool {
	return s[w]
}

// nounTags are the fine tags of the noun family.
var nounTags = newWordSet("NN", "NNS", "NNP", "NNPS")

// properTags mark proper nouns.
var properTags = newWordSet("NNP", "NNPS")

// pluralTags mark plural nouns.
var pluralTags = newWordSet("NNS", "NNPS")

// particlePOS are the coarse tags a phrasal-verb particle may carry.
var particlePOS = newWordSet(posParticle, posAdposition, posAdverb)

// particleDeps are the relations that attach a particle to its verb.
var particleDeps = newWordSet("prt", "prep", "advmod")

// auxChainDeps attach auxiliaries to the main verb.
var auxChainDeps = newWordSet("aux", "auxpass")

// objectDeps are the relations that signal a verb takes an object:
// direct objects, predicative complements, and clausal complements.
var objectDeps = newWordSet("dobj", "obj", "attr", "ccomp", "xcomp", "oprd")

// linkingDeps are the relations in which a linking lemma actually links.
var linkingDeps = newWordSet(depRoot, "xcomp", "ccomp", "acomp", "attr", "relcl", "conj")

// interrogativeDeps gate interrogative pronoun readings.
var interrogativeDeps = newWordSet("attr", "pobj", "dobj", "nsubj")

// relativeDeps gate relative pronoun readings.
var relativeDeps = newWordSet("relcl", "nsubj", "dobj", "pobj", "attr")

// properAdjDeps are the relations in which a capitalized adjective counts
// as proper.
var properAdjDeps = newWordSet("amod", "acomp")

// subjectDeps and objectRoleDeps map a phrase head's relation to its role.
var (
	subjectDeps    = newWordSet("nsubj", "nsubjpass")
	objectRoleDeps = newWordSet("dobj", "obj")
)

// clauseDeps are the relations that open a dependent clause.
var clauseDeps = newWordSet("ccomp", "xcomp", "advcl", "relcl")

// markerDeps attach an explicit subordinator or relativizer to a clause.
var markerDeps = newWordSet("mark", "complm", "relcl")

// isNounFamily reports whether a token reads as a noun, by coarse tag or
// by fine tag. Proper nouns carry coarse PROPN but fine NNP/NNPS, so the
// fine check catches them too.
func isNounFamily(t *Token) bool {
	return t.POS == posNoun || nounTags.has(t.Tag)
}

// isCapitalized reports whether the surface form starts uppercase.
func isCapitalized(text string) bool {
	runes := []rune(text)
	return len(runes) > 0 && unicode.IsUpper(runes[0])
}
