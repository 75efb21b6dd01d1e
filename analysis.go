package grammatica

// VerbInfo describes a main verb: its phrasal particles, auxiliary chain,
// transitivity, and whether it expresses a state, occurrence, or action.
type VerbInfo struct {
	I     int    `json:"i"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
	Tag   string `json:"tag"`
	// AuxChain lists the surface forms of the verb's auxiliaries, in
	// sentence order.
	AuxChain []string `json:"aux_chain"`
	// Particles are the particle surface forms of a phrasal verb.
	Particles []string `json:"particles"`
	// Phrasal is the verb joined with its particles, e.g. "checked out".
	Phrasal string `json:"phrasal"`
	// Transitivity is "transitive" or "intransitive".
	Transitivity string `json:"transitivity"`
	// IsLinking marks copular/linking uses (state verbs).
	IsLinking bool `json:"is_linking"`
	// IsModal is always false for main verbs; modals land in the
	// auxiliary bucket.
	IsModal bool `json:"is_modal"`
	// SOA is "state", "occurrence", or "action".
	SOA string   `json:"soa"`
	Why []string `json:"why"`
}

// AuxInfo describes an auxiliary and its role in the verb group.
type AuxInfo struct {
	I     int    `json:"i"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
	Tag   string `json:"tag"`
	// Role is "modal", "perfect", "progressive", "passive",
	// "do-support", or "other".
	Role string `json:"role"`
	// HeadText is the surface form of the auxiliary's head.
	HeadText string   `json:"head_text"`
	Why      []string `json:"why"`
}

// NounInfo describes a noun: proper vs common plus the lexical features
// the trainer quizzes on.
type NounInfo struct {
	I     int    `json:"i"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	// Type is "proper" or "common".
	Type string `json:"type"`
	// Concreteness is "concrete" or "abstract".
	Concreteness string `json:"concreteness"`
	// Countability is "count" or "noncount".
	Countability string   `json:"countability"`
	Collective   bool     `json:"collective"`
	Possessive   bool     `json:"possessive"`
	Why          []string `json:"why"`
}

// PronounInfo describes a pronoun and its sub-type.
type PronounInfo struct {
	I     int    `json:"i"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	// Type is "personal", "possessive", "demonstrative",
	// "interrogative", "relative", "reflexive", "indefinite", or "other".
	Type string `json:"type"`
	// Case is "subjective", "objective", or "(n/a)".
	Case string `json:"case"`
	// PossessiveForm is "absolute", "dependent", or empty.
	PossessiveForm       string   `json:"possessive_form"`
	ReflexiveOrIntensive bool     `json:"reflexive_or_intensive"`
	Why                  []string `json:"why"`
}

// AdjectiveInfo describes an adjective and its degree.
type AdjectiveInfo struct {
	I     int    `json:"i"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	// Type is "proper" or "common".
	Type string `json:"type"`
	// Degree is "positive", "comparative", or "superlative".
	Degree string   `json:"degree"`
	Why    []string `json:"why"`
}

// AdverbInfo describes an adverb, what it modifies, and its degree.
type AdverbInfo struct {
	I     int    `json:"i"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	// Modifies is "verb", "adjective", "adverb", or "sentence".
	Modifies string `json:"modifies"`
	// Degree is "positive", "comparative", or "superlative".
	Degree string `json:"degree"`
	// Conjunctive marks clause-linking adverbs like "however".
	Conjunctive bool     `json:"conjunctive"`
	Why         []string `json:"why"`
}

// PrepositionInfo describes a preposition.
type PrepositionInfo struct {
	I     int      `json:"i"`
	Text  string   `json:"text"`
	Lemma string   `json:"lemma"`
	Type  string   `json:"type"`
	Why   []string `json:"why"`
}

// ConjunctionInfo describes a conjunction and its sub-type.
type ConjunctionInfo struct {
	I     int    `json:"i"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	// Type is "coordinating", "subordinating", "conjunctive_adverb",
	// or "other".
	Type string   `json:"type"`
	Why  []string `json:"why"`
}

// InterjectionInfo describes an interjection.
type InterjectionInfo struct {
	I              int      `json:"i"`
	Text           string   `json:"text"`
	Lemma          string   `json:"lemma"`
	IsInterjection bool     `json:"is_interjection"`
	Why            []string `json:"why"`
}

// PosLabel is the gold category for one token, parallel to the token list.
// Every token gets exactly one label.
type PosLabel struct {
	I    int      `json:"i"`
	Gold string   `json:"gold"`
	Why  []string `json:"why"`
}

// NounPhrase describes one extracted noun phrase.
type NounPhrase struct {
	// I is the index of the phrase's head token.
	I int `json:"i"`
	// Head is the head token's surface form.
	Head string `json:"head"`
	// Span is the full phrase text.
	Span string `json:"span"`
	// Role is "subject", "object", "object_of_preposition", or "other".
	Role   string `json:"role"`
	HasDet bool   `json:"has_det"`
	PPPost bool   `json:"pp_postmod"`
	// HeadType is "proper" or "common".
	HeadType string   `json:"head_type"`
	Why      []string `json:"why"`
}

// Clause describes one clause-like region of the sentence.
type Clause struct {
	// I is the index of the clause's predicate token.
	I int `json:"i"`
	// Text is the predicate's subtree text.
	Text string `json:"text"`
	// Type is "independent", "adverbial", "relative", or "complement".
	Type string `json:"type"`
	// Finite is false for infinitival predicates.
	Finite bool `json:"finite"`
	// HasMarker reports an explicit subordinator or relativizer.
	HasMarker bool     `json:"has_marker"`
	Why       []string `json:"why"`
}

// Analysis is the full annotation of one sentence: the token list, one
// bucket per grammatical category, phrase and clause structure, and the
// per-token gold labels. Every token appears in exactly one bucket or is
// labeled "other"; PosLabels always has one entry per token.
type Analysis struct {
	Text          string             `json:"text"`
	Tokens        []Token            `json:"tokens"`
	Verbs         []VerbInfo         `json:"verbs"`
	Auxiliaries   []AuxInfo          `json:"auxiliaries"`
	Nouns         []NounInfo         `json:"nouns"`
	Pronouns      []PronounInfo      `json:"pronouns"`
	Adjectives    []AdjectiveInfo    `json:"adjectives"`
	Adverbs       []AdverbInfo       `json:"adverbs"`
	Prepositions  []PrepositionInfo  `json:"prepositions"`
	Conjunctions  []ConjunctionInfo  `json:"conjunctions"`
	Interjections []InterjectionInfo `json:"interjections"`
	NounPhrases   []NounPhrase       `json:"noun_phrases"`
	Clauses       []Clause           `json:"clauses"`
	PosLabels     []PosLabel         `json:"pos_labels"`
}

// newAnalysis returns an Analysis with every list non-nil so the JSON
// encoding always renders arrays, never null.
func newAnalysis(text string, tokens []Token) *Analysis {
	if tokens == nil {
		tokens = []Token{}
	}
	return &Analysis{
		Text:          text,
		Tokens:        tokens,
		Verbs:         []VerbInfo{},
		Auxiliaries:   []AuxInfo{},
		Nouns:         []NounInfo{},
		Pronouns:      []PronounInfo{},
		Adjectives:    []AdjectiveInfo{},
		Adverbs:       []AdverbInfo{},
		Prepositions:  []PrepositionInfo{},
		Conjunctions:  []ConjunctionInfo{},
		Interjections: []InterjectionInfo{},
		NounPhrases:   []NounPhrase{},
		Clauses:       []Clause{},
		PosLabels:     []PosLabel{},
	}
}
