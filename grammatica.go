// Package grammatica annotates dependency-parsed English sentences for a
// grammar-training game: every token is sorted into exactly one
// part-of-speech bucket with enriched features, noun phrases and clauses
// are extracted, and each decision carries a short justification the game
// shows to the learner.
//
// The package never parses text itself. It consumes the output of a parse
// oracle (tokenizer, tagger, dependency parser) through the Sentence type;
// the conllu and spacy subpackages adapt two concrete oracles.
package grammatica

// Engine holds the lexical tables the classifiers consult and provides the
// public API. All tables are built once by New and never mutated, so a
// single Engine is safe for concurrent use.
type Engine struct {
	// auxLemmas are the lemmas that always read as auxiliaries.
	auxLemmas wordSet

	// modalLemmas are the modal auxiliary lemmas.
	modalLemmas wordSet

	// linkingLemmas are lemmas that act as linking verbs in
	// predicative positions.
	linkingLemmas wordSet

	// occurrenceLemmas are lemmas denoting happenings rather than
	// actions or states.
	occurrenceLemmas wordSet

	// collectiveLemmas are common collective nouns.
	collectiveLemmas wordSet

	// Pronoun form sets, checked in order against the lowercase surface.
	personalSubj  wordSet
	personalObj   wordSet
	possessiveAbs wordSet
	possessiveDep wordSet
	demonstrative wordSet
	interrogative wordSet
	relative      wordSet
	reflexive     wordSet

	// coordinators are the FANBOYS coordinating conjunctions.
	coordinators wordSet

	// subordinators introduce dependent clauses.
	subordinators wordSet

	// conjAdverbs are clause-linking adverbs, for the adverb classifier.
	conjAdverbs wordSet

	// conjAdverbConjs is the narrower set used when such a word is
	// tagged as a conjunction.
	conjAdverbConjs wordSet

	// rules is the classifier table, in priority order.
	rules []classifierRule
}

// New builds an Engine with its lexical tables and classifier rules.
func New() *Engine {
	e := &Engine{
		auxLemmas:   newWordSet("be", "have", "do"),
		modalLemmas: newWordSet("can", "could", "may", "might", "must", "shall", "should", "will", "would"),
		linkingLemmas: newWordSet("be", "seem", "become", "appear", "feel", "look",
			"sound", "remain", "stay", "grow", "turn", "smell", "taste"),
		occurrenceLemmas: newWordSet("happen", "occur", "arise"),
		collectiveLemmas: newWordSet("team", "committee", "group", "audience", "family",
			"staff", "class", "crew", "troop", "jury"),

		personalSubj:  newWordSet("i", "we", "you", "he", "she", "they", "it"),
		personalObj:   newWordSet("me", "us", "you", "him", "her", "them", "it"),
		possessiveAbs: newWordSet("mine", "yours", "his", "hers", "ours", "theirs"),
		possessiveDep: newWordSet("my", "your", "his", "her", "our", "their", "its"),
		demonstrative: newWordSet("this", "that", "these", "those"),
		interrogative: newWordSet("who", "whom", "whose", "which", "what"),
		relative:      newWordSet("who", "whom", "whose", "which", "that"),
		reflexive: newWordSet("myself", "yourself", "himself", "herself", "itself",
			"ourselves", "yourselves", "themselves"),

		coordinators: newWordSet("for", "and", "nor", "but", "or", "yet", "so"),
		subordinators: newWordSet("because", "although", "if", "when", "since",
			"while", "after", "before", "though", "unless", "until"),
		conjAdverbs: newWordSet("however", "therefore", "moreover", "consequently",
			"nevertheless", "furthermore", "thus", "hence", "meanwhile"),
		conjAdverbConjs: newWordSet("however", "therefore", "moreover", "consequently",
			"furthermore", "nevertheless"),
	}
	e.rules = e.buildRules()
	return e
}

// Analyze annotates one parsed sentence. It is a pure function of the
// sentence: no I/O, deterministic for identical input. A nil or empty
// sentence yields a well-formed Analysis with empty lists.
func (e *Engine) Analyze(s *Sentence) *Analysis {
	if s == nil {
		s = NewSentence("", nil)
	}
	a := newAnalysis(s.Text, s.Tokens)
	e.classify(s, a)
	e.extractNounPhrases(s, a)
	e.segmentClauses(s, a)
	return a
}

// AnalyzeTokens is a convenience wrapper that builds the Sentence first.
func (e *Engine) AnalyzeTokens(text string, tokens []Token) *Analysis {
	return e.Analyze(NewSentence(text, tokens))
}
