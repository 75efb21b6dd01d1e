package grammatica

// classifierRule is one entry in the part-of-speech dispatch table. Rules
// are evaluated in order and the first match claims the token, so every
// token lands in exactly one bucket.
type classifierRule struct {
	// Label is the bucket name recorded in the token's PosLabel.
	Label string
	// Match reports whether the rule claims the token.
	Match func(s *Sentence, t *Token) bool
	// Apply appends the bucket record for the token and returns the
	// label justification.
	Apply func(s *Sentence, t *Token, a *Analysis) []string
}

// buildRules returns the dispatch table in priority order. Auxiliaries are
// claimed before main verbs so modals and be/have/do never reach the verb
// rule; the noun rule also accepts the fine noun tags so proper nouns
// tagged PROPN land with the nouns; the final rule matches everything left.
func (e *Engine) buildRules() []classifierRule {
	return []classifierRule{
		{
			Label: "auxiliary",
			Match: func(s *Sentence, t *Token) bool { return e.isAux(t) },
			Apply: e.analyzeAux,
		},
		{
			Label: "verb",
			Match: func(s *Sentence, t *Token) bool { return t.POS == posVerb },
			Apply: e.analyzeVerb,
		},
		{
			Label: "noun",
			Match: func(s *Sentence, t *Token) bool { return isNounFamily(t) },
			Apply: e.analyzeNoun,
		},
		{
			Label: "pronoun",
			Match: func(s *Sentence, t *Token) bool { return t.POS == posPronoun },
			Apply: e.analyzePronoun,
		},
		{
			Label: "adjective",
			Match: func(s *Sentence, t *Token) bool { return t.POS == posAdjective },
			Apply: e.analyzeAdjective,
		},
		{
			Label: "adverb",
			Match: func(s *Sentence, t *Token) bool { return t.POS == posAdverb },
			Apply: e.analyzeAdverb,
		},
		{
			Label: "preposition",
			Match: func(s *Sentence, t *Token) bool { return t.POS == posAdposition },
			Apply: e.analyzePreposition,
		},
		{
			Label: "conjunction",
			Match: func(s *Sentence, t *Token) bool { return t.POS == posCoordConj || t.POS == posSubordConj },
			Apply: e.analyzeConjunction,
		},
		{
			Label: "interjection",
			Match: func(s *Sentence, t *Token) bool { return t.POS == posInterjection },
			Apply: e.analyzeInterjection,
		},
		{
			Label: "other",
			Match: func(s *Sentence, t *Token) bool { return true },
			Apply: func(s *Sentence, t *Token, a *Analysis) []string {
				return []string{"Not a core POS in this game."}
			},
		},
	}
}

// classify runs every token through the dispatch table, appending exactly
// one PosLabel per token.
func (e *Engine) classify(s *Sentence, a *Analysis) {
	for i := range s.Tokens {
		t := &s.Tokens[i]
		for _, rule := range e.rules {
			if !rule.Match(s, t) {
				continue
			}
			why := rule.Apply(s, t, a)
			a.PosLabels = append(a.PosLabels, PosLabel{I: t.I, Gold: rule.Label, Why: why})
			break
		}
	}
}

// RuleLabels returns the bucket names of the dispatch table in priority
// order.
func (e *Engine) RuleLabels() []string {
	out := make([]string, len(e.rules))
	for i, r := range e.rules {
		out[i] = r.Label
	}
	return out
}
