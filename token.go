package grammatica

import (
	"sort"
	"strings"
)

// Token is a single parsed word as delivered by the parse oracle.
type Token struct {
	// I is the 0-based position of the token in its sentence.
	I int `json:"i"`
	// Text is the surface form.
	Text string `json:"text"`
	// Lemma is the dictionary form.
	Lemma string `json:"lemma"`
	// POS is the coarse part-of-speech tag (VERB, AUX, NOUN, PRON, ...).
	POS string `json:"pos"`
	// Tag is the fine-grained tag (MD, VBG, NNS, JJR, ...).
	Tag string `json:"tag"`
	// Dep is the dependency relation to the head token.
	Dep string `json:"dep"`
	// Head is the index of the syntactic head; a root token points at itself.
	Head int `json:"head"`
	// Morph holds morphological features, e.g. "VerbForm" → "Inf".
	Morph map[string]string `json:"morph,omitempty"`
	// EntType is the named-entity label, empty when the token is not part
	// of an entity.
	EntType string `json:"ent_type,omitempty"`
}

// HasMorph reports whether the named feature has the given value.
func (t *Token) HasMorph(feature, value string) bool {
	return t.Morph[feature] == value
}

// Sentence is an index-addressed dependency tree over a token slice.
// Head references are by index into Tokens, so the structure can be built
// from any oracle that numbers its tokens.
type Sentence struct {
	// Text is the raw sentence text.
	Text string
	// Tokens are the parsed tokens in surface order.
	Tokens []Token

	// children caches child indices per token, in surface order.
	children [][]int
	// hasDeps records whether the parse carried dependency annotation.
	hasDeps bool
}

// NewSentence builds a Sentence from oracle output. Head indices outside
// the token range are normalized to self-references and head cycles are
// broken by re-rooting, so a malformed parse cannot send tree walks out
// of bounds or into a loop.
func NewSentence(text string, tokens []Token) *Sentence {
	s := &Sentence{
		Text:     text,
		Tokens:   tokens,
		children: make([][]int, len(tokens)),
	}
	for i := range s.Tokens {
		s.Tokens[i].I = i
		if h := s.Tokens[i].Head; h < 0 || h >= len(tokens) {
			s.Tokens[i].Head = i
		}
		if s.Tokens[i].Dep != "" {
			s.hasDeps = true
		}
	}
	s.breakHeadCycles()
	for i := range s.Tokens {
		h := s.Tokens[i].Head
		if h != i {
			s.children[h] = append(s.children[h], i)
		}
	}
	return s
}

// breakHeadCycles re-roots head chains that never reach a self-headed
// token. Each token is walked at most once; a walk that returns to a
// token on its own path has found a cycle, and that token becomes a
// root. Tokens leading into a broken cycle keep their heads.
func (s *Sentence) breakHeadCycles() {
	// 0 unseen, 1 on the current path, 2 settled.
	state := make([]byte, len(s.Tokens))
	var path []int
	for i := range s.Tokens {
		if state[i] != 0 {
			continue
		}
		path = path[:0]
		j := i
		for state[j] == 0 {
			state[j] = 1
			path = append(path, j)
			if s.Tokens[j].Head == j {
				break
			}
			j = s.Tokens[j].Head
		}
		if state[j] == 1 && s.Tokens[j].Head != j {
			s.Tokens[j].Head = j
		}
		for _, p := range path {
			state[p] = 2
		}
	}
}

// Len returns the number of tokens.
func (s *Sentence) Len() int {
	return len(s.Tokens)
}

// HasDeps reports whether any token carries a dependency label.
// Components that walk the tree skip their work when this is false.
func (s *Sentence) HasDeps() bool {
	return s.hasDeps
}

// Children returns the indices of the direct dependents of token i.
func (s *Sentence) Children(i int) []int {
	if i < 0 || i >= len(s.children) {
		return nil
	}
	return s.children[i]
}

// Subtree returns token i and all its descendants, in surface order.
func (s *Sentence) Subtree(i int) []int {
	if i < 0 || i >= len(s.Tokens) {
		return nil
	}
	var out []int
	stack := []int{i}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		stack = append(stack, s.children[n]...)
	}
	sort.Ints(out)
	return out
}

// Span returns the surface text of token i's subtree, space-joined.
func (s *Sentence) Span(i int) string {
	idxs := s.Subtree(i)
	texts := make([]string, len(idxs))
	for k, idx := range idxs {
		texts[k] = s.Tokens[idx].Text
	}
	return strings.Join(texts, " ")
}

// leftEdge returns the index of the leftmost token in i's subtree.
func (s *Sentence) leftEdge(i int) int {
	idxs := s.Subtree(i)
	if len(idxs) == 0 {
		return i
	}
	return idxs[0]
}

// NounChunk is a base noun-phrase span. Start and End delimit a half-open
// token interval; Head is the index of the phrase's nominal head.
type NounChunk struct {
	Head  int
	Start int
	End   int
	Text  string
}

// chunkDeps are the dependency relations whose nominal bearer heads a base
// noun phrase. Both the ClearNLP and the UD object labels are listed so
// either oracle scheme chunks the same way.
var chunkDeps = map[string]bool{
	"nsubj":     true,
	"dobj":      true,
	"obj":       true,
	"nsubjpass": true,
	"pcomp":     true,
	"pobj":      true,
	"dative":    true,
	"appos":     true,
	"attr":      true,
	depRoot:     true,
}

// nominalPOS are the coarse tags that can head a noun chunk.
var nominalPOS = map[string]bool{
	posNoun:       true,
	posProperNoun: true,
	posPronoun:    true,
}

// NounChunks extracts base noun phrases: for each nominal token whose
// relation marks it as a phrase head (or that is conjoined to one), the
// chunk runs from the left edge of its subtree through the token itself.
// Chunks never nest. Returns nil when the parse has no dependency
// annotation.
func (s *Sentence) NounChunks() []NounChunk {
	if !s.hasDeps {
		return nil
	}
	var chunks []NounChunk
	prevEnd := -1
	for i := range s.Tokens {
		t := &s.Tokens[i]
		if !nominalPOS[t.POS] {
			continue
		}
		left := s.leftEdge(i)
		if left <= prevEnd {
			continue
		}
		ok := chunkDeps[t.Dep]
		if !ok && t.Dep == "conj" {
			// Conjoined nominals inherit chunk-head status from the
			// first conjunct.
			h := t.Head
			for s.Tokens[h].Dep == "conj" && s.Tokens[h].Head < h {
				h = s.Tokens[h].Head
			}
			ok = chunkDeps[s.Tokens[h].Dep]
		}
		if !ok {
			continue
		}
		prevEnd = i
		chunks = append(chunks, NounChunk{
			Head:  i,
			Start: left,
			End:   i + 1,
			Text:  s.text(left, i+1),
		})
	}
	return chunks
}

// text joins the surface forms of tokens[start:end] with spaces.
func (s *Sentence) text(start, end int) string {
	texts := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		texts = append(texts, s.Tokens[i].Text)
	}
	return strings.Join(texts, " ")
}
