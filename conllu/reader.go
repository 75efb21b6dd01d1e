// Package conllu reads dependency parses in the CoNLL-U format and adapts
// them into grammatica sentences, for offline analysis and test fixtures.
package conllu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cours-d-anglais/grammatica"
)

// numFields is the column count of a CoNLL-U token line:
// ID FORM LEMMA UPOS XPOS FEATS HEAD DEPREL DEPS MISC.
const numFields = 10

// textComment introduces the raw sentence text in a comment line.
const textComment = "# text ="

// depMap renames Universal Dependencies relations to the labels the engine
// classifies on. Relations not listed keep their name, minus any subtype.
var depMap = map[string]string{
	"root":         "ROOT",
	"aux:pass":     "auxpass",
	"nsubj:pass":   "nsubjpass",
	"csubj:pass":   "csubjpass",
	"acl:relcl":    "relcl",
	"compound:prt": "prt",
	"nmod:poss":    "poss",
	"obl":          "pobj",
	"iobj":         "dative",
}

// mapDep normalizes one DEPREL value: exact renames first, then the bare
// relation with its subtype stripped.
func mapDep(dep string) string {
	if mapped, ok := depMap[dep]; ok {
		return mapped
	}
	if idx := strings.Index(dep, ":"); idx > 0 {
		bare := dep[:idx]
		if mapped, ok := depMap[bare]; ok {
			return mapped
		}
		return bare
	}
	return dep
}

// parseFeats splits a FEATS column ("Case=Nom|Number=Sing") into a map.
// The placeholder "_" yields nil.
func parseFeats(feats string) map[string]string {
	if feats == "" || feats == "_" {
		return nil
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(feats, "|") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}

// Parse reads every sentence in r. Comment lines are inspected only for
// the raw text; multiword-token ranges and empty nodes are skipped; a
// blank line ends the current sentence.
func Parse(r io.Reader) ([]*grammatica.Sentence, error) {
	var (
		sentences []*grammatica.Sentence
		tokens    []grammatica.Token
		text      string
		lineNum   int
	)

	flush := func() {
		if len(tokens) == 0 {
			text = ""
			return
		}
		if text == "" {
			forms := make([]string, len(tokens))
			for i, t := range tokens {
				forms[i] = t.Text
			}
			text = strings.Join(forms, " ")
		}
		sentences = append(sentences, grammatica.NewSentence(text, tokens))
		tokens = nil
		text = ""
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNum++
		line := sc.Text()

		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			if rest, ok := strings.CutPrefix(line, textComment); ok {
				text = strings.TrimSpace(rest)
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != numFields {
			return nil, fmt.Errorf("line %d: %d columns, want %d", lineNum, len(fields), numFields)
		}
		// Multiword ranges ("3-4") and empty nodes ("5.1") are not
		// syntactic words.
		if strings.ContainsAny(fields[0], "-.") {
			continue
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil || id < 1 {
			return nil, fmt.Errorf("line %d: bad token id %q", lineNum, fields[0])
		}
		head, err := strconv.Atoi(fields[6])
		if err != nil || head < 0 {
			return nil, fmt.Errorf("line %d: bad head %q", lineNum, fields[6])
		}

		// CoNLL-U heads are 1-based with 0 for the root; the engine
		// wants 0-based indices with the root pointing at itself.
		headIdx := head - 1
		if head == 0 {
			headIdx = id - 1
		}

		tag := fields[4]
		if tag == "_" {
			tag = ""
		}
		tokens = append(tokens, grammatica.Token{
			I:     id - 1,
			Text:  fields[1],
			Lemma: fields[2],
			POS:   fields[3],
			Tag:   tag,
			Dep:   mapDep(fields[7]),
			Head:  headIdx,
			Morph: parseFeats(fields[5]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read conllu: %w", err)
	}
	flush()
	return sentences, nil
}

// ParseString parses CoNLL-U data held in a string.
func ParseString(data string) ([]*grammatica.Sentence, error) {
	return Parse(strings.NewReader(data))
}
