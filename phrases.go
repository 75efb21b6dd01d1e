package grammatica

import "fmt"

// extractNounPhrases appends one NounPhrase per noun chunk, with the
// phrase role read off the head's relation. Produces nothing when the
// parse carries no dependency annotation.
func (e *Engine) extractNounPhrases(s *Sentence, a *Analysis) {
	for _, chunk := range s.NounChunks() {
		head := &s.Tokens[chunk.Head]

		hasDet := false
		ppPost := false
		for i := chunk.Start; i < chunk.End; i++ {
			switch s.Tokens[i].Dep {
			case "det":
				hasDet = true
			case "prep":
				ppPost = true
			}
		}

		headType := "common"
		if properTags.has(head.Tag) {
			headType = "proper"
		}

		role := "other"
		switch {
		case subjectDeps.has(head.Dep):
			role = "subject"
		case objectRoleDeps.has(head.Dep):
			role = "object"
		case head.Dep == "pobj":
			role = "object_of_preposition"
		}

		a.NounPhrases = append(a.NounPhrases, NounPhrase{
			I:        head.I,
			Head:     head.Text,
			Span:     chunk.Text,
			Role:     role,
			HasDet:   hasDet,
			PPPost:   ppPost,
			HeadType: headType,
			Why:      []string{fmt.Sprintf("Head '%s' with NP span '%s'.", head.Text, chunk.Text)},
		})
	}
}
