package grammatica

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNounPhraseRoles(t *testing.T) {
	e := New()
	a := e.Analyze(sentCommittee())

	want := []NounPhrase{
		{
			I: 1, Head: "committee", Span: "The committee", Role: "subject",
			HasDet: true, HeadType: "common",
			Why: []string{"Head 'committee' with NP span 'The committee'."},
		},
		{
			I: 6, Head: "proposal", Span: "the proposal", Role: "object",
			HasDet: true, HeadType: "common",
			Why: []string{"Head 'proposal' with NP span 'the proposal'."},
		},
		{
			I: 8, Head: "weeks", Span: "weeks", Role: "object_of_preposition",
			HeadType: "common",
			Why:      []string{"Head 'weeks' with NP span 'weeks'."},
		},
	}
	if diff := cmp.Diff(want, a.NounPhrases); diff != "" {
		t.Errorf("noun phrases mismatch (-want +got):\n%s", diff)
	}
}

func TestNounPhraseProperHead(t *testing.T) {
	e := New()
	a := e.Analyze(sentHandIn())

	var friday *NounPhrase
	for i := range a.NounPhrases {
		if a.NounPhrases[i].Head == "Friday" {
			friday = &a.NounPhrases[i]
		}
	}
	if friday == nil {
		t.Fatalf("no phrase headed by 'Friday': %+v", a.NounPhrases)
	}
	if friday.HeadType != "proper" {
		t.Errorf("head_type = %q, want proper", friday.HeadType)
	}
	if friday.Role != "object_of_preposition" {
		t.Errorf("role = %q, want object_of_preposition", friday.Role)
	}
	if friday.HasDet {
		t.Error("bare proper noun must not report a determiner")
	}
}

func TestNounPhrasePassiveSubject(t *testing.T) {
	e := New()
	a := e.Analyze(sentPassive())

	var window *NounPhrase
	for i := range a.NounPhrases {
		if a.NounPhrases[i].Head == "window" {
			window = &a.NounPhrases[i]
		}
	}
	if window == nil {
		t.Fatalf("no phrase headed by 'window': %+v", a.NounPhrases)
	}
	if window.Role != "subject" {
		t.Errorf("passive subject role = %q, want subject", window.Role)
	}
}

func TestNounPhrasesSkippedWithoutDeps(t *testing.T) {
	e := New()
	s := NewSentence("tagged only", []Token{
		{Text: "tagged", Lemma: "tag", POS: "VERB", Tag: "VBN", Head: 0},
		{Text: "only", Lemma: "only", POS: "ADV", Tag: "RB", Head: 0},
	})
	a := e.Analyze(s)
	if len(a.NounPhrases) != 0 {
		t.Errorf("noun phrases without dependency annotation = %+v, want none", a.NounPhrases)
	}
	// The rest of the analysis still runs.
	if len(a.PosLabels) != 2 {
		t.Errorf("labels = %d, want 2", len(a.PosLabels))
	}
}
