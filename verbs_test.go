package grammatica

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sentPassive() *Sentence {
	return NewSentence("The window was broken by the storm.", []Token{
		tok("The", "the", "DET", "DT", "det", 1),
		tok("window", "window", "NOUN", "NN", "nsubjpass", 3),
		tok("was", "be", "AUX", "VBD", "auxpass", 3),
		tok("broken", "break", "VERB", "VBN", "ROOT", 3),
		tok("by", "by", "ADP", "IN", "agent", 3),
		tok("the", "the", "DET", "DT", "det", 6),
		tok("storm", "storm", "NOUN", "NN", "pobj", 4),
		tok(".", ".", "PUNCT", ".", "punct", 3),
	})
}

func TestAuxRole(t *testing.T) {
	e := New()
	tests := []struct {
		name string
		aux  Token
		head Token
		want string
	}{
		{"modal tag", tok("might", "might", "AUX", "MD", "aux", 0), tok("go", "go", "VERB", "VB", "ROOT", 0), "modal"},
		{"modal lemma", tok("will", "will", "AUX", "VB", "aux", 0), tok("go", "go", "VERB", "VB", "ROOT", 0), "modal"},
		{"perfect", tok("has", "have", "AUX", "VBZ", "aux", 0), tok("gone", "go", "VERB", "VBN", "ROOT", 0), "perfect"},
		{"progressive", tok("is", "be", "AUX", "VBZ", "aux", 0), tok("going", "go", "VERB", "VBG", "ROOT", 0), "progressive"},
		{"passive", tok("was", "be", "AUX", "VBD", "auxpass", 0), tok("broken", "break", "VERB", "VBN", "ROOT", 0), "passive"},
		{"do-support", tok("did", "do", "AUX", "VBD", "aux", 0), tok("see", "see", "VERB", "VB", "ROOT", 0), "do-support"},
		{"bare copula", tok("were", "be", "AUX", "VBD", "ROOT", 0), tok("were", "be", "AUX", "VBD", "ROOT", 0), "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.auxRole(&tt.aux, &tt.head); got != tt.want {
				t.Errorf("auxRole = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAux(t *testing.T) {
	e := New()
	tests := []struct {
		name string
		tok  Token
		want bool
	}{
		{"coarse AUX", tok("is", "be", "AUX", "VBZ", "aux", 0), true},
		{"modal tag only", tok("can", "can", "VERB", "MD", "aux", 0), true},
		{"aux lemma as main verb", tok("has", "have", "VERB", "VBZ", "ROOT", 0), true},
		{"plain verb", tok("runs", "run", "VERB", "VBZ", "ROOT", 0), false},
	}
	for _, tt := range tests {
		if got := e.isAux(&tt.tok); got != tt.want {
			t.Errorf("%s: isAux = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParticlesRightwardOnly(t *testing.T) {
	e := New()

	// "finally" precedes the verb, "back" and "on" follow it.
	s := NewSentence("After the storm, the lights finally came back on.", []Token{
		tok("After", "after", "ADP", "IN", "prep", 7),
		tok("the", "the", "DET", "DT", "det", 2),
		tok("storm", "storm", "NOUN", "NN", "pobj", 0),
		tok(",", ",", "PUNCT", ",", "punct", 7),
		tok("the", "the", "DET", "DT", "det", 5),
		tok("lights", "light", "NOUN", "NNS", "nsubj", 7),
		tok("finally", "finally", "ADV", "RB", "advmod", 7),
		tok("came", "come", "VERB", "VBD", "ROOT", 7),
		tok("back", "back", "ADV", "RB", "advmod", 7),
		tok("on", "on", "ADP", "RP", "prt", 7),
		tok(".", ".", "PUNCT", ".", "punct", 7),
	})
	a := e.Analyze(s)
	v := findVerb(a, "came")
	if v == nil {
		t.Fatal("no verb record for 'came'")
	}
	if diff := cmp.Diff([]string{"back", "on"}, v.Particles); diff != "" {
		t.Errorf("particles mismatch (-want +got):\n%s", diff)
	}
	if v.Phrasal != "came back on" {
		t.Errorf("phrasal = %q, want %q", v.Phrasal, "came back on")
	}
}

func TestPassiveTransitivity(t *testing.T) {
	e := New()
	a := e.Analyze(sentPassive())

	v := findVerb(a, "broken")
	if v == nil {
		t.Fatal("no verb record for 'broken'")
	}
	if v.Transitivity != "transitive" {
		t.Errorf("passive subject must count as object proxy, got %q", v.Transitivity)
	}
	if diff := cmp.Diff([]string{"was"}, v.AuxChain); diff != "" {
		t.Errorf("aux chain mismatch (-want +got):\n%s", diff)
	}

	aux := findAux(a, "was")
	if aux == nil {
		t.Fatal("no auxiliary record for 'was'")
	}
	if aux.Role != "passive" {
		t.Errorf("'was' role = %q, want passive", aux.Role)
	}
}

func TestAuxChainModalScan(t *testing.T) {
	e := New()

	// An oracle that heads the modal at the verb without an aux relation;
	// the fine-tag scan must still pick it up, exactly once.
	s := NewSentence("He must go.", []Token{
		tok("He", "he", "PRON", "PRP", "nsubj", 2),
		tok("must", "must", "AUX", "MD", "advmod", 2),
		tok("go", "go", "VERB", "VB", "ROOT", 2),
		tok(".", ".", "PUNCT", ".", "punct", 2),
	})
	got := e.auxChain(s, &s.Tokens[2])
	if diff := cmp.Diff([]string{"must"}, got); diff != "" {
		t.Errorf("aux chain mismatch (-want +got):\n%s", diff)
	}
}

func TestOccurrenceVerb(t *testing.T) {
	e := New()
	s := NewSentence("The accident happened yesterday.", []Token{
		tok("The", "the", "DET", "DT", "det", 1),
		tok("accident", "accident", "NOUN", "NN", "nsubj", 2),
		tok("happened", "happen", "VERB", "VBD", "ROOT", 2),
		tok("yesterday", "yesterday", "NOUN", "NN", "npadvmod", 2),
		tok(".", ".", "PUNCT", ".", "punct", 2),
	})
	v := findVerb(e.Analyze(s), "happened")
	if v == nil {
		t.Fatal("no verb record for 'happened'")
	}
	if v.SOA != "occurrence" {
		t.Errorf("soa = %q, want occurrence", v.SOA)
	}
	if v.IsLinking {
		t.Error("'happen' must not read as linking")
	}
}
