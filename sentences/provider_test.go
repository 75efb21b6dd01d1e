package sentences

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalList(t *testing.T) {
	require.Len(t, localSentences, 10)
	assert.Equal(t, "Wow! That absolutely crushed the previous record.", localSentences[0])
	assert.Equal(t, "They might have been waiting for the bus.", localSentences[9])
}

func TestGetLocal(t *testing.T) {
	p := NewProvider(time.Second, "", nil)
	p.pick = func(n int) int { return 2 }

	s := p.Get(context.Background(), SourceLocal)
	want := Sentence{
		Text:   "The committee has been reviewing the proposal for weeks.",
		Source: SourceLocal,
	}
	assert.Equal(t, want, s)
}

func TestGetUnknownSource(t *testing.T) {
	p := NewProvider(time.Second, "", nil)
	p.pick = func(n int) int { return 0 }

	s := p.Get(context.Background(), "carrier-pigeon")
	assert.Equal(t, SourceLocal, s.Source)
	assert.Equal(t, localSentences[0], s.Text)
}

func TestGetTatoeba(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/api_v0/search", r.URL.Path)
		assert.Equal(t, "eng", r.URL.Query().Get("from"))
		assert.Equal(t, "random", r.URL.Query().Get("sort"))
		w.Write([]byte(`{"results": [{"text": "The cat sat on the mat."}]}`))
	}))
	defer srv.Close()

	p := NewProvider(time.Second, "", nil)
	p.tatoebaURL = srv.URL

	s := p.Get(context.Background(), SourceTatoeba)
	assert.Equal(t, Sentence{Text: "The cat sat on the mat.", Source: SourceTatoeba}, s)
}

func TestGetTatoebaFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"empty results", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": []}`))
		}},
		{"empty text", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results": [{"text": ""}]}`))
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<!doctype html><p>offline</p>"))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down for maintenance", http.StatusInternalServerError)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			p := NewProvider(time.Second, "", nil)
			p.tatoebaURL = srv.URL
			p.pick = func(n int) int { return 0 }

			s := p.Get(context.Background(), SourceTatoeba)
			assert.Equal(t, SourceLocal, s.Source)
			assert.Equal(t, localSentences[0], s.Text)
		})
	}
}

func TestGetTatoebaUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	p := NewProvider(time.Second, "", nil)
	p.tatoebaURL = deadURL

	s := p.Get(context.Background(), SourceTatoeba)
	assert.Equal(t, SourceLocal, s.Source)
	assert.NotEmpty(t, s.Text)
}

func TestGetWordnik(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/words.json/randomWord", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("hasDictionaryDef"))
		assert.Equal(t, "k123", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"word": "serendipity"}`))
	})
	mux.HandleFunc("/v4/word.json/serendipity/examples", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k123", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"examples": [{"text": "Serendipity brought them together."}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewProvider(time.Second, "k123", nil)
	p.wordnikURL = srv.URL

	s := p.Get(context.Background(), SourceWordnik)
	assert.Equal(t, Sentence{Text: "Serendipity brought them together.", Source: SourceWordnik}, s)
}

func TestGetWordnikNoKey(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	p := NewProvider(time.Second, "", nil)
	p.wordnikURL = srv.URL
	p.pick = func(n int) int { return 5 }

	s := p.Get(context.Background(), SourceWordnik)
	assert.Equal(t, SourceLocal, s.Source)
	assert.Equal(t, localSentences[5], s.Text)
	assert.Zero(t, hits, "no key means no upstream request")
}

func TestGetWordnikExampleTextFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v4/words.json/randomWord", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"word": "petrichor"}`))
	})
	mux.HandleFunc("/v4/word.json/petrichor/examples", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"examples": [{"text": ""}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewProvider(time.Second, "k123", nil)
	p.wordnikURL = srv.URL

	s := p.Get(context.Background(), SourceWordnik)
	assert.Equal(t, Sentence{Text: "petrichor", Source: SourceWordnik}, s)
}

func TestGetWordnikFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		examples string
	}{
		{"empty word", `{"word": ""}`, `{}`},
		{"no examples", `{"word": "petrichor"}`, `{"examples": []}`},
		{"garbage word body", `{{{`, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v4/words.json/randomWord", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.word))
			})
			mux.HandleFunc("/v4/word.json/", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.examples))
			})
			srv := httptest.NewServer(mux)
			defer srv.Close()

			p := NewProvider(time.Second, "k123", nil)
			p.wordnikURL = srv.URL

			s := p.Get(context.Background(), SourceWordnik)
			assert.Equal(t, SourceLocal, s.Source)
			assert.NotEmpty(t, s.Text)
		})
	}
}

func TestGetNeverFailsOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	p := NewProvider(50*time.Millisecond, "k123", nil)
	p.tatoebaURL = deadURL
	p.wordnikURL = deadURL

	for _, source := range []string{SourceLocal, SourceTatoeba, SourceWordnik, "bogus", ""} {
		s := p.Get(context.Background(), source)
		assert.Equal(t, SourceLocal, s.Source, "source %q", source)
		assert.NotEmpty(t, s.Text, "source %q", source)
	}
}

func TestKnownSource(t *testing.T) {
	for _, source := range []string{SourceLocal, SourceTatoeba, SourceWordnik} {
		assert.True(t, KnownSource(source), source)
	}
	for _, source := range []string{"", "bogus", "Local", "TATOEBA"} {
		assert.False(t, KnownSource(source), source)
	}
}
