// Package sentences hands out practice sentences for the game. It can
// pull random sentences from two public upstreams (Tatoeba and
// Wordnik) and always degrades to an embedded curated list, so the
// game keeps working when external APIs are blocked or down.
package sentences

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Source values accepted by Get.
const (
	SourceLocal   = "local"
	SourceTatoeba = "tatoeba"
	SourceWordnik = "wordnik"
)

// KnownSource reports whether source names one of the supported
// sentence sources.
func KnownSource(source string) bool {
	switch source {
	case SourceLocal, SourceTatoeba, SourceWordnik:
		return true
	}
	return false
}

// Sentence is one practice sentence and the source that produced it.
type Sentence struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

//go:embed local.yaml
var localYAML []byte

var localSentences = mustLoadLocal()

func mustLoadLocal() []string {
	var doc struct {
		Sentences []string `yaml:"sentences"`
	}
	if err := yaml.Unmarshal(localYAML, &doc); err != nil {
		panic(fmt.Sprintf("sentences: embedded list: %v", err))
	}
	if len(doc.Sentences) == 0 {
		panic("sentences: embedded list is empty")
	}
	return doc.Sentences
}

// Provider fetches practice sentences. The zero value is not usable;
// construct with NewProvider.
type Provider struct {
	httpClient *http.Client
	wordnikKey string
	logger     *zap.Logger

	tatoebaURL string
	wordnikURL string
	pick       func(n int) int
}

// NewProvider returns a provider whose external requests use the given
// timeout. wordnikKey may be empty, which disables the wordnik source.
func NewProvider(timeout time.Duration, wordnikKey string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		httpClient: &http.Client{Timeout: timeout},
		wordnikKey: wordnikKey,
		logger:     logger,
		tatoebaURL: "https://tatoeba.org",
		wordnikURL: "https://api.wordnik.com",
		pick:       rand.Intn,
	}
}

// Get returns a practice sentence from the requested source. Every
// failure path falls back to the local list, so Get never fails; the
// returned Source says which path actually served the sentence.
func (p *Provider) Get(ctx context.Context, source string) Sentence {
	switch source {
	case SourceTatoeba:
		if s, ok := p.fromTatoeba(ctx); ok {
			return s
		}
	case SourceWordnik:
		if s, ok := p.fromWordnik(ctx); ok {
			return s
		}
	}
	return p.local()
}

func (p *Provider) local() Sentence {
	return Sentence{
		Text:   localSentences[p.pick(len(localSentences))],
		Source: SourceLocal,
	}
}

type tatoebaResponse struct {
	Results []struct {
		Text string `json:"text"`
	} `json:"results"`
}

func (p *Provider) fromTatoeba(ctx context.Context) (Sentence, bool) {
	u := p.tatoebaURL + "/en/api_v0/search?query=&from=eng&to=eng&sort=random&limit=1"

	var tr tatoebaResponse
	if err := p.getJSON(ctx, u, &tr); err != nil {
		p.logger.Warn("tatoeba fetch failed", zap.Error(err))
		return Sentence{}, false
	}
	if len(tr.Results) == 0 || tr.Results[0].Text == "" {
		return Sentence{}, false
	}
	return Sentence{Text: tr.Results[0].Text, Source: SourceTatoeba}, true
}

type wordnikWord struct {
	Word string `json:"word"`
}

type wordnikExamples struct {
	Examples []struct {
		Text string `json:"text"`
	} `json:"examples"`
}

func (p *Provider) fromWordnik(ctx context.Context) (Sentence, bool) {
	if p.wordnikKey == "" {
		p.logger.Debug("wordnik source requested without an API key")
		return Sentence{}, false
	}

	var rw wordnikWord
	u := fmt.Sprintf("%s/v4/words.json/randomWord?hasDictionaryDef=true&api_key=%s",
		p.wordnikURL, url.QueryEscape(p.wordnikKey))
	if err := p.getJSON(ctx, u, &rw); err != nil {
		p.logger.Warn("wordnik random word failed", zap.Error(err))
		return Sentence{}, false
	}
	if rw.Word == "" {
		return Sentence{}, false
	}

	var ex wordnikExamples
	u = fmt.Sprintf("%s/v4/word.json/%s/examples?api_key=%s",
		p.wordnikURL, url.PathEscape(rw.Word), url.QueryEscape(p.wordnikKey))
	if err := p.getJSON(ctx, u, &ex); err != nil {
		p.logger.Warn("wordnik examples failed", zap.String("word", rw.Word), zap.Error(err))
		return Sentence{}, false
	}
	if len(ex.Examples) == 0 {
		return Sentence{}, false
	}

	text := ex.Examples[0].Text
	if text == "" {
		text = rw.Word
	}
	return Sentence{Text: text, Source: SourceWordnik}, true
}

func (p *Provider) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
