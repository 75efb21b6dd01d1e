// Package spacy talks to the dependency-parse sidecar over HTTP. The
// sidecar wraps an English spaCy pipeline and returns one parsed
// sentence per request; this package converts its token dump into the
// engine's Sentence type.
package spacy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cours-d-anglais/grammatica"
)

// ErrUnavailable marks any failure to obtain a parse: connection
// errors, non-200 responses and undecodable payloads all wrap it so
// callers can map the whole class to one upstream-failure response.
var ErrUnavailable = errors.New("parser unavailable")

// Client is an HTTP client for the parse sidecar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient returns a client for the sidecar at baseURL. An empty
// baseURL falls back to the conventional local port.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:9000"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

// parseResponse picks the fields the engine consumes; the sidecar's
// has_deps flag is ignored because the Sentence recomputes it from the
// dep labels.
type parseResponse struct {
	Text   string             `json:"text"`
	Tokens []grammatica.Token `json:"tokens"`
}

// Parse sends text to the sidecar and returns the parsed sentence.
func (c *Client) Parse(ctx context.Context, text string) (*grammatica.Sentence, error) {
	body, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal parse request: %w", err)
	}

	url := c.baseURL + "/parse"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("requesting parse", zap.String("url", url), zap.Int("text_len", len(text)))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: post %s: %v", ErrUnavailable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode,
			strings.TrimSpace(string(detail)))
	}

	var pr parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("%w: decode parse response: %v", ErrUnavailable, err)
	}

	if pr.Text == "" {
		pr.Text = text
	}
	return grammatica.NewSentence(pr.Text, pr.Tokens), nil
}
