package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cours-d-anglais/grammatica"
	"github.com/cours-d-anglais/grammatica/sentences"
	"github.com/cours-d-anglais/grammatica/spacy"
)

// parser produces a dependency parse for one sentence of English.
type parser interface {
	Parse(ctx context.Context, text string) (*grammatica.Sentence, error)
}

// sentenceSource serves practice sentences.
type sentenceSource interface {
	Get(ctx context.Context, source string) sentences.Sentence
}

type server struct {
	engine   *grammatica.Engine
	oracle   parser
	provider sentenceSource
	logger   *zap.Logger
}

func newServer(engine *grammatica.Engine, oracle parser, provider sentenceSource, logger *zap.Logger) *server {
	return &server{
		engine:   engine,
		oracle:   oracle,
		provider: provider,
		logger:   logger,
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/sentence", s.handleSentence)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// handleAnalyze parses the text with the sidecar and runs the full
// annotation over the result. Blank input short-circuits to an empty
// analysis without calling the sidecar.
func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if strings.TrimSpace(text) == "" {
		s.writeJSON(w, http.StatusOK, s.engine.AnalyzeTokens(text, nil))
		return
	}

	sent, err := s.oracle.Parse(r.Context(), text)
	if err != nil {
		s.logger.Error("parse failed",
			zap.String("request_id", requestID(r.Context())),
			zap.Error(err))
		status := http.StatusInternalServerError
		if errors.Is(err, spacy.ErrUnavailable) {
			status = http.StatusBadGateway
		}
		s.writeError(w, status, "sentence parser is unavailable")
		return
	}

	s.writeJSON(w, http.StatusOK, s.engine.Analyze(sent))
}

// handleSentence returns a practice sentence. The provider never
// fails; only an unknown source value is a client error.
func (s *server) handleSentence(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		source = sentences.SourceLocal
	}
	if !sentences.KnownSource(source) {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unknown source %q: want local, tatoeba or wordnik", source))
		return
	}

	s.writeJSON(w, http.StatusOK, s.provider.Get(r.Context(), source))
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// ---- middleware -----------------------------------------------------------

type ctxKey int

const requestIDKey ctxKey = 0

// withRequestID tags every request with an ID for log correlation,
// keeping one supplied by the caller.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// accessLog writes one line per request.
func accessLog(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", requestID(r.Context())),
		)
	})
}
