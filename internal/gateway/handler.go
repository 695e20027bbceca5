// Package gateway exposes POST /api/scold: it composes the persona prompts for
// a scolding request, asks the LLM for the text, and relays it to the caller.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/karolswdev/scoldme/internal/llm"
	"github.com/karolswdev/scoldme/internal/scold"
)

// Path is the route the gateway is mounted on.
const Path = "/api/scold"

// maxBodyBytes bounds the request body; a scolding request is a few short strings.
const maxBodyBytes = 64 << 10

// RequestIDHeader carries the per-request id back to the caller.
const RequestIDHeader = "X-Request-Id"

// Handler is the Completion Gateway. It holds no per-request state.
type Handler struct {
	llm llm.Client
}

// New creates a gateway around an LLM client.
func New(client llm.Client) (*Handler, error) {
	if client == nil {
		return nil, ErrNilLLMClient
	}
	return &Handler{llm: client}, nil
}

// Register mounts the gateway on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("POST "+Path, h)
}

// ServeHTTP handles one scolding request. Every failure collapses into the
// same 500 response; the cause only goes to the log.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := log.With().Str("request_id", requestID).Logger()
	w.Header().Set(RequestIDHeader, requestID)
	start := time.Now()

	message, err := h.scold(r, logger)
	if err != nil {
		logger.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("Scolding request failed")
		writeJSON(w, http.StatusInternalServerError, scold.Response{Error: FailureMessage}, logger)
		return
	}

	logger.Info().Dur("elapsed", time.Since(start)).Int("message_len", len(message)).Msg("Scolding generated")
	writeJSON(w, http.StatusOK, scold.Response{Message: message}, logger)
}

func (h *Handler) scold(r *http.Request, logger zerolog.Logger) (string, error) {
	req, err := decodeRequest(r.Body)
	if err != nil {
		return "", err
	}
	logger.Debug().
		Str("character", string(req.Character)).
		Str("mood", string(req.Mood)).
		Strs("conditions", req.Conditions).
		Msg("Scolding request received")

	if err := req.Validate(); err != nil {
		return "", err
	}

	systemPrompt, userPrompt, err := scold.Compose(req)
	if err != nil {
		return "", fmt.Errorf("failed to compose prompts: %w", err)
	}

	// The completion runs to its own end even if the caller goes away.
	message, err := h.llm.Complete(context.WithoutCancel(r.Context()), systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	return message, nil
}

// decodeRequest accepts exactly one JSON value; anything after it is an error.
func decodeRequest(body io.Reader) (scold.Request, error) {
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	var req scold.Request
	if err := dec.Decode(&req); err != nil {
		return scold.Request{}, fmt.Errorf("%w: %w", ErrRequestDecode, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after JSON body")
		}
		return scold.Request{}, fmt.Errorf("%w: %w", ErrRequestDecode, err)
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, body scold.Response, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn().Err(err).Msg("Failed to write response body")
	}
}
