package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hupe1980/fivewhys/core"
	"github.com/hupe1980/fivewhys/engine"
	"github.com/hupe1980/fivewhys/logging"
)

// Handler exposes the inquiry engine over HTTP.
type Handler struct {
	engine *engine.Engine
	logger logging.Logger
}

// NewHandler creates a new Handler around the given engine.
func NewHandler(eng *engine.Engine, logger logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Handler{engine: eng, logger: logger}
}

// Routes mounts all API routes on a fresh chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/v1/step", h.handleStep)
	r.Get("/v1/stats", h.handleStats)
	r.Get("/healthz", h.handleHealth)
	return r
}

// stepRequest is the transport shape of one protocol exchange. The schema is
// validated here; semantic constraints (which fields are legal together)
// belong to the engine.
type stepRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Problem   string `json:"problem,omitempty"`
	Answer    string `json:"answer,omitempty"`
	Stop      bool   `json:"stop,omitempty"`
	Continue  *bool  `json:"continue,omitempty"`
}

func (h *Handler) handleStep(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	out, err := h.engine.Step(engine.StepInput{
		SessionID: req.SessionID,
		Problem:   req.Problem,
		Answer:    req.Answer,
		Stop:      req.Stop,
		Continue:  req.Continue,
	})
	if err != nil {
		h.writeStepError(w, err)
		return
	}

	JSON(w, http.StatusOK, out)
}

func (h *Handler) writeStepError(w http.ResponseWriter, err error) {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		JSON(w, http.StatusBadRequest, map[string]string{
			"error": vErr.Message,
			"field": vErr.Field,
		})
		return
	}

	if errors.Is(err, core.ErrNotFound) {
		JSON(w, http.StatusNotFound, map[string]string{
			"error": "unknown or expired session; start a new inquiry with a fresh problem statement",
		})
		return
	}

	h.logger.Error("step failed", "error", err)
	Error(w, http.StatusInternalServerError, "internal error")
}

func (h *Handler) handleStats(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, h.engine.Stats())
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
