package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/fivewhys/core"
	"github.com/hupe1980/fivewhys/logging"
	"github.com/hupe1980/fivewhys/session"
)

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// Store persists inquiry progress between stateless exchanges.
	// Defaults to the bounded in-memory implementation if not provided.
	Store core.Store

	// Logger provides structured logging for debugging and monitoring.
	// Defaults to NoOp logger if nil to ensure no logging dependencies.
	Logger logging.Logger
}

// StepInput is one validated request into the protocol. Exactly one of the
// two shapes is legal: a creation call (Problem set, everything else empty)
// or a continuation call (SessionID and Answer set, optionally Stop).
type StepInput struct {
	// SessionID correlates this call with an existing inquiry. Absent on
	// creation; the engine generates it.
	SessionID string

	// Problem is the original problem statement. Required on creation,
	// forbidden on continuation.
	Problem string

	// Answer is the caller's answer to the current question. Required on
	// continuation, forbidden on creation.
	Answer string

	// Stop requests finalization before all five steps are exhausted.
	// Only valid on continuation.
	Stop bool

	// Continue is the continuation-control flag. The engine decides whether
	// the inquiry continues; a caller supplying this field commits a
	// protocol violation regardless of its value.
	Continue *bool
}

// Summary is the terminal payload of a finalized inquiry.
type Summary struct {
	Problem   string        `json:"problem"`
	Answers   []core.Answer `json:"answers"`
	RootCause string        `json:"root_cause"`
}

// StepOutput describes the next protocol action: either the next question to
// ask (Question set, Summary nil) or the final summary (Summary set). It
// always carries the session identifier and the continuing flag so callers
// can detect completion without parsing content text.
type StepOutput struct {
	SessionID  string   `json:"session_id"`
	Step       int      `json:"step"`
	Question   string   `json:"question,omitempty"`
	Continuing bool     `json:"continuing"`
	Summary    *Summary `json:"summary,omitempty"`
}

// Engine advances inquiries through the fixed five-step protocol. It owns no
// state of its own; all progress lives in the injected store, which keeps
// the engine trivially testable with a fresh store per test.
//
// Concurrency: every store operation is individually atomic, but two
// concurrent continuations of the same session race at the data-structure
// level and the loser overwrites with stale history. This matches the source
// protocol's guarantees; optimistic versioning was deliberately not added.
type Engine struct {
	store  core.Store
	logger logging.Logger
}

// New creates an Engine with sensible defaults and optional overrides.
//
// Example:
//
//	eng := engine.New(func(o *engine.Options) {
//	    o.Store = myStore
//	    o.Logger = myLogger
//	})
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Store:  session.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{store: opts.Store, logger: opts.Logger}
}

// Step processes one protocol exchange. Without a session identifier it
// starts a new inquiry and returns the first question; with one it records
// the answer and returns either the next question or the final summary.
//
// All validation happens before any record write, so a failed call never
// leaves partial state behind.
func (e *Engine) Step(input StepInput) (*StepOutput, error) {
	if input.SessionID == "" {
		return e.create(input)
	}
	return e.advance(input)
}

func (e *Engine) create(input StepInput) (*StepOutput, error) {
	if strings.TrimSpace(input.Problem) == "" {
		return nil, core.NewValidationError("problem", "a non-empty problem statement is required to start an inquiry")
	}

	if input.Answer != "" {
		return nil, core.NewValidationError("answer", "an answer is only valid when continuing an inquiry")
	}

	if input.Stop {
		return nil, core.NewValidationError("stop", "stop is only valid when continuing an inquiry")
	}

	if input.Continue != nil {
		return nil, core.NewValidationError("continue", "the engine decides whether an inquiry continues")
	}

	id := e.freshID()
	inq := core.NewInquiry(id, input.Problem)

	if err := e.store.Put(id, inq); err != nil {
		return nil, fmt.Errorf("failed to store new inquiry: %w", err)
	}

	e.logger.Info("inquiry created", "session_id", id)

	return &StepOutput{
		SessionID:  id,
		Step:       inq.Step,
		Question:   firstQuestion(input.Problem),
		Continuing: true,
	}, nil
}

func (e *Engine) advance(input StepInput) (*StepOutput, error) {
	if input.Problem != "" {
		return nil, core.NewValidationError("problem", "a problem statement is only valid when starting an inquiry")
	}

	if input.Continue != nil {
		return nil, core.NewValidationError("continue", "the engine decides whether an inquiry continues")
	}

	inq, err := e.store.Get(input.SessionID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", input.SessionID, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load inquiry: %w", err)
	}

	if input.Answer == "" {
		return nil, core.NewValidationError("answer", "an answer is required to advance an inquiry")
	}

	// A finalized inquiry is immutable: re-emit the stored summary without
	// recording the supplied answer.
	if !inq.Continuing {
		return e.summaryOutput(inq), nil
	}

	inq.RecordAnswer(input.Answer)

	if next := inq.Step + 1; !input.Stop && next <= core.MaxSteps {
		inq.Step = next

		if err := e.store.Put(inq.ID, inq); err != nil {
			return nil, fmt.Errorf("failed to persist inquiry: %w", err)
		}

		e.logger.Debug("inquiry advanced", "session_id", inq.ID, "step", inq.Step)

		return &StepOutput{
			SessionID:  inq.ID,
			Step:       inq.Step,
			Question:   nextQuestion(inq),
			Continuing: true,
		}, nil
	}

	inq.Continuing = false

	if err := e.store.Put(inq.ID, inq); err != nil {
		return nil, fmt.Errorf("failed to persist inquiry: %w", err)
	}

	e.logger.Info("inquiry finalized", "session_id", inq.ID, "steps", len(inq.Answers), "root_cause", inq.RootCause())

	return e.summaryOutput(inq), nil
}

func (e *Engine) summaryOutput(inq *core.Inquiry) *StepOutput {
	return &StepOutput{
		SessionID:  inq.ID,
		Step:       inq.Step,
		Continuing: false,
		Summary: &Summary{
			Problem:   inq.Problem,
			Answers:   inq.Answers,
			RootCause: inq.RootCause(),
		},
	}
}

// freshID generates a session identifier guaranteed not to collide with any
// live key. uuid collisions are vanishingly rare; the loop makes the
// uniqueness requirement explicit rather than probabilistic.
func (e *Engine) freshID() string {
	for {
		id := core.NewID()
		if _, err := e.store.Get(id); errors.Is(err, core.ErrNotFound) {
			return id
		}
	}
}

// Stats exposes the underlying store's population for health endpoints.
func (e *Engine) Stats() core.Stats { return e.store.Stats() }
