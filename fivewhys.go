// Package fivewhys provides a high-level façade over the inquiry engine and
// its session store, enabling rapid construction of five-whys root-cause
// interrogation services. Most applications interact with this package by:
//  1. Creating a FiveWhys via New() (optionally overriding the default
//     in-memory store or the NoOp logger)
//  2. Calling Step() per stateless exchange: without a session identifier to
//     start an inquiry, with one to answer the current question
//  3. Reading the returned question until Continuing flips to false, at
//     which point the output carries the summary with the derived root cause
//
// The façade delegates protocol decisions to engine.Engine while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a tuned
// store and a structured logger.
package fivewhys

import (
	"github.com/hupe1980/fivewhys/core"
	"github.com/hupe1980/fivewhys/engine"
	"github.com/hupe1980/fivewhys/logging"
	"github.com/hupe1980/fivewhys/session"
)

// Options configures the FiveWhys instance.
type Options struct {
	// Store persists inquiry progress (defaults to the bounded in-memory
	// implementation if not provided).
	Store core.Store

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// FiveWhys is the high-level façade aggregating the underlying engine and
// store.
type FiveWhys struct {
	opts   Options
	engine *engine.Engine
}

// New creates a new FiveWhys instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *FiveWhys {
	opts := Options{
		Store:  session.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	eng := engine.New(func(o *engine.Options) {
		o.Store = opts.Store
		o.Logger = opts.Logger
	})

	return &FiveWhys{opts: opts, engine: eng}
}

// Step processes one protocol exchange via the underlying engine.
func (f *FiveWhys) Step(input engine.StepInput) (*engine.StepOutput, error) {
	return f.engine.Step(input)
}

// Stats reports the session store's population and capacity.
func (f *FiveWhys) Stats() core.Stats {
	return f.engine.Stats()
}
