// Package engine implements the inquiry state machine that drives the
// five-step root-cause protocol. Each call to Step either starts a new
// inquiry or advances an existing one by exactly one step, correlating
// stateless exchanges through an opaque session identifier and persisting
// progress via an injected core.Store.
//
// State machine per inquiry:
//
//	NEW (no record) → ACTIVE (step 1..5) → FINALIZED (terminal)
//
// The engine, not the caller, decides whether an inquiry continues; inputs
// attempting to control continuation are rejected as protocol violations.
package engine
