// Package session houses concrete implementations of the core.Store. The
// interface itself (and the Inquiry struct) live in the core package to
// centralize domain contracts. Keeping only implementations here prevents
// higher level packages (engine, server) from depending on concrete storage.
//
// Add additional backends (Redis, Postgres, etc.) in sub-packages without
// changing any calling code – only the wiring layer needs to decide which
// implementation to instantiate.
package session
