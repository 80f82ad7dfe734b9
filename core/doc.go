// Package core provides the foundational domain types, interfaces and error
// taxonomy used by FiveWhys. It defines the core abstractions for:
//
//   - Inquiries (one five-step root-cause interrogation per problem statement)
//   - The Store contract for bounded, expiring inquiry persistence
//   - The typed errors callers use to discriminate protocol violations from
//     unknown or expired sessions
//
// The package intentionally keeps implementation concerns (storage backends,
// the engine state machine, transport adapters) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
