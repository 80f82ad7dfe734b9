// Package server provides the HTTP boundary for the inquiry engine. It is a
// thin, mechanical adapter: it decodes request shapes, delegates every
// semantic decision to the engine, renders structured responses and maps the
// core error taxonomy onto HTTP status codes. No protocol logic lives here.
package server
