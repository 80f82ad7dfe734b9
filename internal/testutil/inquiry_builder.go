package testutil

import (
	"time"

	"github.com/hupe1980/fivewhys/core"
)

// InquiryBuilder helps construct inquiries with fluent chaining for tests.
// Example:
//
//	inq := NewInquiryBuilder("sess-1", "The website is slow").
//	    Answers("a1", "a2").
//	    Finalized().
//	    Build()
type InquiryBuilder struct {
	id        string
	problem   string
	answers   []string
	finalized bool
	touched   time.Time
}

// NewInquiryBuilder creates a new builder for an inquiry with the given id
// and problem statement. Use chainable methods (Answer, Answers, Finalized,
// TouchedAt) then call Build.
func NewInquiryBuilder(id, problem string) *InquiryBuilder {
	return &InquiryBuilder{id: id, problem: problem}
}

// Answer appends a single answer to the history (chainable).
func (b *InquiryBuilder) Answer(text string) *InquiryBuilder {
	b.answers = append(b.answers, text)
	return b
}

// Answers appends multiple answers to the history (chainable).
func (b *InquiryBuilder) Answers(texts ...string) *InquiryBuilder {
	b.answers = append(b.answers, texts...)
	return b
}

// Finalized marks the resulting inquiry as no longer continuing (chainable).
func (b *InquiryBuilder) Finalized() *InquiryBuilder {
	b.finalized = true
	return b
}

// TouchedAt pins the LastTouched timestamp for expiry tests (chainable).
func (b *InquiryBuilder) TouchedAt(t time.Time) *InquiryBuilder {
	b.touched = t
	return b
}

// Build returns a *core.Inquiry with the answers replayed in step order.
func (b *InquiryBuilder) Build() *core.Inquiry {
	inq := core.NewInquiry(b.id, b.problem)

	for _, text := range b.answers {
		inq.RecordAnswer(text)
		if inq.Step < core.MaxSteps {
			inq.Step++
		}
	}

	if b.finalized {
		inq.Continuing = false
	}

	if !b.touched.IsZero() {
		inq.LastTouched = b.touched
	}

	return inq
}
