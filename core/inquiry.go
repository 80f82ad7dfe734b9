package core

import (
	"time"
)

// MaxSteps is the fixed depth of the interrogation protocol. An inquiry asks
// at most five "why" questions before it is finalized into a summary.
const MaxSteps = 5

// Answer is one completed question/answer round within an inquiry. Step is
// the step number that was current when the answer was submitted.
type Answer struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

// Inquiry represents one run of the five-step root-cause protocol for a
// single problem statement.
//
// Contract:
//   - Problem is immutable after creation and never empty
//   - Step is monotonically non-decreasing and never exceeds MaxSteps while
//     Continuing is true
//   - Answers are appended in step order and never reordered or mutated
//   - Once Continuing is false the record is immutable except for
//     LastTouched
//   - Clone performs deep copies of slices for safe divergence.
type Inquiry struct {
	ID          string    `json:"id"`
	Problem     string    `json:"problem"`
	Step        int       `json:"step"`
	Answers     []Answer  `json:"answers"`
	Continuing  bool      `json:"continuing"`
	Created     time.Time `json:"created"`
	LastTouched time.Time `json:"last_touched"`
}

// NewInquiry creates a fresh inquiry at step 1 with an empty answer history.
func NewInquiry(id, problem string) *Inquiry {
	now := time.Now()
	return &Inquiry{ID: id, Problem: problem, Step: 1, Answers: []Answer{}, Continuing: true, Created: now, LastTouched: now}
}

// RecordAnswer appends the answer for the current step to the history.
func (i *Inquiry) RecordAnswer(text string) {
	i.Answers = append(i.Answers, Answer{Step: i.Step, Text: text})
}

// LastAnswer returns the most recently recorded answer text, or "" if no
// answer has been recorded yet.
func (i *Inquiry) LastAnswer() string {
	if len(i.Answers) == 0 {
		return ""
	}
	return i.Answers[len(i.Answers)-1].Text
}

// RootCause derives the root cause for the summary: the last recorded
// answer, or the original problem when the inquiry never collected one.
func (i *Inquiry) RootCause() string {
	if last := i.LastAnswer(); last != "" {
		return last
	}
	return i.Problem
}

// Clone returns a deep copy of the inquiry safe for independent mutation.
func (i *Inquiry) Clone() *Inquiry {
	clone := *i
	clone.Answers = make([]Answer, len(i.Answers))
	copy(clone.Answers, i.Answers)
	return &clone
}
