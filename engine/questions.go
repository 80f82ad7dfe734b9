package engine

import (
	"fmt"

	"github.com/hupe1980/fivewhys/core"
)

// firstQuestion phrases the opening question for a freshly created inquiry.
func firstQuestion(problem string) string {
	return fmt.Sprintf(`Why does the problem "%s" occur?`, problem)
}

// nextQuestion phrases the follow-up question after an advance. The subject
// is the answer just recorded; if the inquiry somehow carries no answer yet,
// the question falls back to the original problem statement.
func nextQuestion(inq *core.Inquiry) string {
	subject := inq.LastAnswer()
	if subject == "" {
		return firstQuestion(inq.Problem)
	}
	return fmt.Sprintf(`Why does "%s" occur?`, subject)
}
