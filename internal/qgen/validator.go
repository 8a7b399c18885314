package qgen

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/bank"
)

// Validator checks a drafted question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "answer-consistency".
	Name() string

	// Validate checks the question and returns nil if it passes.
	// The validator receives the full DraftInput for context.
	Validate(q *bank.Question, input DraftInput) *ValidationError
}

// ValidationError describes why a drafted question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether redrafting is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
