package qgen

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/bank"
)

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *bank.Question, input DraftInput) *ValidationError {
	if !q.Type.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown question type %q", q.Type),
			Retryable: true,
		}
	}
	if input.Type != "" && q.Type != input.Type {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("drafted type %q, requested %q", q.Type, input.Type),
			Retryable: true,
		}
	}
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question stem is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 600 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question stem exceeds 600 characters",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1200 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1200 characters",
			Retryable: true,
		}
	}
	if !q.Difficulty.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown difficulty %q", q.Difficulty),
			Retryable: true,
		}
	}
	if q.Type == bank.TypeCaseVignette && q.ClinicalStem == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "case vignette has no clinical stem",
			Retryable: true,
		}
	}
	return nil
}
