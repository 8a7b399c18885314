package qgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/bank"
)

// AnswerConsistencyValidator checks that the answer agrees with the
// question shape: choice-bearing answers must name a declared option,
// true/false answers must be boolean literals.
type AnswerConsistencyValidator struct{}

func (v *AnswerConsistencyValidator) Name() string { return "answer-consistency" }

func (v *AnswerConsistencyValidator) Validate(q *bank.Question, _ DraftInput) *ValidationError {
	switch {
	case q.Type.HasChoices():
		for _, label := range bank.ChoiceLabels {
			if strings.TrimSpace(q.Choices[label]) == "" {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("choice %s is missing or empty", label),
					Retryable: true,
				}
			}
		}
		if len(q.Choices) != len(bank.ChoiceLabels) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("expected %d choices, got %d", len(bank.ChoiceLabels), len(q.Choices)),
				Retryable: true,
			}
		}
		if _, ok := q.Choices[q.Answer]; !ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("answer %q is not a declared choice label", q.Answer),
				Retryable: true,
			}
		}
	case q.Type == bank.TypeTrueFalse:
		a := strings.ToLower(strings.TrimSpace(q.Answer))
		if a != "true" && a != "false" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("true/false answer must be \"true\" or \"false\", got %q", q.Answer),
				Retryable: true,
			}
		}
		if len(q.Choices) != 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "true/false question must not carry choices",
				Retryable: true,
			}
		}
	}
	return nil
}
