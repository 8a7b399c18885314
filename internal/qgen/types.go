package qgen

import (
	"context"

	"github.com/abhisek/quizdeck/internal/bank"
)

// Drafter produces board-review questions using an LLM provider.
type Drafter interface {
	// Draft produces a single validated question for the given input.
	// All configured validators run before the question is returned.
	Draft(ctx context.Context, input DraftInput) (*bank.Question, error)
}

// DraftInput holds all context needed to draft one question.
type DraftInput struct {
	// Category is the bank category the question is drafted for,
	// e.g. "Diagnosis & DSM-5 Criteria".
	Category string

	// BoardTopic is the short exam-topic label shown on the slide header.
	BoardTopic string

	// Type selects the question shape to draft.
	Type bank.QuestionType

	// Difficulty is the requested difficulty level.
	Difficulty bank.Difficulty

	// PriorQuestions contains the stems of questions already in the bank
	// for this category. Used for deduplication in the prompt.
	PriorQuestions []string
}
