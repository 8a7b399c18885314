// Package qgen drafts board-review questions with an LLM and validates
// them against the bank question format before they enter a bank.
package qgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/llm"
)

// LLMDrafter implements Drafter using the LLM provider.
type LLMDrafter struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMDrafter with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMDrafter {
	return &LLMDrafter{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Type         string            `json:"type"`
	Question     string            `json:"question"`
	ClinicalStem string            `json:"clinical_stem"`
	Choices      map[string]string `json:"choices"`
	Answer       string            `json:"answer"`
	Explanation  string            `json:"explanation"`
	Difficulty   string            `json:"difficulty"`
	BoardTopic   string            `json:"board_topic"`
}

// Draft produces a single question for the given input context.
func (d *LLMDrafter) Draft(ctx context.Context, input DraftInput) (*bank.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionDraft)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, d.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM draft failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &bank.Question{
		ID:           newDraftID(),
		Type:         bank.QuestionType(raw.Type),
		Text:         raw.Question,
		ClinicalStem: raw.ClinicalStem,
		Answer:       raw.Answer,
		Explanation:  raw.Explanation,
		Difficulty:   bank.Difficulty(raw.Difficulty),
		BoardTopic:   raw.BoardTopic,
	}
	if len(raw.Choices) > 0 {
		q.Choices = raw.Choices
	}

	// Run validators in order.
	for _, v := range d.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// newDraftID mints a bank ID for a drafted question.
func newDraftID() string {
	return "GEN-" + uuid.NewString()[:8]
}
