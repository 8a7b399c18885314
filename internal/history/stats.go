package history

import (
	"context"
	"fmt"
	"time"
)

// Summary aggregates the journal for the stats command.
type Summary struct {
	Decks        int
	Slides       int
	Questions    int
	LastDeck     time.Time
	LLMRequests  int
	LLMFailures  int
	InputTokens  int
	OutputTokens int
	ByModel      []ModelUsage
}

// ModelUsage is per-model token totals across all LLM requests.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// Summarize computes the journal summary in one pass per table.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary

	var lastDeck string
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(slide_count), 0), COALESCE(SUM(question_count), 0),
		       COALESCE(MAX(created_at), '')
		FROM deck_events`).Scan(&sum.Decks, &sum.Slides, &sum.Questions, &lastDeck)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize deck events: %w", err)
	}
	if lastDeck != "" {
		sum.LastDeck, _ = time.Parse(timeFormat, lastDeck)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(1 - success), 0),
		       COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		FROM llm_events`).Scan(&sum.LLMRequests, &sum.LLMFailures, &sum.InputTokens, &sum.OutputTokens)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize llm events: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT model, COUNT(*), COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		FROM llm_events GROUP BY model ORDER BY COUNT(*) DESC`)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize model usage: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mu ModelUsage
		if err := rows.Scan(&mu.Model, &mu.Requests, &mu.InputTokens, &mu.OutputTokens); err != nil {
			return Summary{}, fmt.Errorf("scan model usage: %w", err)
		}
		sum.ByModel = append(sum.ByModel, mu)
	}
	return sum, rows.Err()
}
