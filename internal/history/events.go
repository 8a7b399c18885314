package history

import (
	"context"
	"fmt"
	"time"
)

const timeFormat = time.RFC3339

// DeckEvent records one deck build.
type DeckEvent struct {
	ID             int64
	CreatedAt      time.Time
	Format         string
	CategoryFilter string
	Output         string
	SlideCount     int
	QuestionCount  int
	Template       string
	Position       string
}

// LLMEvent records one LLM request, successful or not.
type LLMEvent struct {
	ID           int64
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AppendDeckEvent inserts a deck build record. A zero CreatedAt is
// stamped with the current time.
func (s *Store) AppendDeckEvent(ctx context.Context, ev DeckEvent) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO deck_events
			(created_at, format, category_filter, output, slide_count, question_count, template, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.CreatedAt.UTC().Format(timeFormat), ev.Format, ev.CategoryFilter,
		ev.Output, ev.SlideCount, ev.QuestionCount, ev.Template, ev.Position)
	if err != nil {
		return fmt.Errorf("append deck event: %w", err)
	}
	return nil
}

// ListDeckEvents returns the most recent deck builds, newest first.
func (s *Store) ListDeckEvents(ctx context.Context, limit int) ([]DeckEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, format, category_filter, output, slide_count, question_count, template, position
		FROM deck_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list deck events: %w", err)
	}
	defer rows.Close()

	var out []DeckEvent
	for rows.Next() {
		var ev DeckEvent
		var created string
		if err := rows.Scan(&ev.ID, &created, &ev.Format, &ev.CategoryFilter,
			&ev.Output, &ev.SlideCount, &ev.QuestionCount, &ev.Template, &ev.Position); err != nil {
			return nil, fmt.Errorf("scan deck event: %w", err)
		}
		ev.CreatedAt, _ = time.Parse(timeFormat, created)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// AppendLLMEvent inserts an LLM request record.
func (s *Store) AppendLLMEvent(ctx context.Context, ev LLMEvent) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	success := 0
	if ev.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(created_at, provider, model, purpose, latency_ms, input_tokens, output_tokens,
			 success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.CreatedAt.UTC().Format(timeFormat), ev.Provider, ev.Model, ev.Purpose,
		ev.LatencyMs, ev.InputTokens, ev.OutputTokens, success,
		ev.ErrorMessage, ev.RequestBody, ev.ResponseBody)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

// ListLLMEvents returns the most recent LLM requests, newest first.
func (s *Store) ListLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, provider, model, purpose, latency_ms, input_tokens, output_tokens,
		       success, error_message, request_body, response_body
		FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		var ev LLMEvent
		var created string
		var success int
		if err := rows.Scan(&ev.ID, &created, &ev.Provider, &ev.Model, &ev.Purpose,
			&ev.LatencyMs, &ev.InputTokens, &ev.OutputTokens, &success,
			&ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		ev.CreatedAt, _ = time.Parse(timeFormat, created)
		ev.Success = success != 0
		out = append(out, ev)
	}
	return out, rows.Err()
}
