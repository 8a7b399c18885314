package bank

import (
	"fmt"
	"strings"
)

// ErrDuplicateID reports an add or edit that would violate ID uniqueness.
type ErrDuplicateID struct {
	ID string
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("question ID %q already exists", e.ID)
}

// ValidateQuestion checks the per-type field requirements enforced at the
// edit boundary. Questions that fail never reach the assembler.
func ValidateQuestion(q Question) error {
	if strings.TrimSpace(q.ID) == "" {
		return fmt.Errorf("question ID is required")
	}
	if !q.Type.Valid() {
		return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
	}
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question %s: stem is required", q.ID)
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fmt.Errorf("question %s: explanation is required", q.ID)
	}
	if q.Difficulty != "" && !q.Difficulty.Valid() {
		return fmt.Errorf("question %s: unknown difficulty %q", q.ID, q.Difficulty)
	}

	switch {
	case q.Type.HasChoices():
		for _, label := range ChoiceLabels {
			if strings.TrimSpace(q.Choices[label]) == "" {
				return fmt.Errorf("question %s: choice %s is required", q.ID, label)
			}
		}
		if _, ok := q.Choices[q.Answer]; !ok {
			return fmt.Errorf("question %s: answer %q is not a declared choice", q.ID, q.Answer)
		}
		if q.Type == TypeCaseVignette && strings.TrimSpace(q.ClinicalStem) == "" {
			return fmt.Errorf("question %s: clinical stem is required for case vignettes", q.ID)
		}
	case q.Type == TypeTrueFalse:
		answer := strings.ToLower(strings.TrimSpace(q.Answer))
		if answer != "true" && answer != "false" {
			return fmt.Errorf("question %s: true/false answer must be \"true\" or \"false\", got %q", q.ID, q.Answer)
		}
	}
	return nil
}

// Validate checks every question in the bank and the bank-wide ID
// uniqueness invariant. The first violation is returned.
func (b *Bank) Validate() error {
	seen := make(map[string]struct{})
	for _, cat := range b.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("category with empty name")
		}
		for _, q := range cat.Questions {
			if err := ValidateQuestion(q); err != nil {
				return err
			}
			if _, dup := seen[q.ID]; dup {
				return &ErrDuplicateID{ID: q.ID}
			}
			seen[q.ID] = struct{}{}
		}
	}
	return nil
}
