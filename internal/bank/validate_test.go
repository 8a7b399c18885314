package bank

import (
	"errors"
	"testing"
)

func TestValidateQuestion(t *testing.T) {
	valid := mcQuestion("Q-1", "stem")
	if err := ValidateQuestion(valid); err != nil {
		t.Fatalf("valid MC rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty id", func(q *Question) { q.ID = " " }},
		{"unknown type", func(q *Question) { q.Type = "essay" }},
		{"empty stem", func(q *Question) { q.Text = "" }},
		{"empty explanation", func(q *Question) { q.Explanation = "" }},
		{"bad difficulty", func(q *Question) { q.Difficulty = "extreme" }},
		{"missing choice", func(q *Question) { delete(q.Choices, "C") }},
		{"blank choice", func(q *Question) { q.Choices["D"] = " " }},
		{"answer not a choice", func(q *Question) { q.Answer = "E" }},
	}
	for _, tc := range cases {
		q := mcQuestion("Q-1", "stem")
		tc.mutate(&q)
		if err := ValidateQuestion(q); err == nil {
			t.Errorf("%s: accepted", tc.name)
		}
	}
}

func TestValidateTrueFalse(t *testing.T) {
	q := tfQuestion("TF-1")
	if err := ValidateQuestion(q); err != nil {
		t.Fatalf("valid TF rejected: %v", err)
	}
	q.Answer = "TRUE"
	if err := ValidateQuestion(q); err != nil {
		t.Errorf("case-insensitive boolean rejected: %v", err)
	}
	q.Answer = "yes"
	if err := ValidateQuestion(q); err == nil {
		t.Error("non-boolean answer accepted")
	}
}

func TestValidateVignetteNeedsStem(t *testing.T) {
	q := mcQuestion("CV-1", "Most likely diagnosis?")
	q.Type = TypeCaseVignette
	if err := ValidateQuestion(q); err == nil {
		t.Error("vignette without clinical stem accepted")
	}
	q.ClinicalStem = "A 19-year-old presents with..."
	if err := ValidateQuestion(q); err != nil {
		t.Errorf("valid vignette rejected: %v", err)
	}
}

func TestBankValidateDuplicateID(t *testing.T) {
	b := testBank()
	b.AddQuestion("Other", mcQuestion("DX-001", "dup"))

	err := b.Validate()
	var dup *ErrDuplicateID
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want ErrDuplicateID", err)
	}
	if dup.ID != "DX-001" {
		t.Errorf("dup ID = %q", dup.ID)
	}
}

func TestBankValidateOK(t *testing.T) {
	if err := testBank().Validate(); err != nil {
		t.Errorf("valid bank rejected: %v", err)
	}
}
