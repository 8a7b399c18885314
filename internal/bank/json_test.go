package bank

import (
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSON = `{
  "metadata": {"title": "Eating Disorders Quiz", "last_updated": "2026-01"},
  "categories": [
    {
      "name": "Diagnosis",
      "questions": [
        {
          "id": "DX-001",
          "type": "multiple_choice",
          "question": "Which criterion was removed in DSM-5?",
          "answer": "C",
          "explanation": "Amenorrhea was removed.",
          "difficulty": "medium",
          "board_topic": "DSM-5",
          "choices": {"A": "Weight loss", "B": "Fear of gaining", "C": "Amenorrhea", "D": "Body image"}
        },
        {
          "id": "DX-002",
          "type": "true_false",
          "question": "AN has the highest mortality of any psychiatric disorder.",
          "answer": "true",
          "explanation": "SMR roughly 5-10x.",
          "difficulty": "easy",
          "board_topic": "Epidemiology"
        }
      ]
    },
    {
      "name": "Cases",
      "questions": [
        {
          "id": "CV-001",
          "type": "case_vignette",
          "question": "Most likely diagnosis?",
          "answer": "A",
          "explanation": "Classic presentation.",
          "difficulty": "hard",
          "board_topic": "Diagnosis",
          "choices": {"A": "AN", "B": "BN", "C": "BED", "D": "ARFID"},
          "clinical_stem": "A 19-year-old presents with weight loss and bradycardia."
        }
      ]
    }
  ]
}`

func TestParseRoundTrip(t *testing.T) {
	b, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	encoded, err := b.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	reloaded, err := Parse(encoded)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if got, want := reloaded.CategoryNames(), b.CategoryNames(); len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i, name := range b.CategoryNames() {
		if reloaded.CategoryNames()[i] != name {
			t.Errorf("category %d = %q, want %q", i, reloaded.CategoryNames()[i], name)
		}
	}

	origFlat := b.Flatten()
	newFlat := reloaded.Flatten()
	if len(origFlat) != len(newFlat) {
		t.Fatalf("questions = %d, want %d", len(newFlat), len(origFlat))
	}
	for i := range origFlat {
		if origFlat[i] != newFlat[i] {
			t.Errorf("row %d: %+v != %+v", i, newFlat[i], origFlat[i])
		}
	}

	_, _, q, ok := reloaded.FindQuestion("CV-001")
	if !ok {
		t.Fatal("CV-001 lost in round trip")
	}
	if q.ClinicalStem == "" || q.Choices["D"] != "ARFID" {
		t.Errorf("vignette fields lost: %+v", q)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":           `{`,
		"missing categories": `{"metadata": {}}`,
		"bad type":           `{"categories": [{"name": "X", "questions": [{"id": "1", "type": "essay", "question": "?", "answer": "A"}]}]}`,
		"missing id":         `{"categories": [{"name": "X", "questions": [{"type": "true_false", "question": "?", "answer": "true"}]}]}`,
		"unnamed category":   `{"categories": [{"questions": []}]}`,
	}
	for name, in := range cases {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("%s: Parse accepted malformed input", name)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	b, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := b.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.QuestionCount() != b.QuestionCount() {
		t.Errorf("count = %d, want %d", loaded.QuestionCount(), b.QuestionCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "read bank") {
		t.Errorf("err = %v", err)
	}
}
