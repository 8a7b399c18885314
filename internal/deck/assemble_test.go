package deck

import (
	"testing"

	"github.com/abhisek/quizdeck/internal/bank"
)

func sampleBank() *bank.Bank {
	b := bank.New()
	b.Metadata["title"] = "Eating Disorders Quiz"
	b.Metadata["last_updated"] = "January 2026"
	b.AddQuestion("Diagnosis", bank.Question{
		ID:          "MC-1",
		Type:        bank.TypeMultipleChoice,
		Text:        "Which electrolyte abnormality?",
		Answer:      "B",
		Explanation: "Hypokalemia from purging.",
		Difficulty:  bank.DifficultyMedium,
		BoardTopic:  "Labs",
		Choices:     map[string]string{"A": "Hypernatremia", "B": "Hypokalemia", "C": "Hypercalcemia", "D": "Hypermagnesemia"},
	})
	b.AddQuestion("Diagnosis", bank.Question{
		ID:          "TF-1",
		Type:        bank.TypeTrueFalse,
		Text:        "Amenorrhea is required for AN in DSM-5.",
		Answer:      "false",
		Explanation: "Removed in DSM-5.",
		Difficulty:  bank.DifficultyEasy,
		BoardTopic:  "DSM-5",
	})
	b.AddQuestion("Diagnosis", bank.Question{
		ID:           "CV-1",
		Type:         bank.TypeCaseVignette,
		Text:         "Most likely diagnosis?",
		Answer:       "A",
		Explanation:  "Classic AN presentation.",
		Difficulty:   bank.DifficultyHard,
		BoardTopic:   "Diagnosis",
		Choices:      map[string]string{"A": "AN", "B": "BN", "C": "BED", "D": "ARFID"},
		ClinicalStem: "A 19-year-old woman presents with bradycardia and lanugo.",
	})
	return b
}

func roles(slides []Slide) []Role {
	out := make([]Role, len(slides))
	for i, s := range slides {
		out[i] = s.Role
	}
	return out
}

// The determinism contract: one category with one MC, one TF, and one
// vignette yields exactly 12 slides in standard format.
func TestStandardSlideCount(t *testing.T) {
	slides := Assemble(sampleBank(), Options{Format: FormatStandard})

	if len(slides) != 12 {
		t.Fatalf("got %d slides, want 12: %v", len(slides), roles(slides))
	}

	want := []Role{
		RoleTitle, RoleInstructions, RoleDivider,
		RoleQuestion, RoleReveal, // MC
		RoleQuestion, RoleReveal, // TF
		RoleStem, RoleQuestion, RoleReveal, // vignette
		RoleFacts, RoleFacts,
	}
	for i, r := range want {
		if slides[i].Role != r {
			t.Errorf("slide %d role = %s, want %s", i, slides[i].Role, r)
		}
	}
}

func TestLightningRoundAddsBoardSlides(t *testing.T) {
	slides := Assemble(sampleBank(), Options{Format: FormatLightning})

	if len(slides) != 14 {
		t.Fatalf("got %d slides, want 14", len(slides))
	}
	if slides[2].Role != RoleBoard || slides[3].Role != RoleScoreboard {
		t.Errorf("slides 2,3 roles = %s,%s", slides[2].Role, slides[3].Role)
	}
}

func TestBoardCategoryCap(t *testing.T) {
	b := bank.New()
	for _, name := range []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"} {
		b.AddQuestion(name, bank.Question{ID: "Q-" + name, Type: bank.TypeTrueFalse, Text: "?", Answer: "true"})
	}
	slides := Assemble(b, Options{Format: FormatLightning})

	var board *Slide
	for i := range slides {
		if slides[i].Role == RoleBoard {
			board = &slides[i]
			break
		}
	}
	if board == nil {
		t.Fatal("no board slide")
	}
	// Title text + 5 category headers + 5x5 point cells, each cell a box+text pair.
	wantShapes := 1 + 5*2 + 25*2
	if len(board.Shapes) != wantShapes {
		t.Errorf("board has %d shapes, want %d", len(board.Shapes), wantShapes)
	}
}

func TestCategoryFilter(t *testing.T) {
	b := sampleBank()
	b.AddQuestion("Pharmacotherapy", bank.Question{
		ID: "RX-1", Type: bank.TypeTrueFalse, Text: "?", Answer: "true", Explanation: "x",
	})

	slides := Assemble(b, Options{Format: FormatStandard, CategoryFilter: "pharma"})
	// title + instructions + divider + TF pair + 2 facts
	if len(slides) != 7 {
		t.Fatalf("got %d slides, want 7: %v", len(slides), roles(slides))
	}
	if slides[2].Title != "Pharmacotherapy" {
		t.Errorf("divider title = %q", slides[2].Title)
	}
}

func TestEmptyCategorySkipsQuestions(t *testing.T) {
	b := sampleBank()
	b.AddCategory("Reserved")

	slides := Assemble(b, Options{Format: FormatStandard})
	// The empty category still gets its divider, then zero question slides.
	if len(slides) != 13 {
		t.Fatalf("got %d slides, want 13: %v", len(slides), roles(slides))
	}
	if slides[10].Role != RoleDivider || slides[10].Title != "Reserved" {
		t.Errorf("slide 10 = %s %q", slides[10].Role, slides[10].Title)
	}
}

func TestUnknownTypeFallsBackToMultipleChoice(t *testing.T) {
	b := bank.New()
	b.AddQuestion("Misc", bank.Question{
		ID: "X-1", Type: "matching", Text: "?", Answer: "A",
		Choices: map[string]string{"A": "a", "B": "b"},
	})
	slides := Assemble(b, Options{Format: FormatStandard})
	// title + instructions + divider + MC pair + 2 facts
	if len(slides) != 7 {
		t.Fatalf("got %d slides, want 7: %v", len(slides), roles(slides))
	}
	if slides[3].Role != RoleQuestion || slides[4].Role != RoleReveal {
		t.Errorf("fallback roles = %s,%s", slides[3].Role, slides[4].Role)
	}
}

func TestAssemblerTotalOverSparseQuestions(t *testing.T) {
	b := bank.New()
	// No explanation, no topic, no difficulty, missing two choices.
	b.AddQuestion("Sparse", bank.Question{
		ID: "S-1", Type: bank.TypeMultipleChoice, Text: "?", Answer: "A",
		Choices: map[string]string{"A": "a", "B": "b"},
	})
	slides := Assemble(b, Options{Format: FormatStandard})
	if len(slides) != 7 {
		t.Fatalf("assembler choked on sparse question: %d slides", len(slides))
	}
}

func TestRevealHighlightsCorrectChoice(t *testing.T) {
	slides := Assemble(sampleBank(), Options{Format: FormatStandard})
	reveal := slides[4] // MC reveal

	greens, greys := 0, 0
	for _, sh := range reveal.Shapes {
		if sh.Kind != KindBox {
			continue
		}
		switch sh.Fill {
		case Green:
			greens++
		case MutedGrey:
			greys++
		}
	}
	// Header bar + the correct pill are green; three distractors grey.
	if greens != 2 || greys != 3 {
		t.Errorf("greens=%d greys=%d, want 2 and 3", greens, greys)
	}
}

func TestTrueFalseRevealColor(t *testing.T) {
	slides := Assemble(sampleBank(), Options{Format: FormatStandard})
	reveal := slides[6] // TF reveal, answer "false"

	if len(reveal.Shapes) == 0 || reveal.Shapes[0].Fill != Red {
		t.Errorf("false answer header fill = %v, want Red", reveal.Shapes[0].Fill)
	}
}

func TestQuestionNumberingIsGlobal(t *testing.T) {
	b := bank.New()
	b.AddQuestion("One", bank.Question{ID: "A-1", Type: bank.TypeTrueFalse, Text: "?", Answer: "true"})
	b.AddQuestion("Two", bank.Question{ID: "B-1", Type: bank.TypeTrueFalse, Text: "?", Answer: "true"})

	slides := Assemble(b, Options{Format: FormatStandard})
	// Second category's question slide header must read Q2.
	var headers []string
	for _, s := range slides {
		if s.Role == RoleQuestion {
			for _, sh := range s.Shapes {
				if sh.Kind == KindText {
					headers = append(headers, sh.Text)
					break
				}
			}
		}
	}
	if len(headers) != 2 {
		t.Fatalf("found %d question slides", len(headers))
	}
	if headers[1][:2] != "Q2" {
		t.Errorf("second question header = %q, want Q2 prefix", headers[1])
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"standard":          FormatStandard,
		"":                  FormatStandard,
		"jeopardy":          FormatLightning,
		"lightning_round":   FormatLightning,
		"audience_response": FormatAudience,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("karaoke"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestAssembleDoesNotMutateBank(t *testing.T) {
	b := sampleBank()
	before, _ := b.Encode()
	Assemble(b, Options{Format: FormatLightning})
	after, _ := b.Encode()
	if string(before) != string(after) {
		t.Error("Assemble mutated its input bank")
	}
}
