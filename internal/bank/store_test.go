package bank

import (
	"reflect"
	"testing"
)

func mcQuestion(id, text string) Question {
	return Question{
		ID:          id,
		Type:        TypeMultipleChoice,
		Text:        text,
		Answer:      "B",
		Explanation: "Because B.",
		Difficulty:  DifficultyMedium,
		BoardTopic:  "Diagnosis",
		Choices:     map[string]string{"A": "one", "B": "two", "C": "three", "D": "four"},
	}
}

func tfQuestion(id string) Question {
	return Question{
		ID:          id,
		Type:        TypeTrueFalse,
		Text:        "The sky is blue.",
		Answer:      "true",
		Explanation: "It is.",
		Difficulty:  DifficultyEasy,
		BoardTopic:  "Basics",
	}
}

func testBank() *Bank {
	b := New()
	b.Metadata["title"] = "Board Review"
	b.AddQuestion("Diagnosis", mcQuestion("DX-001", "Which finding?"))
	b.AddQuestion("Diagnosis", tfQuestion("DX-002"))
	b.AddQuestion("Treatment", mcQuestion("TX-001", "First-line drug?"))
	return b
}

func TestAddCategory(t *testing.T) {
	b := New()
	b.AddCategory("Pharmacotherapy")
	b.AddCategory("Pharmacotherapy")
	b.AddCategory("  ")
	if len(b.Categories) != 1 {
		t.Fatalf("got %d categories, want 1", len(b.Categories))
	}
	if b.Categories[0].Name != "Pharmacotherapy" {
		t.Errorf("name = %q", b.Categories[0].Name)
	}
}

func TestAddQuestionCreatesCategory(t *testing.T) {
	b := New()
	b.AddQuestion("New", mcQuestion("Q-1", "stem"))
	if len(b.Categories) != 1 || len(b.Categories[0].Questions) != 1 {
		t.Fatalf("unexpected shape: %+v", b.Categories)
	}
}

func TestAddQuestionTrimsCategoryName(t *testing.T) {
	b := New()
	b.AddQuestion("Pharmacotherapy", mcQuestion("RX-001", "stem"))
	b.AddQuestion("  Pharmacotherapy  ", mcQuestion("RX-002", "stem"))

	if len(b.Categories) != 1 {
		t.Fatalf("got %d categories, want 1", len(b.Categories))
	}
	if n := len(b.Categories[0].Questions); n != 2 {
		t.Fatalf("got %d questions in %q, want 2", n, b.Categories[0].Name)
	}
	if _, _, _, ok := b.FindQuestion("RX-002"); !ok {
		t.Error("RX-002 not found after add with padded category name")
	}
}

func TestAddQuestionBlankCategoryFallsBack(t *testing.T) {
	b := New()
	b.AddQuestion("   ", mcQuestion("Q-1", "stem"))

	if len(b.Categories) != 1 || b.Categories[0].Name != "Uncategorized" {
		t.Fatalf("unexpected shape: %+v", b.Categories)
	}
	if _, _, _, ok := b.FindQuestion("Q-1"); !ok {
		t.Error("Q-1 not found after add with blank category name")
	}
}

func TestMergePaddedCategoryNameKeepsQuestion(t *testing.T) {
	incoming := &Bank{Categories: []Category{{
		Name:      " Pharmacotherapy ",
		Questions: []Question{mcQuestion("RX-010", "stem")},
	}}}

	b := New()
	added, updated := b.Merge(incoming, false)
	if added != 1 || updated != 0 {
		t.Fatalf("added=%d updated=%d, want 1/0", added, updated)
	}
	if b.QuestionCount() != 1 {
		t.Fatalf("question count = %d, want 1", b.QuestionCount())
	}
	if _, _, _, ok := b.FindQuestion("RX-010"); !ok {
		t.Error("RX-010 not found after merge")
	}
}

func TestFindQuestion(t *testing.T) {
	b := testBank()
	cat, idx, q, ok := b.FindQuestion("DX-002")
	if !ok {
		t.Fatal("DX-002 not found")
	}
	if cat != "Diagnosis" || idx != 1 || q.ID != "DX-002" {
		t.Errorf("got (%s, %d, %s)", cat, idx, q.ID)
	}

	if _, _, _, ok := b.FindQuestion("missing"); ok {
		t.Error("found a question that does not exist")
	}
}

func TestDeleteThenFind(t *testing.T) {
	b := testBank()
	if !b.DeleteQuestion("DX-001") {
		t.Fatal("delete returned false")
	}
	if _, _, _, ok := b.FindQuestion("DX-001"); ok {
		t.Error("deleted question still findable")
	}
	// Emptied categories are kept; Diagnosis still holds DX-002.
	if len(b.Categories) != 2 {
		t.Errorf("got %d categories, want 2", len(b.Categories))
	}
	if b.DeleteQuestion("DX-001") {
		t.Error("second delete reported a removal")
	}
}

func TestMergeIdempotent(t *testing.T) {
	b := testBank()
	before, err := b.Encode()
	if err != nil {
		t.Fatal(err)
	}

	added, updated := b.Merge(testBank(), false)
	if added != 0 || updated != 0 {
		t.Errorf("self-merge counts = (%d, %d), want (0, 0)", added, updated)
	}

	after, err := b.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("self-merge without overwrite changed the bank")
	}
}

func TestMergeAddsNewQuestions(t *testing.T) {
	b := testBank()
	incoming := New()
	incoming.AddQuestion("Epidemiology", mcQuestion("EP-001", "Prevalence?"))

	added, updated := b.Merge(incoming, false)
	if added != 1 || updated != 0 {
		t.Errorf("counts = (%d, %d), want (1, 0)", added, updated)
	}
	if _, _, _, ok := b.FindQuestion("EP-001"); !ok {
		t.Error("merged question not findable")
	}
	if got := b.CategoryNames(); got[len(got)-1] != "Epidemiology" {
		t.Errorf("incoming category not appended: %v", got)
	}
}

func TestMergeOverwrite(t *testing.T) {
	b := testBank()
	incoming := New()
	changed := mcQuestion("DX-001", "Rewritten stem")
	incoming.AddQuestion("Diagnosis", changed)

	added, updated := b.Merge(incoming, true)
	if added != 0 || updated != 1 {
		t.Errorf("counts = (%d, %d), want (0, 1)", added, updated)
	}
	_, _, q, ok := b.FindQuestion("DX-001")
	if !ok {
		t.Fatal("DX-001 gone after overwrite merge")
	}
	if q.Text != "Rewritten stem" {
		t.Errorf("text = %q, want the incoming text", q.Text)
	}
}

func TestMergeOverwriteCategoryFallback(t *testing.T) {
	b := testBank()
	incoming := New()
	// Whitespace-only names count as absent, same as empty.
	incoming.Categories = []Category{{
		Name:      "  ",
		Questions: []Question{mcQuestion("TX-001", "New stem")},
	}}

	_, updated := b.Merge(incoming, true)
	if updated != 1 {
		t.Fatalf("updated = %d, want 1", updated)
	}
	cat, _, _, ok := b.FindQuestion("TX-001")
	if !ok {
		t.Fatal("TX-001 missing")
	}
	// No incoming category name: the question stays where it lived.
	if cat != "Treatment" {
		t.Errorf("category = %q, want Treatment", cat)
	}
}

func TestMergeIsDeepCopy(t *testing.T) {
	b := New()
	incoming := New()
	q := mcQuestion("Q-1", "stem")
	incoming.AddQuestion("Cat", q)

	b.Merge(incoming, false)
	incoming.Categories[0].Questions[0].Choices["A"] = "mutated"

	_, _, merged, _ := b.FindQuestion("Q-1")
	if merged.Choices["A"] == "mutated" {
		t.Error("merge shared choice map with incoming bank")
	}
}

func TestUniqueIDsUnderAddAndMerge(t *testing.T) {
	b := testBank()
	incoming := testBank()
	incoming.AddQuestion("Extra", mcQuestion("EX-001", "extra"))
	b.Merge(incoming, false)
	b.Merge(incoming, true)

	seen := map[string]int{}
	for _, f := range b.Flatten() {
		seen[f.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("ID %s appears %d times", id, n)
		}
	}
}

func TestBuildSubset(t *testing.T) {
	b := testBank()
	sub := b.BuildSubset(map[string]struct{}{"DX-002": {}, "TX-001": {}})

	if got := sub.QuestionCount(); got != 2 {
		t.Fatalf("subset has %d questions, want 2", got)
	}
	for _, f := range sub.Flatten() {
		if f.ID != "DX-002" && f.ID != "TX-001" {
			t.Errorf("unexpected question %s in subset", f.ID)
		}
	}
	if sub.Metadata["selection_count"] != 2 {
		t.Errorf("selection_count = %v", sub.Metadata["selection_count"])
	}
	if sub.Metadata["title"] != "Board Review" {
		t.Error("metadata not carried into subset")
	}

	// Categories with zero surviving questions are dropped entirely.
	empty := b.BuildSubset(map[string]struct{}{"TX-001": {}})
	if !reflect.DeepEqual(empty.CategoryNames(), []string{"Treatment"}) {
		t.Errorf("categories = %v", empty.CategoryNames())
	}

	// Source bank is untouched.
	if b.QuestionCount() != 3 {
		t.Error("BuildSubset mutated the source bank")
	}
}

func TestFilterCategories(t *testing.T) {
	b := testBank()
	got := b.FilterCategories("diag")
	if len(got) != 1 || got[0].Name != "Diagnosis" {
		t.Errorf("filter = %+v", got)
	}
	if len(b.FilterCategories("")) != 2 {
		t.Error("empty filter should match all categories")
	}
	if len(b.FilterCategories("zzz")) != 0 {
		t.Error("no category should match zzz")
	}
}

func TestFlattenOrder(t *testing.T) {
	b := testBank()
	flat := b.Flatten()
	wantIDs := []string{"DX-001", "DX-002", "TX-001"}
	if len(flat) != len(wantIDs) {
		t.Fatalf("got %d rows", len(flat))
	}
	for i, want := range wantIDs {
		if flat[i].ID != want {
			t.Errorf("row %d = %s, want %s", i, flat[i].ID, want)
		}
	}
}
