package bank

// QuestionType identifies how a question is asked and answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeCaseVignette   QuestionType = "case_vignette"
)

// AllTypes returns the closed set of question types in display order.
func AllTypes() []QuestionType {
	return []QuestionType{TypeMultipleChoice, TypeTrueFalse, TypeCaseVignette}
}

// HasChoices reports whether this type carries an A-D choice set.
func (t QuestionType) HasChoices() bool {
	return t == TypeMultipleChoice || t == TypeCaseVignette
}

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeCaseVignette:
		return true
	}
	return false
}

// Difficulty is the author-assigned difficulty label.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty labels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ChoiceLabels is the fixed label order for choice-bearing questions.
var ChoiceLabels = []string{"A", "B", "C", "D"}

// Question is a single quiz entry. ID is unique across the whole bank.
type Question struct {
	ID           string            `json:"id"`
	Type         QuestionType      `json:"type"`
	Text         string            `json:"question"`
	Answer       string            `json:"answer"`
	Explanation  string            `json:"explanation"`
	Difficulty   Difficulty        `json:"difficulty"`
	BoardTopic   string            `json:"board_topic"`
	Choices      map[string]string `json:"choices,omitempty"`
	ClinicalStem string            `json:"clinical_stem,omitempty"`
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	out := q
	if q.Choices != nil {
		out.Choices = make(map[string]string, len(q.Choices))
		for k, v := range q.Choices {
			out.Choices[k] = v
		}
	}
	return out
}

// Category is a named, ordered group of questions. Question order is
// insertion order and is never resorted.
type Category struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Bank is the full collection of categories plus free-form metadata.
// It is the single mutable source of truth during an editing session.
type Bank struct {
	Metadata   map[string]any `json:"metadata"`
	Categories []Category     `json:"categories"`
}

// New returns an empty bank with initialized metadata.
func New() *Bank {
	return &Bank{Metadata: map[string]any{}}
}

// Clone returns a deep copy of the bank.
func (b *Bank) Clone() *Bank {
	out := &Bank{
		Metadata:   make(map[string]any, len(b.Metadata)),
		Categories: make([]Category, 0, len(b.Categories)),
	}
	for k, v := range b.Metadata {
		out.Metadata[k] = v
	}
	for _, c := range b.Categories {
		nc := Category{Name: c.Name, Questions: make([]Question, 0, len(c.Questions))}
		for _, q := range c.Questions {
			nc.Questions = append(nc.Questions, q.Clone())
		}
		out.Categories = append(out.Categories, nc)
	}
	return out
}

// Title returns the metadata title, or a fallback when unset.
func (b *Bank) Title() string {
	if t, ok := b.Metadata["title"].(string); ok && t != "" {
		return t
	}
	return "Quiz"
}

// FlatQuestion is one row of the flattened bank listing used by
// selection filtering.
type FlatQuestion struct {
	ID       string
	Type     QuestionType
	Category string
	Text     string
}
