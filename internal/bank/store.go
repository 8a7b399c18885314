package bank

import "strings"

// AddCategory appends an empty category. No-op when a category with that
// name already exists or the name is blank.
func (b *Bank) AddCategory(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, c := range b.Categories {
		if c.Name == name {
			return
		}
	}
	b.Categories = append(b.Categories, Category{Name: name})
}

// AddQuestion appends q to the named category, creating the category if
// absent. The name is trimmed the same way AddCategory trims it; a blank
// name lands the question in "Uncategorized". ID uniqueness is the edit
// boundary's responsibility; this operation does not re-validate it.
func (b *Bank) AddQuestion(categoryName string, q Question) {
	categoryName = strings.TrimSpace(categoryName)
	if categoryName == "" {
		categoryName = "Uncategorized"
	}
	b.AddCategory(categoryName)
	for i := range b.Categories {
		if b.Categories[i].Name == categoryName {
			b.Categories[i].Questions = append(b.Categories[i].Questions, q)
			return
		}
	}
}

// FindQuestion scans categories in order and returns the first question
// with the given ID. IDs are unique, so at most one match exists.
func (b *Bank) FindQuestion(id string) (categoryName string, index int, q *Question, ok bool) {
	for ci := range b.Categories {
		for qi := range b.Categories[ci].Questions {
			if b.Categories[ci].Questions[qi].ID == id {
				return b.Categories[ci].Name, qi, &b.Categories[ci].Questions[qi], true
			}
		}
	}
	return "", 0, nil, false
}

// DeleteQuestion removes the question with the given ID and reports
// whether a removal occurred. An emptied category is kept.
func (b *Bank) DeleteQuestion(id string) bool {
	for ci := range b.Categories {
		qs := b.Categories[ci].Questions
		for qi := range qs {
			if qs[qi].ID == id {
				b.Categories[ci].Questions = append(qs[:qi:qi], qs[qi+1:]...)
				return true
			}
		}
	}
	return false
}

// Merge folds every question of incoming into b, keyed by question ID.
// Absent IDs are deep-copied under the incoming category. Existing IDs are
// skipped unless overwrite is set, in which case the old entry is deleted
// and the incoming copy lands under the incoming category, falling back to
// the entry's prior category when the incoming category name is empty.
// Returns the number of added and updated questions.
func (b *Bank) Merge(incoming *Bank, overwrite bool) (added, updated int) {
	for _, cat := range incoming.Categories {
		for _, q := range cat.Questions {
			if q.ID == "" {
				continue
			}
			prevCategory, _, _, exists := b.FindQuestion(q.ID)
			if exists {
				if !overwrite {
					continue
				}
				target := strings.TrimSpace(cat.Name)
				if target == "" {
					target = prevCategory
				}
				b.DeleteQuestion(q.ID)
				b.AddQuestion(target, q.Clone())
				updated++
				continue
			}
			b.AddQuestion(cat.Name, q.Clone())
			added++
		}
	}
	return added, updated
}

// BuildSubset returns a new bank containing only the questions whose IDs
// are in ids. Categories left with no selected question are dropped.
// Metadata is shallow-copied with an added selection_count entry.
func (b *Bank) BuildSubset(ids map[string]struct{}) *Bank {
	out := &Bank{Metadata: make(map[string]any, len(b.Metadata)+1)}
	for k, v := range b.Metadata {
		out.Metadata[k] = v
	}
	out.Metadata["selection_count"] = len(ids)

	for _, cat := range b.Categories {
		var kept []Question
		for _, q := range cat.Questions {
			if _, ok := ids[q.ID]; ok {
				kept = append(kept, q)
			}
		}
		if len(kept) > 0 {
			out.Categories = append(out.Categories, Category{Name: cat.Name, Questions: kept})
		}
	}
	return out
}

// Flatten lists every question with its category in bank order.
func (b *Bank) Flatten() []FlatQuestion {
	var out []FlatQuestion
	for _, cat := range b.Categories {
		for _, q := range cat.Questions {
			out = append(out, FlatQuestion{
				ID:       q.ID,
				Type:     q.Type,
				Category: cat.Name,
				Text:     q.Text,
			})
		}
	}
	return out
}

// QuestionIDs returns the set of all question IDs in the bank.
func (b *Bank) QuestionIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, cat := range b.Categories {
		for _, q := range cat.Questions {
			if q.ID != "" {
				ids[q.ID] = struct{}{}
			}
		}
	}
	return ids
}

// QuestionCount returns the total number of questions across categories.
func (b *Bank) QuestionCount() int {
	n := 0
	for _, cat := range b.Categories {
		n += len(cat.Questions)
	}
	return n
}

// CategoryNames returns category names in bank order.
func (b *Bank) CategoryNames() []string {
	names := make([]string, 0, len(b.Categories))
	for _, cat := range b.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// FilterCategories returns the categories whose name contains substr,
// case-insensitively. An empty substr matches everything.
func (b *Bank) FilterCategories(substr string) []Category {
	if substr == "" {
		return b.Categories
	}
	needle := strings.ToLower(substr)
	var out []Category
	for _, cat := range b.Categories {
		if strings.Contains(strings.ToLower(cat.Name), needle) {
			out = append(out, cat)
		}
	}
	return out
}
