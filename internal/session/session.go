// Package session owns one working quiz bank per editing session and the
// current question selection. All edits arrive as explicit commands on the
// Session; there is no ambient global state.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/quizdeck/internal/bank"
)

// ErrEmptySelection is returned when a render is requested with no
// questions selected.
var ErrEmptySelection = errors.New("no questions selected")

// ErrNotFound is returned when an edit targets a question ID that is not
// in the working bank. Treated as a no-op by callers, not fatal.
var ErrNotFound = errors.New("question not found")

// ImportMode controls how an imported bank is applied to the session.
type ImportMode string

const (
	ImportReplace ImportMode = "replace"
	ImportMerge   ImportMode = "merge"
)

// Filter narrows the flattened question listing.
type Filter struct {
	// Types restricts to the given question types. Empty means all.
	Types []bank.QuestionType
	// Categories restricts to the given category names. Empty means all.
	Categories []string
	// Query is a case-insensitive substring matched against question
	// text, ID, and category name.
	Query string
}

func (f Filter) matches(q bank.FlatQuestion) bool {
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if q.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if q.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Query != "" {
		needle := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(q.Text), needle) &&
			!strings.Contains(strings.ToLower(q.ID), needle) &&
			!strings.Contains(strings.ToLower(q.Category), needle) {
			return false
		}
	}
	return true
}

// Session holds the working bank and current selection for one editing
// session. It deep-copies the source bank on creation, so the caller's
// bank is never mutated.
type Session struct {
	working  *bank.Bank
	selected []string // insertion order
	index    map[string]int
}

// New creates a session working on a deep copy of b.
func New(b *bank.Bank) *Session {
	return &Session{
		working: b.Clone(),
		index:   map[string]int{},
	}
}

// Bank returns the working bank. Callers must route mutations through
// the session's command methods.
func (s *Session) Bank() *bank.Bank {
	return s.working
}

// AddCategory appends an empty category to the working bank.
func (s *Session) AddCategory(name string) {
	s.working.AddCategory(name)
}

// AddQuestion validates q and appends it under categoryName. Duplicate
// IDs are rejected before any mutation.
func (s *Session) AddQuestion(categoryName string, q bank.Question) error {
	if err := bank.ValidateQuestion(q); err != nil {
		return err
	}
	if _, _, _, exists := s.working.FindQuestion(q.ID); exists {
		return &bank.ErrDuplicateID{ID: q.ID}
	}
	s.working.AddQuestion(categoryName, q)
	return nil
}

// UpdateQuestion replaces the question oldID with q, placing it under
// categoryName. When the ID changed, the new ID must be free and the
// selection is remapped to follow the rename.
func (s *Session) UpdateQuestion(oldID, categoryName string, q bank.Question) error {
	if err := bank.ValidateQuestion(q); err != nil {
		return err
	}
	if _, _, _, ok := s.working.FindQuestion(oldID); !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, oldID)
	}
	if q.ID != oldID {
		if _, _, _, taken := s.working.FindQuestion(q.ID); taken {
			return &bank.ErrDuplicateID{ID: q.ID}
		}
	}
	s.working.DeleteQuestion(oldID)
	s.working.AddQuestion(categoryName, q)

	if pos, ok := s.index[oldID]; ok && q.ID != oldID {
		delete(s.index, oldID)
		s.index[q.ID] = pos
		s.selected[pos] = q.ID
	}
	return nil
}

// DeleteQuestion removes the question and drops it from the selection.
// Unknown IDs report false and leave the session unchanged.
func (s *Session) DeleteQuestion(id string) bool {
	if !s.working.DeleteQuestion(id) {
		return false
	}
	s.Deselect(id)
	return true
}

// Import applies an uploaded bank to the session. Replace swaps the
// working bank and clears the selection; merge folds questions in by ID
// and returns the added/updated counts.
func (s *Session) Import(incoming *bank.Bank, mode ImportMode, overwrite bool) (added, updated int, err error) {
	switch mode {
	case ImportReplace:
		s.working = incoming.Clone()
		s.Clear()
		return 0, 0, nil
	case ImportMerge:
		added, updated = s.working.Merge(incoming, overwrite)
		return added, updated, nil
	default:
		return 0, 0, fmt.Errorf("unknown import mode %q", mode)
	}
}

// Eligible lists the flattened questions that pass the filter, in bank
// order.
func (s *Session) Eligible(f Filter) []bank.FlatQuestion {
	var out []bank.FlatQuestion
	for _, q := range s.working.Flatten() {
		if f.matches(q) {
			out = append(out, q)
		}
	}
	return out
}

// Select adds id to the selection. Unknown or already-selected IDs are
// ignored.
func (s *Session) Select(id string) {
	if _, ok := s.index[id]; ok {
		return
	}
	if _, _, _, exists := s.working.FindQuestion(id); !exists {
		return
	}
	s.index[id] = len(s.selected)
	s.selected = append(s.selected, id)
}

// Deselect removes id from the selection.
func (s *Session) Deselect(id string) {
	pos, ok := s.index[id]
	if !ok {
		return
	}
	s.selected = append(s.selected[:pos:pos], s.selected[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.selected); i++ {
		s.index[s.selected[i]] = i
	}
}

// Toggle flips the selection state of id.
func (s *Session) Toggle(id string) {
	if _, ok := s.index[id]; ok {
		s.Deselect(id)
		return
	}
	s.Select(id)
}

// IsSelected reports whether id is currently selected.
func (s *Session) IsSelected(id string) bool {
	_, ok := s.index[id]
	return ok
}

// SelectAll replaces the selection with every question passing the filter.
func (s *Session) SelectAll(f Filter) {
	s.Clear()
	for _, q := range s.Eligible(f) {
		s.Select(q.ID)
	}
}

// Clear empties the selection.
func (s *Session) Clear() {
	s.selected = nil
	s.index = map[string]int{}
}

// SelectRandom replaces the selection with a random sample of n eligible
// questions. When fewer than n are eligible, all of them are selected;
// n below zero selects nothing.
func (s *Session) SelectRandom(n int, f Filter) {
	eligible := s.Eligible(f)
	rand.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	n = clampCount(n, len(eligible))
	s.Clear()
	for _, q := range eligible[:n] {
		s.Select(q.ID)
	}
}

// SelectFirst replaces the selection with the first n eligible questions
// in bank order. n below zero selects nothing.
func (s *Session) SelectFirst(n int, f Filter) {
	eligible := s.Eligible(f)
	n = clampCount(n, len(eligible))
	s.Clear()
	for _, q := range eligible[:n] {
		s.Select(q.ID)
	}
}

func clampCount(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// Selected returns the selected IDs in selection order.
func (s *Session) Selected() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// SelectedCount returns the number of selected questions.
func (s *Session) SelectedCount() int {
	return len(s.selected)
}

// SubsetForRender derives the reduced bank for the current selection.
// An empty selection is rejected here, before the assembler ever runs.
func (s *Session) SubsetForRender() (*bank.Bank, error) {
	if len(s.selected) == 0 {
		return nil, ErrEmptySelection
	}
	ids := make(map[string]struct{}, len(s.selected))
	for _, id := range s.selected {
		ids[id] = struct{}{}
	}
	return s.working.BuildSubset(ids), nil
}
