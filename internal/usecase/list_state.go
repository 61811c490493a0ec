package usecase

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/SaErPu/expense-tracker-web/internal/domain"
)

// ListState owns the in-memory view of all expenses and the active
// category filter. The held list is a cache of the last successful full
// load; it is only ever replaced wholesale, never patched in place.
//
// FilteredView and Total are pure derivations over the same lock, so the
// total always equals the sum of the visible amounts with no intermediate
// state observable.
type ListState struct {
	mu       sync.RWMutex
	expenses []domain.Expense
	filter   string
}

// NewListState creates an empty ListState with no filter.
func NewListState() *ListState {
	return &ListState{}
}

// ReplaceAll atomically replaces the held list. Called only with
// confirmed-good data from a full gateway reload.
func (s *ListState) ReplaceAll(items []domain.Expense) {
	next := make([]domain.Expense, len(items))
	copy(next, items)

	s.mu.Lock()
	s.expenses = next
	s.mu.Unlock()
}

// SetCategoryFilter sets or clears the active filter. Surrounding
// whitespace is ignored; an empty string shows all expenses.
func (s *ListState) SetCategoryFilter(category string) {
	s.mu.Lock()
	s.filter = strings.TrimSpace(category)
	s.mu.Unlock()
}

// Filter returns the active category filter, or "" when unfiltered.
func (s *ListState) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// FilteredView returns the expenses matching the active filter in
// server-supplied order. Matching is case-insensitive. The returned slice
// is a copy; callers may not mutate held state through it.
func (s *ListState) FilteredView() []domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filteredLocked()
}

// Total returns the sum of amounts over the filtered view, zero when the
// view is empty.
func (s *ListState) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, e := range s.filteredLocked() {
		total = total.Add(e.Amount)
	}
	return total
}

// ByID looks up a held expense by its server-assigned ID.
func (s *ListState) ByID(id int64) (domain.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.expenses {
		if e.ID != nil && *e.ID == id {
			return e, true
		}
	}
	return domain.Expense{}, false
}

func (s *ListState) filteredLocked() []domain.Expense {
	view := make([]domain.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		if s.filter == "" || strings.EqualFold(string(e.Category), s.filter) {
			view = append(view, e)
		}
	}
	return view
}
