package domain

import (
	"github.com/shopspring/decimal"
)

// Expense is a single dated, categorized monetary outflow.
//
// A nil ID means the expense has never been persisted. A non-nil ID always
// refers to a row the storage gateway has acknowledged and is immutable
// once assigned.
type Expense struct {
	ID          *int64
	Description string
	Amount      decimal.Decimal
	Date        Date
	Category    Category
}

// Persisted reports whether the expense carries a server-assigned ID.
func (e Expense) Persisted() bool {
	return e.ID != nil
}
