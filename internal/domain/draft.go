package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Draft holds raw expense input exactly as it arrives from a form or CLI
// flag: every field is an unparsed string. A draft is transient; it is
// validated into an Expense, handed to the mutation orchestrator and then
// discarded.
type Draft struct {
	// ID is carried through unchanged when editing an existing expense
	// and nil when creating a new one.
	ID          *int64
	Description string
	Amount      string
	Date        string
	Category    string
}

// NewDraft returns an empty draft for a new expense. The date defaults to
// the current day; every other field starts empty.
func NewDraft() Draft {
	return Draft{Date: Today().String()}
}

// DraftOf seeds a draft from an existing expense for editing.
func DraftOf(e Expense) Draft {
	return Draft{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		Date:        e.Date.String(),
		Category:    string(e.Category),
	}
}

// CheckDescription validates the description field alone.
func (d Draft) CheckDescription() error {
	if strings.TrimSpace(d.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// CheckAmount validates the amount field alone.
func (d Draft) CheckAmount() error {
	s := strings.TrimSpace(d.Amount)
	if s == "" {
		return ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, d.Amount)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// CheckDate validates the date field alone.
func (d Draft) CheckDate() error {
	_, err := ParseDate(d.Date)
	return err
}

// CheckCategory validates the category field alone.
func (d Draft) CheckCategory() error {
	_, err := ParseCategory(d.Category)
	return err
}

// Valid reports whether all four fields are simultaneously valid. The
// presentation layer re-evaluates this on every field change to decide
// whether submission is enabled.
func (d Draft) Valid() bool {
	return d.CheckDescription() == nil &&
		d.CheckAmount() == nil &&
		d.CheckDate() == nil &&
		d.CheckCategory() == nil
}

// Validate builds the Expense the draft describes, or returns the first
// field error. The amount is normalized to two decimal places and the
// date to YYYY-MM-DD; an edit draft's ID is carried through unchanged.
func (d Draft) Validate() (Expense, error) {
	if err := d.CheckDescription(); err != nil {
		return Expense{}, err
	}

	if err := d.CheckAmount(); err != nil {
		return Expense{}, err
	}
	amount, _ := decimal.NewFromString(strings.TrimSpace(d.Amount))

	date, err := ParseDate(d.Date)
	if err != nil {
		return Expense{}, err
	}

	category, err := ParseCategory(d.Category)
	if err != nil {
		return Expense{}, err
	}

	return Expense{
		ID:          d.ID,
		Description: strings.TrimSpace(d.Description),
		Amount:      amount.Round(2),
		Date:        date,
		Category:    category,
	}, nil
}
