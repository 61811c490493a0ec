// Package dto defines the wire shapes of the expense resource API. Both
// the gateway client and the reference server serialize through it, so
// the two ends cannot drift apart.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SaErPu/expense-tracker-web/internal/domain"
)

// Expense is the request and response body for every expense endpoint.
// The ID is omitted on create requests and server-assigned in responses.
type Expense struct {
	ID          *int64          `json:"id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        domain.Date     `json:"date"`
	Category    domain.Category `json:"category"`
}

// FromDomain converts a domain expense to its wire shape.
func FromDomain(e domain.Expense) Expense {
	return Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    e.Category,
	}
}

// ToDomain converts a wire expense to the domain shape.
func (e Expense) ToDomain() domain.Expense {
	return domain.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    e.Category,
	}
}

// FromDomainList converts a slice of domain expenses.
func FromDomainList(expenses []domain.Expense) []Expense {
	result := make([]Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDomain(e)
	}
	return result
}

// ToDomainList converts a slice of wire expenses.
func ToDomainList(expenses []Expense) []domain.Expense {
	result := make([]domain.Expense, len(expenses))
	for i, e := range expenses {
		result[i] = e.ToDomain()
	}
	return result
}

// ErrorResponse is the error body returned by the reference server.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
