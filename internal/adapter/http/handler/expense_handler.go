package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SaErPu/expense-tracker-web/internal/adapter/http/dto"
	"github.com/SaErPu/expense-tracker-web/internal/domain"
)

// ExpenseStore defines the behavior needed by ExpenseHandler.
type ExpenseStore interface {
	List(ctx context.Context) ([]domain.Expense, error)
	Get(ctx context.Context, id int64) (domain.Expense, error)
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	Update(ctx context.Context, id int64, expense domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id int64) error
}

// ExpenseHandler handles expense-related HTTP requests.
type ExpenseHandler struct {
	store ExpenseStore
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(store ExpenseStore) *ExpenseHandler {
	return &ExpenseHandler{store: store}
}

// List returns the full expense set.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FromDomainList(expenses))
}

// Get returns a single expense by ID.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense ID", err.Error())
		return
	}

	expense, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get expense", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FromDomain(expense))
}

// Create persists a new expense and returns it with its assigned ID.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	expense, ok := decodeExpense(w, r)
	if !ok {
		return
	}

	created, err := h.store.Create(r.Context(), expense)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create expense", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.FromDomain(created))
}

// Update replaces the expense with the given ID.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense ID", err.Error())
		return
	}

	expense, ok := decodeExpense(w, r)
	if !ok {
		return
	}

	updated, err := h.store.Update(r.Context(), id, expense)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update expense", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FromDomain(updated))
}

// Delete removes the expense with the given ID.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expense ID", err.Error())
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete expense", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeExpense parses and validates a request body. The wire types
// already reject malformed dates and categories outside the enumeration;
// the remaining field constraints are enforced here.
func decodeExpense(w http.ResponseWriter, r *http.Request) (domain.Expense, bool) {
	var body dto.Expense
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return domain.Expense{}, false
	}

	expense := body.ToDomain()
	if strings.TrimSpace(expense.Description) == "" {
		writeError(w, http.StatusBadRequest, "invalid request body", domain.ErrEmptyDescription.Error())
		return domain.Expense{}, false
	}
	if expense.Amount.LessThanOrEqual(decimal.Zero) {
		writeError(w, http.StatusBadRequest, "invalid request body", domain.ErrInvalidAmount.Error())
		return domain.Expense{}, false
	}
	if expense.Date.IsZero() {
		writeError(w, http.StatusBadRequest, "invalid request body", domain.ErrInvalidDate.Error())
		return domain.Expense{}, false
	}
	if expense.Category == "" {
		writeError(w, http.StatusBadRequest, "invalid request body", domain.ErrInvalidCategory.Error())
		return domain.Expense{}, false
	}

	expense.Description = strings.TrimSpace(expense.Description)
	expense.Amount = expense.Amount.Round(2)
	return expense, true
}
