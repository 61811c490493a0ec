package usecase

import (
	"context"

	"github.com/SaErPu/expense-tracker-web/internal/domain"
)

// ExpenseGateway defines remote CRUD access to the durable expense store.
type ExpenseGateway interface {
	// List returns the full expense set in server-supplied order.
	List(ctx context.Context) ([]domain.Expense, error)
	Get(ctx context.Context, id int64) (domain.Expense, error)
	// Create persists a draft expense (no ID) and returns it with its
	// server-assigned ID.
	Create(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	Update(ctx context.Context, id int64, expense domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id int64) error
}

// NoticeSink receives transient user-facing notices (success confirmations
// and failure reports) from the mutation orchestrator.
type NoticeSink interface {
	Notify(notice Notice)
}

// ConfirmFunc resolves an asynchronous yes/no confirmation prompt before an
// irreversible action. Returning false aborts with no side effects.
type ConfirmFunc func(ctx context.Context, expense domain.Expense) (bool, error)
