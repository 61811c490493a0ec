package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/SaErPu/expense-tracker-web/internal/domain"
)

var (
	// ErrMutationInFlight is returned when a mutation is started while
	// another is still submitting. Overlapping mutations would race two
	// full reloads and could leave the list showing a stale result.
	ErrMutationInFlight = errors.New("another mutation is still submitting")

	// ErrNotPersisted is returned when an update is attempted with a
	// draft that never went through the gateway.
	ErrNotPersisted = errors.New("expense has no server-assigned id")
)

// ExpenseUseCase sequences create/update/delete round-trips against the
// storage gateway and keeps the list state consistent afterwards. Every
// successful mutation is followed by a full reload rather than a local
// patch, so the displayed list always reflects the last acknowledged
// server state.
type ExpenseUseCase struct {
	gateway ExpenseGateway
	state   *ListState
	notices NoticeSink
	logger  zerolog.Logger

	submitting atomic.Bool
}

// NewExpenseUseCase creates a new ExpenseUseCase.
func NewExpenseUseCase(gateway ExpenseGateway, state *ListState, notices NoticeSink, logger zerolog.Logger) *ExpenseUseCase {
	return &ExpenseUseCase{
		gateway: gateway,
		state:   state,
		notices: notices,
		logger:  logger,
	}
}

// State exposes the list state manager for derivations (filtered view,
// total) and filter changes.
func (uc *ExpenseUseCase) State() *ListState {
	return uc.state
}

// Load fetches the full expense set from the gateway and replaces the
// held list. On error the list keeps its last known-good value.
func (uc *ExpenseUseCase) Load(ctx context.Context) error {
	items, err := uc.gateway.List(ctx)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}

	uc.state.ReplaceAll(items)
	uc.logger.Debug().Int("count", len(items)).Msg("expense list reloaded")

	return nil
}

// GetExpense resolves a single expense, preferring the held list and
// falling back to the gateway for IDs not present locally.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id int64) (domain.Expense, error) {
	if e, ok := uc.state.ByID(id); ok {
		return e, nil
	}
	return uc.gateway.Get(ctx, id)
}

// CreateExpense validates the draft, creates it through the gateway and
// reloads the list. The returned expense carries its server-assigned ID.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, draft domain.Draft) (domain.Expense, error) {
	expense, err := draft.Validate()
	if err != nil {
		// Validation failures stay local; the gateway is never called.
		return domain.Expense{}, err
	}

	if !uc.begin() {
		return domain.Expense{}, ErrMutationInFlight
	}
	defer uc.end()

	created, err := uc.gateway.Create(ctx, expense)
	if err != nil {
		uc.fail(ctx, "add", err)
		return domain.Expense{}, err
	}

	uc.settle(ctx, "Expense added")
	return created, nil
}

// UpdateExpense validates an edit draft and replaces the expense it names.
// The draft's ID is carried through unchanged.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, draft domain.Draft) (domain.Expense, error) {
	expense, err := draft.Validate()
	if err != nil {
		return domain.Expense{}, err
	}
	if expense.ID == nil {
		return domain.Expense{}, ErrNotPersisted
	}

	if !uc.begin() {
		return domain.Expense{}, ErrMutationInFlight
	}
	defer uc.end()

	updated, err := uc.gateway.Update(ctx, *expense.ID, expense)
	if err != nil {
		uc.fail(ctx, "update", err)
		return domain.Expense{}, err
	}

	uc.settle(ctx, "Expense updated")
	return updated, nil
}

// DeleteExpense asks for confirmation and, if granted, deletes the
// expense and reloads the list. It returns false with no gateway call
// when the confirmation is declined.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id int64, confirm ConfirmFunc) (bool, error) {
	expense, err := uc.GetExpense(ctx, id)
	if err != nil {
		return false, err
	}

	ok, err := confirm(ctx, expense)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if !uc.begin() {
		return false, ErrMutationInFlight
	}
	defer uc.end()

	if err := uc.gateway.Delete(ctx, id); err != nil {
		uc.fail(ctx, "delete", err)
		return false, err
	}

	uc.settle(ctx, "Expense deleted")
	return true, nil
}

// begin claims the single submitting slot.
func (uc *ExpenseUseCase) begin() bool {
	return uc.submitting.CompareAndSwap(false, true)
}

func (uc *ExpenseUseCase) end() {
	uc.submitting.Store(false)
}

// settle finishes a successful mutation: confirm to the user, then bring
// the list back in sync with the server. A failed reload leaves the
// previous list in place; the mutation itself already succeeded.
func (uc *ExpenseUseCase) settle(ctx context.Context, message string) {
	uc.notices.Notify(Notice{Kind: NoticeSuccess, Message: message})

	if err := uc.Load(ctx); err != nil {
		uc.logger.Warn().Err(err).Msg("reload after mutation failed, list may be stale")
	}
}

// fail surfaces a failed mutation. The list is left untouched. A stale
// target (deleted server-side since the last load) additionally triggers
// a resync reload.
func (uc *ExpenseUseCase) fail(ctx context.Context, op string, err error) {
	uc.logger.Error().Err(err).Str("op", op).Msg("expense mutation failed")
	uc.notices.Notify(Notice{Kind: NoticeFailure, Message: fmt.Sprintf("Could not %s expense: %v", op, err)})

	if errors.Is(err, domain.ErrExpenseNotFound) {
		if loadErr := uc.Load(ctx); loadErr != nil {
			uc.logger.Warn().Err(loadErr).Msg("resync after stale mutation failed")
		}
	}
}
