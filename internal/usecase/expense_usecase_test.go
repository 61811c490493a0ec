package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/SaErPu/expense-tracker-web/internal/domain"
	"github.com/SaErPu/expense-tracker-web/internal/usecase"
	"github.com/SaErPu/expense-tracker-web/internal/usecase/mocks"
)

func newUseCase(t *testing.T) (*usecase.ExpenseUseCase, *mocks.MockExpenseGateway, *mocks.MockNoticeSink, *usecase.ListState) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockExpenseGateway(ctrl)
	notices := mocks.NewMockNoticeSink(ctrl)
	state := usecase.NewListState()

	uc := usecase.NewExpenseUseCase(gateway, state, notices, zerolog.Nop())
	return uc, gateway, notices, state
}

func TestExpenseUseCase_CreateExpense(t *testing.T) {
	uc, gateway, notices, state := newUseCase(t)

	draft := domain.Draft{
		Description: "Supermarket",
		Amount:      "12.50",
		Date:        "2025-03-14",
		Category:    "groceries",
	}

	created := expense(1, "Supermarket", "12.50", domain.CategoryGroceries)

	gateway.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e domain.Expense) (domain.Expense, error) {
			if e.ID != nil {
				t.Errorf("draft sent to gateway must not carry an id, got %d", *e.ID)
			}
			if e.Category != domain.CategoryGroceries {
				t.Errorf("expected canonical category, got %s", e.Category)
			}
			return created, nil
		})
	notices.EXPECT().Notify(usecase.Notice{Kind: usecase.NoticeSuccess, Message: "Expense added"})
	gateway.EXPECT().List(gomock.Any()).Return([]domain.Expense{created}, nil)

	got, err := uc.CreateExpense(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == nil || *got.ID != 1 {
		t.Fatal("expected created expense to carry the server-assigned id")
	}

	// Round trip: the reloaded list contains exactly the new entry.
	view := state.FilteredView()
	if len(view) != 1 || *view[0].ID != 1 {
		t.Fatalf("expected reloaded list with expense 1, got %v", view)
	}
	if !state.Total().Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("expected total 12.50, got %s", state.Total())
	}
}

func TestExpenseUseCase_CreateValidationStaysLocal(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	// No gateway expectations: an invalid draft must never reach it.
	draft := domain.Draft{Description: "x", Amount: "-1", Date: "2025-03-14", Category: "Other"}

	if _, err := uc.CreateExpense(context.Background(), draft); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestExpenseUseCase_CreateFailureLeavesListUntouched(t *testing.T) {
	uc, gateway, notices, state := newUseCase(t)

	held := []domain.Expense{expense(1, "Supermarket", "12.50", domain.CategoryGroceries)}
	state.ReplaceAll(held)

	gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.Expense{}, domain.ErrGatewayFailure)
	notices.EXPECT().Notify(gomock.Any()).Do(func(n usecase.Notice) {
		if n.Kind != usecase.NoticeFailure {
			t.Errorf("expected failure notice, got %s", n.Kind)
		}
	})
	// No List expectation: a failed mutation does not reload.

	_, err := uc.CreateExpense(context.Background(), domain.Draft{
		Description: "Dinner", Amount: "30", Date: "2025-03-14", Category: "Leisure",
	})
	if !errors.Is(err, domain.ErrGatewayFailure) {
		t.Fatalf("expected ErrGatewayFailure, got %v", err)
	}

	if len(state.FilteredView()) != 1 {
		t.Error("list must keep its last known-good value after a failed create")
	}
}

func TestExpenseUseCase_UpdatePreservesID(t *testing.T) {
	uc, gateway, notices, state := newUseCase(t)

	id := int64(7)
	original := expense(id, "Electricity", "80.10", domain.CategoryBills)
	state.ReplaceAll([]domain.Expense{original})

	draft := domain.DraftOf(original)
	draft.Amount = "81.00"

	updated := expense(id, "Electricity", "81.00", domain.CategoryBills)

	gateway.EXPECT().Update(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, e domain.Expense) (domain.Expense, error) {
			if e.ID == nil || *e.ID != id {
				t.Error("expected full expense including id in update body")
			}
			return updated, nil
		})
	notices.EXPECT().Notify(usecase.Notice{Kind: usecase.NoticeSuccess, Message: "Expense updated"})
	gateway.EXPECT().List(gomock.Any()).Return([]domain.Expense{updated}, nil)

	got, err := uc.UpdateExpense(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == nil || *got.ID != id {
		t.Fatal("expected id preserved through update")
	}
	if !state.Total().Equal(decimal.RequireFromString("81.00")) {
		t.Errorf("expected reloaded total 81.00, got %s", state.Total())
	}
}

func TestExpenseUseCase_UpdateWithoutIDRejected(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	draft := domain.Draft{Description: "x", Amount: "5", Date: "2025-03-14", Category: "Other"}

	if _, err := uc.UpdateExpense(context.Background(), draft); !errors.Is(err, usecase.ErrNotPersisted) {
		t.Fatalf("expected ErrNotPersisted, got %v", err)
	}
}

func TestExpenseUseCase_UpdateNotFoundResyncs(t *testing.T) {
	uc, gateway, notices, state := newUseCase(t)

	id := int64(7)
	stale := expense(id, "Electricity", "80.10", domain.CategoryBills)
	state.ReplaceAll([]domain.Expense{stale})

	gateway.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(domain.Expense{}, domain.ErrExpenseNotFound)
	notices.EXPECT().Notify(gomock.Any())
	// Stale target: the client view is resynchronized.
	gateway.EXPECT().List(gomock.Any()).Return([]domain.Expense{}, nil)

	_, err := uc.UpdateExpense(context.Background(), domain.DraftOf(stale))
	if !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
	if len(state.FilteredView()) != 0 {
		t.Error("expected list resynced to server state")
	}
}

func TestExpenseUseCase_DeleteDeclinedMakesNoCall(t *testing.T) {
	uc, _, _, state := newUseCase(t)

	target := expense(1, "Supermarket", "12.50", domain.CategoryGroceries)
	state.ReplaceAll([]domain.Expense{target})
	totalBefore := state.Total()

	decline := func(ctx context.Context, e domain.Expense) (bool, error) {
		if e.Description != "Supermarket" {
			t.Errorf("confirmation must receive the targeted expense, got %q", e.Description)
		}
		return false, nil
	}

	deleted, err := uc.DeleteExpense(context.Background(), 1, decline)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Fatal("declined confirmation must not delete")
	}
	if len(state.FilteredView()) != 1 || !state.Total().Equal(totalBefore) {
		t.Error("declined delete must leave list and total unchanged")
	}
}

func TestExpenseUseCase_DeleteConfirmed(t *testing.T) {
	uc, gateway, notices, state := newUseCase(t)

	keep := expense(2, "Monthly pass", "40", domain.CategoryTransport)
	target := expense(1, "Supermarket", "12.50", domain.CategoryGroceries)
	state.ReplaceAll([]domain.Expense{target, keep})

	gateway.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	notices.EXPECT().Notify(usecase.Notice{Kind: usecase.NoticeSuccess, Message: "Expense deleted"})
	gateway.EXPECT().List(gomock.Any()).Return([]domain.Expense{keep}, nil)

	accept := func(context.Context, domain.Expense) (bool, error) { return true, nil }

	deleted, err := uc.DeleteExpense(context.Background(), 1, accept)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to go through")
	}

	view := state.FilteredView()
	if len(view) != 1 || *view[0].ID != 2 {
		t.Fatalf("expected only expense 2 to remain, got %v", view)
	}
	if !state.Total().Equal(decimal.RequireFromString("40")) {
		t.Errorf("expected total recomputed to 40, got %s", state.Total())
	}
}

func TestExpenseUseCase_OverlappingMutationRejected(t *testing.T) {
	uc, gateway, notices, _ := newUseCase(t)

	block := make(chan struct{})
	entered := make(chan struct{})

	created := expense(1, "Supermarket", "12.50", domain.CategoryGroceries)

	gateway.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.Expense) (domain.Expense, error) {
			close(entered)
			<-block
			return created, nil
		})
	notices.EXPECT().Notify(gomock.Any())
	gateway.EXPECT().List(gomock.Any()).Return([]domain.Expense{created}, nil)

	draft := domain.Draft{Description: "Supermarket", Amount: "12.50", Date: "2025-03-14", Category: "Groceries"}

	done := make(chan error, 1)
	go func() {
		_, err := uc.CreateExpense(context.Background(), draft)
		done <- err
	}()

	<-entered
	// First mutation is still submitting; a second one must be rejected
	// instead of racing the reload.
	if _, err := uc.CreateExpense(context.Background(), draft); !errors.Is(err, usecase.ErrMutationInFlight) {
		t.Fatalf("expected ErrMutationInFlight, got %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first mutation failed: %v", err)
	}
}

func TestExpenseUseCase_LoadFailureKeepsList(t *testing.T) {
	uc, gateway, _, state := newUseCase(t)

	held := []domain.Expense{expense(1, "Supermarket", "12.50", domain.CategoryGroceries)}
	state.ReplaceAll(held)

	gateway.EXPECT().List(gomock.Any()).Return(nil, domain.ErrGatewayFailure)

	if err := uc.Load(context.Background()); !errors.Is(err, domain.ErrGatewayFailure) {
		t.Fatalf("expected ErrGatewayFailure, got %v", err)
	}
	if len(state.FilteredView()) != 1 {
		t.Error("failed load must leave the last known-good list in place")
	}
}

func TestExpenseUseCase_GetExpenseFallsBackToGateway(t *testing.T) {
	uc, gateway, _, state := newUseCase(t)

	held := expense(1, "Supermarket", "12.50", domain.CategoryGroceries)
	state.ReplaceAll([]domain.Expense{held})

	// Held id resolves locally with no gateway call.
	got, err := uc.GetExpense(context.Background(), 1)
	if err != nil || got.Description != "Supermarket" {
		t.Fatalf("expected local hit, got %v, %v", got, err)
	}

	remote := expense(9, "Cinema", "11", domain.CategoryLeisure)
	gateway.EXPECT().Get(gomock.Any(), int64(9)).Return(remote, nil)

	got, err = uc.GetExpense(context.Background(), 9)
	if err != nil || got.Description != "Cinema" {
		t.Fatalf("expected gateway fallback, got %v, %v", got, err)
	}
}
