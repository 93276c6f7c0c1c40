package healthscore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/healthscore"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

type fakeTransactionSource struct {
	getAllFn func(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error)
}

func (f *fakeTransactionSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, userID)
	}
	return nil, nil
}

type fakeBudgetSource struct {
	getAllFn func(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error)
}

func (f *fakeBudgetSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, userID)
	}
	return nil, nil
}

type fakeGoalSource struct {
	getAllFn func(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error)
}

func (f *fakeGoalSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, userID)
	}
	return nil, nil
}

type fakeBillSource struct {
	getAllFn func(ctx context.Context, userID ulid.ULID) ([]*bill.Bill, error)
}

func (f *fakeBillSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*bill.Bill, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, userID)
	}
	return nil, nil
}

func TestServiceGetHealthScore(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	ctx := context.Background()

	svc := healthscore.NewService(
		&fakeTransactionSource{
			getAllFn: func(ctx context.Context, id ulid.ULID) ([]*transaction.Transaction, error) {
				if id != userID {
					t.Fatalf("unexpected user id %s", id)
				}
				return []*transaction.Transaction{
					income(t, 4000, "2025-03-01"),
					expense(t, 2000, "Food", "2025-03-10"),
				}, nil
			},
		},
		&fakeBudgetSource{
			getAllFn: func(ctx context.Context, id ulid.ULID) ([]*budget.Budget, error) {
				return []*budget.Budget{monthBudget("Food", 4000, "2025-03")}, nil
			},
		},
		&fakeGoalSource{
			getAllFn: func(ctx context.Context, id ulid.ULID) ([]*goal.Goal, error) {
				return []*goal.Goal{savingsGoal(1000, 500)}, nil
			},
		},
		&fakeBillSource{
			getAllFn: func(ctx context.Context, id ulid.ULID) ([]*bill.Bill, error) {
				return []*bill.Bill{dueBill(t, "2025-04-01")}, nil
			},
		},
		func() time.Time { return ref },
	)

	got, err := svc.GetHealthScore(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalScore != 76 {
		t.Fatalf("total = %d, want 76", got.TotalScore)
	}
	if got.Rating != "Very Good" {
		t.Fatalf("rating = %q, want %q", got.Rating, "Very Good")
	}
}

func TestServiceGetHealthScoreSourceErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("connection reset")

	tests := []struct {
		name  string
		build func() *healthscore.Service
	}{
		{
			name: "transaction source fails",
			build: func() *healthscore.Service {
				return healthscore.NewService(
					&fakeTransactionSource{
						getAllFn: func(ctx context.Context, id ulid.ULID) ([]*transaction.Transaction, error) {
							return nil, boom
						},
					},
					&fakeBudgetSource{}, &fakeGoalSource{}, &fakeBillSource{},
					func() time.Time { return ref },
				)
			},
		},
		{
			name: "bill source fails",
			build: func() *healthscore.Service {
				return healthscore.NewService(
					&fakeTransactionSource{}, &fakeBudgetSource{}, &fakeGoalSource{},
					&fakeBillSource{
						getAllFn: func(ctx context.Context, id ulid.ULID) ([]*bill.Bill, error) {
							return nil, boom
						},
					},
					func() time.Time { return ref },
				)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().GetHealthScore(ctx, ulid.Make())
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != "DATABASE_ERROR" {
				t.Fatalf("expected DATABASE_ERROR, got %s", appErr.Code)
			}
		})
	}
}

func TestServiceDefaultsClock(t *testing.T) {
	t.Parallel()

	svc := healthscore.NewService(&fakeTransactionSource{}, &fakeBudgetSource{}, &fakeGoalSource{}, &fakeBillSource{}, nil)
	if svc.Now == nil {
		t.Fatalf("expected default clock")
	}
}
