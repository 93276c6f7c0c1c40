package healthscore

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

// The score only needs full per-user reads, so the service depends on these
// narrow views rather than the full repository interfaces.
type (
	TransactionSource interface {
		GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error)
	}
	BudgetSource interface {
		GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error)
	}
	GoalSource interface {
		GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error)
	}
	BillSource interface {
		GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*bill.Bill, error)
	}
)

type Service struct {
	Transactions TransactionSource
	Budgets      BudgetSource
	Goals        GoalSource
	Bills        BillSource

	// Now supplies the reference time for "current month" and "today".
	// Production wiring passes time.Now; tests pin it.
	Now func() time.Time
}

func NewService(transactions TransactionSource, budgets BudgetSource, goals GoalSource, bills BillSource, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		Transactions: transactions,
		Budgets:      budgets,
		Goals:        goals,
		Bills:        bills,
		Now:          now,
	}
}

// GetHealthScore loads the user's financial data and computes the score at
// the service's current reference time.
func (s *Service) GetHealthScore(ctx context.Context, userID ulid.ULID) (*Breakdown, error) {
	transactions, err := s.Transactions.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	budgets, err := s.Budgets.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	goals, err := s.Goals.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	bills, err := s.Bills.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	breakdown := Calculate(transactions, budgets, goals, bills, s.Now())
	return &breakdown, nil
}
