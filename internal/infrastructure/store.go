package infrastructure

import (
	"github.com/personalfinancemanagentdashboard/babu/config"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/preferences"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	"github.com/personalfinancemanagentdashboard/babu/internal/logger"
)

// Store bundles one repository per aggregate, all backed by the same storage
// engine. With a configured DATABASE_URL that engine is Postgres; without one
// the application serves demo traffic from process memory.
type Store struct {
	Users        user.Repository
	Transactions transaction.Repository
	Budgets      budget.Repository
	Goals        goal.Repository
	Bills        bill.Repository
	Preferences  preferences.Repository
}

func NewStore(cfg *config.Config) (*Store, error) {
	if cfg.Database.DSN == "" {
		logger.Warn().Msg("DATABASE_URL is not set, using in-memory storage (demo mode)")
		return &Store{
			Users:        NewMemoryUserRepository(),
			Transactions: NewMemoryTransactionRepository(),
			Budgets:      NewMemoryBudgetRepository(),
			Goals:        NewMemoryGoalRepository(),
			Bills:        NewMemoryBillRepository(),
			Preferences:  NewMemoryPreferenceRepository(),
		}, nil
	}

	db, err := NewDb(cfg)
	if err != nil {
		return nil, err
	}

	return &Store{
		Users:        &UserRepository{DB: db},
		Transactions: &TransactionRepository{DB: db},
		Budgets:      &BudgetRepository{DB: db},
		Goals:        &GoalRepository{DB: db},
		Bills:        &BillRepository{DB: db},
		Preferences:  &PreferenceRepository{DB: db},
	}, nil
}
