package fx

import (
	"go.uber.org/fx"

	"github.com/personalfinancemanagentdashboard/babu/config"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/preferences"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	"github.com/personalfinancemanagentdashboard/babu/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		infrastructure.NewStore,
		newCache,
		newUserRepository,
		newTransactionRepository,
		newBudgetRepository,
		newGoalRepository,
		newBillRepository,
		newPreferenceRepository,
	),
)

func newCache(cfg *config.Config) *infrastructure.Cache {
	return infrastructure.NewCache(cfg.Redis)
}

func newUserRepository(store *infrastructure.Store) user.Repository {
	return store.Users
}

func newTransactionRepository(store *infrastructure.Store) transaction.Repository {
	return store.Transactions
}

func newBudgetRepository(store *infrastructure.Store) budget.Repository {
	return store.Budgets
}

func newGoalRepository(store *infrastructure.Store) goal.Repository {
	return store.Goals
}

func newBillRepository(store *infrastructure.Store) bill.Repository {
	return store.Bills
}

func newPreferenceRepository(store *infrastructure.Store) preferences.Repository {
	return store.Preferences
}
