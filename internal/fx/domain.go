package fx

import (
	"go.uber.org/fx"

	"github.com/personalfinancemanagentdashboard/babu/config"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/auth"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/dashboard"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/healthscore"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/importer"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/insights"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/preferences"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/report"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/shared"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	"github.com/personalfinancemanagentdashboard/babu/internal/infrastructure"
	"github.com/personalfinancemanagentdashboard/babu/internal/logger"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserCheckerService,
		newOAuthProvider,
		newAuthService,
		newTransactionService,
		newBudgetService,
		newGoalService,
		newBillService,
		newPreferencesService,
		newDashboardService,
		newHealthScoreService,
		newInsightsService,
		newImportService,
		newReportService,
	),
)

func newUserService(repo user.Repository) *user.Service {
	return &user.Service{Repository: repo}
}

func newUserCheckerService(userSvc *user.Service) *shared.UserCheckerService {
	return shared.NewUserCheckerService(userSvc)
}

// newOAuthProvider returns nil when Google sign-in is not configured; the
// auth service reports OAUTH_NOT_CONFIGURED for the Google endpoints then.
func newOAuthProvider(cfg *config.Config) auth.OAuthProvider {
	if !cfg.GoogleOAuth.Enabled {
		logger.Info().Msg("Google OAuth disabled (set GOOGLE_OAUTH_ENABLED=true to enable)")
		return nil
	}

	provider, err := auth.NewGoogleOAuthProvider(cfg.GoogleOAuth)
	if err != nil {
		logger.Warn().Err(err).Msg("Google OAuth misconfigured, sign-in with Google stays disabled")
		return nil
	}

	logger.Info().Msg("Google OAuth enabled")
	return provider
}

func newAuthService(userSvc *user.Service, oauth auth.OAuthProvider) *auth.Service {
	return &auth.Service{UserService: userSvc, OAuth: oauth}
}

func newTransactionService(repo transaction.Repository, userChecker *shared.UserCheckerService) *transaction.Service {
	return &transaction.Service{Repository: repo, UserChecker: userChecker}
}

func newBudgetService(repo budget.Repository, userChecker *shared.UserCheckerService) *budget.Service {
	return &budget.Service{Repository: repo, UserChecker: userChecker}
}

func newGoalService(repo goal.Repository, userChecker *shared.UserCheckerService) *goal.Service {
	return &goal.Service{Repository: repo, UserChecker: userChecker}
}

func newBillService(repo bill.Repository, userChecker *shared.UserCheckerService) *bill.Service {
	return &bill.Service{Repository: repo, UserChecker: userChecker}
}

func newPreferencesService(repo preferences.Repository, userChecker *shared.UserCheckerService) *preferences.Service {
	return &preferences.Service{Repository: repo, UserChecker: userChecker}
}

func newDashboardService(store *infrastructure.Store) *dashboard.Service {
	return dashboard.NewService(store.Transactions, store.Budgets, store.Goals, store.Bills, nil)
}

func newHealthScoreService(store *infrastructure.Store) *healthscore.Service {
	return healthscore.NewService(store.Transactions, store.Budgets, store.Goals, store.Bills, nil)
}

func newInsightsService(
	cfg *config.Config,
	dashboardSvc *dashboard.Service,
	transactionSvc *transaction.Service,
	cache *infrastructure.Cache,
) *insights.Service {
	if !cfg.OpenAI.Enabled() {
		logger.Warn().Msg("OPENAI_API_KEY is not set, AI endpoints will answer 503")
	}

	return &insights.Service{
		Client:       insights.NewClient(cfg.OpenAI),
		Dashboard:    dashboardSvc,
		Transactions: transactionSvc,
		Cache:        cache,
		ChatModel:    cfg.OpenAI.ChatModel,
		VisionModel:  cfg.OpenAI.VisionModel,
	}
}

func newImportService(transactionSvc *transaction.Service) *importer.Service {
	return &importer.Service{Transactions: transactionSvc}
}

func newReportService(store *infrastructure.Store) *report.Service {
	return &report.Service{Transactions: store.Transactions, Budgets: store.Budgets}
}
