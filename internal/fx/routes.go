package fx

import (
	"time"

	"go.uber.org/fx"

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
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	"github.com/personalfinancemanagentdashboard/babu/internal/middleware"
	"github.com/personalfinancemanagentdashboard/babu/internal/routes"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	authSvc *auth.Service,
	userSvc *user.Service,
	jwtSvc *middleware.JwtService,
	transactionSvc *transaction.Service,
	budgetSvc *budget.Service,
	goalSvc *goal.Service,
	billSvc *bill.Service,
	preferencesSvc *preferences.Service,
	dashboardSvc *dashboard.Service,
	healthScoreSvc *healthscore.Service,
	insightsSvc *insights.Service,
	importSvc *importer.Service,
	reportSvc *report.Service,
) *routes.Handler {
	return &routes.Handler{
		AuthService:        authSvc,
		UserService:        userSvc,
		JwtService:         jwtSvc,
		TransactionService: transactionSvc,
		BudgetService:      budgetSvc,
		GoalService:        goalSvc,
		BillService:        billSvc,
		PreferencesService: preferencesSvc,
		DashboardService:   dashboardSvc,
		HealthScoreService: healthScoreSvc,
		InsightsService:    insightsSvc,
		ImportService:      importSvc,
		ReportService:      reportSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
