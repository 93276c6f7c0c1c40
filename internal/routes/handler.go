package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

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
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
	"github.com/personalfinancemanagentdashboard/babu/internal/logger"
	"github.com/personalfinancemanagentdashboard/babu/internal/middleware"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

type Handler struct {
	AuthService        *auth.Service
	UserService        *user.Service
	JwtService         *middleware.JwtService
	TransactionService *transaction.Service
	BudgetService      *budget.Service
	GoalService        *goal.Service
	BillService        *bill.Service
	PreferencesService *preferences.Service
	DashboardService   *dashboard.Service
	HealthScoreService *healthscore.Service
	InsightsService    *insights.Service
	ImportService      *importer.Service
	ReportService      *report.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	return &pkg.PaginationParams{
		Page:  pkg.ParseInt(c.DefaultQuery("page", "1"), 1),
		Limit: pkg.ParseInt(c.DefaultQuery("limit", "20"), 20),
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
