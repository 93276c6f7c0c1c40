package fx

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/personalfinancemanagentdashboard/babu/config"
	"github.com/personalfinancemanagentdashboard/babu/internal/logger"
	"github.com/personalfinancemanagentdashboard/babu/internal/middleware"
	"github.com/personalfinancemanagentdashboard/babu/internal/routes"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.Metrics())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", middleware.MetricsHandler())

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/register", handler.Register)
		public.POST("/auth/login", handler.Login)
		public.POST("/auth/google", handler.GoogleLogin)
		public.GET("/auth/google/url", handler.GoogleAuthURL)
		public.POST("/auth/demo", handler.DemoLogin)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/auth/me", handler.GetCurrentUser)
		private.GET("/dashboard", handler.GetDashboard)
		private.GET("/health-score", handler.GetHealthScore)
		private.GET("/categories", handler.ListCategories)

		userGroup := private.Group("/user")
		{
			userGroup.GET("/preferences", handler.GetPreferences)
			userGroup.PUT("/preferences", handler.UpdatePreferences)
		}

		transactions := private.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.ListTransactions)
			transactions.POST("/ocr", handler.ScanReceipt)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}

		private.POST("/imports/transactions", handler.ImportTransactions)

		budgets := private.Group("/budgets")
		{
			budgets.POST("", handler.CreateBudget)
			budgets.GET("", handler.ListBudgets)
			budgets.GET("/:id", handler.GetBudget)
			budgets.PATCH("/:id", handler.UpdateBudget)
			budgets.DELETE("/:id", handler.DeleteBudget)
		}

		goals := private.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.GET("", handler.ListGoals)
			goals.GET("/:id", handler.GetGoal)
			goals.PATCH("/:id", handler.UpdateGoal)
			goals.DELETE("/:id", handler.DeleteGoal)
		}

		bills := private.Group("/bills")
		{
			bills.POST("", handler.CreateBill)
			bills.GET("", handler.ListBills)
			bills.GET("/:id", handler.GetBill)
			bills.PATCH("/:id", handler.UpdateBill)
			bills.DELETE("/:id", handler.DeleteBill)
		}

		ai := private.Group("/ai")
		{
			ai.POST("/chat", handler.Chat)
			ai.POST("/categorize", handler.Categorize)
			ai.POST("/categorize/batch", handler.CategorizeBatch)
		}

		reports := private.Group("/reports")
		{
			reports.GET("/transactions", handler.ExportTransactionsReport)
			reports.GET("/budgets", handler.ExportBudgetsReport)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("server failed to start")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("server stopping")
			return nil
		},
	})
}
