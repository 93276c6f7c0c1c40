package fx

import (
	"go.uber.org/fx"

	"github.com/personalfinancemanagentdashboard/babu/config"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	"github.com/personalfinancemanagentdashboard/babu/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
