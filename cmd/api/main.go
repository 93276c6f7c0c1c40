package main

import (
	appfx "github.com/personalfinancemanagentdashboard/babu/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
