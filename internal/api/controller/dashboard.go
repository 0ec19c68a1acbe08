package controller

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pmajay/portal/internal/service/dashboard"
	"github.com/pmajay/portal/internal/service/panel"
)

func (c *Controller) GetShell(ctx echo.Context) error {
	session := sessionFrom(ctx)

	active := dashboard.SectionID(ctx.QueryParams().Get("active"))
	shell, err := c.svc.Dashboard.ShellFor(session.Role, active)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shell)
}

// GetStats serves the stat-card grid through the panel loader: on fetch
// failure the panel still renders, with an explicitly tagged fallback.
func (c *Controller) GetStats(ctx echo.Context) error {
	result := panel.Load(ctx.Request().Context(), "dashboard/stats",
		func(fetchCtx context.Context) (*dashboard.Stats, error) {
			return c.svc.Dashboard.Stats(fetchCtx)
		},
		&dashboard.Stats{},
	)

	return ctx.JSON(http.StatusOK, echo.Map{
		"stats":  result.Data,
		"source": result.Source,
	})
}
