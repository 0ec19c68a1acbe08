package controller

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/service/geo"
	"github.com/pmajay/portal/internal/service/panel"
	"github.com/spf13/viper"
)

func (c *Controller) ListStates(ctx echo.Context) error {
	states, err := c.svc.Store.ListStates(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, states)
}

func (c *Controller) ListDistricts(ctx echo.Context) error {
	opts := store.ListDistrictsOpts{}
	if state := ctx.QueryParams().Get("state"); state != "" {
		opts.StateName = &state
	}

	districts, err := c.svc.Store.ListDistricts(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, districts)
}

// GetBoundaries serves the GeoJSON boundary set through the panel loader;
// when the remote is unreachable the bundled set keeps the map renderable.
func (c *Controller) GetBoundaries(ctx echo.Context) error {
	url := viper.GetString(constants.ViperRemoteBaseURL) + "/storage/boundaries.geojson"

	result := panel.Load(ctx.Request().Context(), "geo/boundaries",
		func(fetchCtx context.Context) (*geo.FeatureCollection, error) {
			return c.svc.Geo.FetchBoundaries(fetchCtx, url)
		},
		geo.FallbackBoundaries(),
	)

	return ctx.JSON(http.StatusOK, echo.Map{
		"boundaries": result.Data,
		"source":     result.Source,
	})
}

// GetOverlay joins the boundary set with the caller's data lookup and
// returns one colored feature per region.
func (c *Controller) GetOverlay(ctx echo.Context) error {
	request := &struct {
		Data map[string]float64 `json:"data" validate:"required"`
	}{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	url := viper.GetString(constants.ViperRemoteBaseURL) + "/storage/boundaries.geojson"
	result := panel.Load(ctx.Request().Context(), "geo/overlay",
		func(fetchCtx context.Context) (*geo.FeatureCollection, error) {
			return c.svc.Geo.FetchBoundaries(fetchCtx, url)
		},
		geo.FallbackBoundaries(),
	)

	return ctx.JSON(http.StatusOK, echo.Map{
		"features": c.svc.Geo.Overlay(result.Data, request.Data),
		"source":   result.Source,
	})
}

// BackfillGeography re-imports the reference geography from the LGD tables.
func (c *Controller) BackfillGeography(ctx echo.Context) error {
	states, err := c.svc.LGD.ImportDirectory(ctx.Request().Context(), viper.GetString(constants.ViperLGDDirectoryURL))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, states)
}
