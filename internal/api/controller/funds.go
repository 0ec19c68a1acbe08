package controller

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
	"github.com/pmajay/portal/internal/service/funds"
	"github.com/pmajay/portal/internal/service/panel"
)

func (c *Controller) CreateAllocation(ctx echo.Context) error {
	request := &dto.CreateAllocationRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	alloc, fields, err := c.svc.Funds.CreateAllocation(ctx.Request().Context(), sessionFrom(ctx), request)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return validationFailed(ctx, fields)
	}

	return ctx.JSON(http.StatusCreated, funds.AllocationRow(alloc))
}

// ListAllocations serves the allocation table through the panel loader: a
// failed read degrades to a tagged empty table, never a blocking error.
func (c *Controller) ListAllocations(ctx echo.Context) error {
	opts := fundScope(sessionFrom(ctx))
	result := panel.Load(ctx.Request().Context(), "funds/allocations",
		func(fetchCtx context.Context) ([]*dto.FundRow, error) {
			return c.svc.Funds.ListAllocations(fetchCtx, opts)
		},
		[]*dto.FundRow{},
	)

	return panelJSON(ctx, result)
}

func (c *Controller) CreateRelease(ctx echo.Context) error {
	request := &dto.CreateReleaseRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	release, fields, err := c.svc.Funds.CreateRelease(ctx.Request().Context(), sessionFrom(ctx), request)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return validationFailed(ctx, fields)
	}

	return ctx.JSON(http.StatusCreated, funds.ReleaseRow(release))
}

func (c *Controller) ListReleases(ctx echo.Context) error {
	opts := fundScope(sessionFrom(ctx))
	result := panel.Load(ctx.Request().Context(), "funds/releases",
		func(fetchCtx context.Context) ([]*dto.FundRow, error) {
			return c.svc.Funds.ListReleases(fetchCtx, opts)
		},
		[]*dto.FundRow{},
	)

	return panelJSON(ctx, result)
}

func (c *Controller) ExportReleases(ctx echo.Context) error {
	data, err := c.svc.Reports.FundReleasesCSV(ctx.Request().Context(), fundScope(sessionFrom(ctx)))
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="fund-releases.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", data)
}

func validationFailed(ctx echo.Context, fields []domain.FieldError) error {
	return ctx.JSON(http.StatusBadRequest, domain.ValidationErrorResponse{
		Message: "validation failed",
		Code:    http.StatusBadRequest,
		Fields:  fields,
	})
}
