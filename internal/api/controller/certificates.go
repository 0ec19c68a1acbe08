package controller

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/service/panel"
)

func (c *Controller) CreateCertificate(ctx echo.Context) error {
	request := &dto.CreateCertificateRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	cert, fields, err := c.svc.Certificates.Create(ctx.Request().Context(), request)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return validationFailed(ctx, fields)
	}

	return ctx.JSON(http.StatusCreated, cert)
}

func (c *Controller) ListCertificates(ctx echo.Context) error {
	session := sessionFrom(ctx)

	opts := store.ListCertificatesOpts{}
	if session.Profile != nil {
		switch {
		case session.HasRole(domain.RoleStateAdmin):
			opts.StateID = session.Profile.StateID
		case session.HasRole(domain.RoleDistrictAdmin):
			opts.DistrictID = session.Profile.DistrictID
		}
	}
	if fy := ctx.QueryParams().Get("financial_year"); fy != "" {
		opts.FinancialYear = &fy
	}

	result := panel.Load(ctx.Request().Context(), "certificates",
		func(fetchCtx context.Context) ([]*domain.UtilizationCertificate, error) {
			return c.svc.Certificates.List(fetchCtx, opts)
		},
		[]*domain.UtilizationCertificate{},
	)

	return panelJSON(ctx, result)
}

func (c *Controller) VerifyCertificate(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid certificate id")
	}

	if err = c.svc.Certificates.Verify(ctx.Request().Context(), id, sessionFrom(ctx).UserID()); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) RejectCertificate(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid certificate id")
	}

	request := &dto.RejectCertificateRequest{}
	if err = ctx.Bind(request); err != nil {
		return err
	}

	if err = c.svc.Certificates.Reject(ctx.Request().Context(), id, sessionFrom(ctx).UserID(), request.Remarks); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
