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

func (c *Controller) CreateProposal(ctx echo.Context) error {
	request := &dto.CreateProposalRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	proposal, fields, err := c.svc.Proposals.Create(ctx.Request().Context(), sessionFrom(ctx), request)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return validationFailed(ctx, fields)
	}

	return ctx.JSON(http.StatusCreated, proposal)
}

func (c *Controller) ListProposals(ctx echo.Context) error {
	opts := proposalScope(sessionFrom(ctx))
	if raw := ctx.QueryParams().Get("status"); raw != "" {
		status := domain.ProposalStatus(raw)
		opts.Status = &status
	}

	result := panel.Load(ctx.Request().Context(), "proposals",
		func(fetchCtx context.Context) ([]*domain.ExtendedProposal, error) {
			return c.svc.Proposals.List(fetchCtx, opts)
		},
		[]*domain.ExtendedProposal{},
	)

	return panelJSON(ctx, result)
}

// ApproveProposal advances the workflow one step for the acting tier: the
// state approves a submitted proposal, the ministry a state-approved one.
func (c *Controller) ApproveProposal(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid proposal id")
	}

	session := sessionFrom(ctx)
	reqCtx := ctx.Request().Context()
	if session.HasRole(domain.RoleMinistryAdmin) {
		err = c.svc.Proposals.ApproveByMinistry(reqCtx, id)
	} else {
		err = c.svc.Proposals.ApproveByState(reqCtx, id)
	}
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) RejectProposal(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid proposal id")
	}

	request := &dto.RejectProposalRequest{}
	if err = ctx.Bind(request); err != nil {
		return err
	}

	session := sessionFrom(ctx)
	reqCtx := ctx.Request().Context()
	if session.HasRole(domain.RoleMinistryAdmin) {
		err = c.svc.Proposals.RejectByMinistry(reqCtx, id, request.Reason)
	} else {
		err = c.svc.Proposals.RejectByState(reqCtx, id, request.Reason)
	}
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) ExportProposals(ctx echo.Context) error {
	data, err := c.svc.Reports.ProposalSummaryCSV(ctx.Request().Context(), proposalScope(sessionFrom(ctx)))
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="proposals.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", data)
}

func proposalScope(session *domain.Session) store.ListProposalsOpts {
	opts := store.ListProposalsOpts{}
	if session.Profile == nil {
		return opts
	}

	switch {
	case session.HasRole(domain.RoleStateAdmin):
		opts.StateID = session.Profile.StateID
	case session.HasRole(domain.RoleDistrictAdmin):
		opts.DistrictID = session.Profile.DistrictID
	}

	return opts
}
