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

func (c *Controller) CreateDistrictAdmin(ctx echo.Context) error {
	request := &dto.CreateDistrictAdminRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	admin, err := c.svc.Admins.Create(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, admin)
}

func (c *Controller) ListDistrictAdmins(ctx echo.Context) error {
	session := sessionFrom(ctx)

	opts := store.ListAdminsOpts{}
	if session.HasRole(domain.RoleStateAdmin) && session.Profile != nil {
		opts.StateID = session.Profile.StateID
	}

	result := panel.Load(ctx.Request().Context(), "admins",
		func(fetchCtx context.Context) ([]*domain.DistrictAdmin, error) {
			return c.svc.Admins.List(fetchCtx, opts)
		},
		[]*domain.DistrictAdmin{},
	)

	return panelJSON(ctx, result)
}

func (c *Controller) UpdateDistrictAdmin(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid admin id")
	}

	request := &dto.UpdateDistrictAdminRequest{}
	if err = ctx.Bind(request); err != nil {
		return err
	}

	admin, err := c.svc.Admins.Update(ctx.Request().Context(), id, request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, admin)
}

func (c *Controller) CreateNotification(ctx echo.Context) error {
	request := &dto.CreateNotificationRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	n, err := c.svc.Notify.Dispatch(ctx.Request().Context(), sessionFrom(ctx), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, n)
}

func (c *Controller) ListNotifications(ctx echo.Context) error {
	session := sessionFrom(ctx)

	result := panel.Load(ctx.Request().Context(), "notifications",
		func(fetchCtx context.Context) ([]*domain.Notification, error) {
			return c.svc.Notify.List(fetchCtx, string(session.Role))
		},
		[]*domain.Notification{},
	)

	return panelJSON(ctx, result)
}

func (c *Controller) DeactivateNotification(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}

	if err = c.svc.Notify.Deactivate(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
