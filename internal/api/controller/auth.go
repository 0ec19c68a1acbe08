package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
)

func (c *Controller) SignupUser(ctx echo.Context) error {
	request := &dto.SignupRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	session, token, err := c.svc.Auth.Signup(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, loginResponse(session, token))
}

func (c *Controller) LoginUser(ctx echo.Context) error {
	request := &dto.LoginRequest{}
	if err := ctx.Bind(request); err != nil {
		return err
	}

	session, token, err := c.svc.Auth.Login(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, loginResponse(session, token))
}

func (c *Controller) LogoutUser(ctx echo.Context) error {
	if err := c.svc.Auth.Logout(ctx.Request().Context(), RequestToken(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSession restores the session carried by the request's token. It never
// errors for an unresolvable token; the caller just gets an unauthenticated
// session and redirects to login.
func (c *Controller) GetSession(ctx echo.Context) error {
	session, err := c.svc.Auth.Restore(ctx.Request().Context(), RequestToken(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, sessionResponse(session))
}

func loginResponse(session *domain.Session, token string) *dto.LoginResponse {
	return &dto.LoginResponse{
		AuthToken: token,
		Session:   sessionResponse(session),
	}
}

func sessionResponse(session *domain.Session) dto.SessionResponse {
	resp := dto.SessionResponse{Authenticated: session.IsAuthenticated()}
	if !resp.Authenticated {
		return resp
	}

	resp.UserID = session.UserID().String()
	resp.Email = session.User.Email
	resp.Role = session.Role
	if variant, err := domain.RouteDashboard(session.Role); err == nil {
		resp.Variant = variant
	}

	return resp
}
