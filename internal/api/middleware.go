package api

import (
	"github.com/labstack/echo/v4"
	"github.com/pmajay/portal/internal/api/controller"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/constants"
)

// AuthMiddleware resolves the request's token into a session and rejects
// unauthenticated callers. Resolution is bounded; a hung lookup degrades to
// unauthenticated rather than blocking the request.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := controller.RequestToken(ctx)
		if token == "" {
			return constants.ErrMissingAuthCookie
		}

		session, err := svc.authService.Restore(ctx.Request().Context(), token)
		if err != nil {
			return err
		}
		if !session.IsAuthenticated() {
			return constants.ErrUnauthorized
		}

		ctx.Set(constants.CtxKeySession, session)
		ctx.Set(constants.CtxKeyUserID, session.UserID())

		return next(ctx)
	}
}

// RoleMiddleware gates a route group to the given roles, fail-closed.
func (svc *APIService) RoleMiddleware(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session, ok := ctx.Get(constants.CtxKeySession).(*domain.Session)
			if !ok || !session.HasAnyRole(roles...) {
				return constants.ErrForbidden
			}
			return next(ctx)
		}
	}
}
