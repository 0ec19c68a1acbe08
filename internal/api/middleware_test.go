package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/pmajay/portal/internal/pkg/store/storetest"
	"github.com/pmajay/portal/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAPIService(st *storetest.Stub) *APIService {
	router := echo.New()
	router.HTTPErrorHandler = httpErrorHandler
	return &APIService{router: router, authService: auth.NewService(st)}
}

func okHandler(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

func doRequest(svc *APIService, handler echo.HandlerFunc, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	ctx := svc.router.NewContext(req, rec)
	if err := handler(ctx); err != nil {
		svc.router.HTTPErrorHandler(err, ctx)
	}
	return rec
}

func TestAuthMiddlewareMissingCookie(t *testing.T) {
	svc := testAPIService(&storetest.Stub{})

	rec := doRequest(svc, svc.AuthMiddleware(okHandler), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareUnknownToken(t *testing.T) {
	svc := testAPIService(&storetest.Stub{
		GetSessionByTokenFunc: func(context.Context, string) (*domain.SessionRecord, error) {
			return nil, assert.AnError
		},
	})

	cookie := &http.Cookie{Name: constants.CookieKeyAuthToken, Value: "stale"}
	rec := doRequest(svc, svc.AuthMiddleware(okHandler), cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewarePassesSession(t *testing.T) {
	userID := uuid.New()
	svc := testAPIService(&storetest.Stub{
		GetSessionByTokenFunc: func(_ context.Context, token string) (*domain.SessionRecord, error) {
			return &domain.SessionRecord{Token: token, UserID: userID}, nil
		},
		GetUserByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
		GetProfileByUserIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
			return &domain.Profile{UserID: id, Role: domain.RoleStateAdmin}, nil
		},
	})

	handler := svc.AuthMiddleware(func(ctx echo.Context) error {
		session, ok := ctx.Get(constants.CtxKeySession).(*domain.Session)
		require.True(t, ok)
		assert.Equal(t, userID, session.UserID())
		return ctx.NoContent(http.StatusOK)
	})

	cookie := &http.Cookie{Name: constants.CookieKeyAuthToken, Value: "live-token"}
	rec := doRequest(svc, handler, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoleMiddlewareFailsClosed(t *testing.T) {
	svc := testAPIService(&storetest.Stub{})
	gate := svc.RoleMiddleware(domain.RoleMinistryAdmin)

	// No session in context at all.
	rec := doRequest(svc, gate(okHandler), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleMiddlewareWrongRole(t *testing.T) {
	svc := testAPIService(&storetest.Stub{})
	gate := svc.RoleMiddleware(domain.RoleMinistryAdmin)

	handler := func(ctx echo.Context) error {
		ctx.Set(constants.CtxKeySession, &domain.Session{
			User: &domain.User{ID: uuid.New()},
			Role: domain.RoleContractor,
		})
		return gate(okHandler)(ctx)
	}

	rec := doRequest(svc, handler, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleMiddlewareAllowsMatchingRole(t *testing.T) {
	svc := testAPIService(&storetest.Stub{})
	gate := svc.RoleMiddleware(domain.RoleMinistryAdmin, domain.RoleStateAdmin)

	handler := func(ctx echo.Context) error {
		ctx.Set(constants.CtxKeySession, &domain.Session{
			User: &domain.User{ID: uuid.New()},
			Role: domain.RoleStateAdmin,
		})
		return gate(okHandler)(ctx)
	}

	rec := doRequest(svc, handler, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
