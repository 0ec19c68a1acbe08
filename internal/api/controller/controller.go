package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/service/admins"
	"github.com/pmajay/portal/internal/service/auth"
	"github.com/pmajay/portal/internal/service/certificates"
	"github.com/pmajay/portal/internal/service/dashboard"
	"github.com/pmajay/portal/internal/service/funds"
	"github.com/pmajay/portal/internal/service/geo"
	"github.com/pmajay/portal/internal/service/lgd"
	"github.com/pmajay/portal/internal/service/notify"
	"github.com/pmajay/portal/internal/service/panel"
	"github.com/pmajay/portal/internal/service/proposals"
	"github.com/pmajay/portal/internal/service/reports"
)

type Services struct {
	Auth         *auth.Service
	Dashboard    *dashboard.Service
	Funds        *funds.Service
	Proposals    *proposals.Service
	Certificates *certificates.Service
	Admins       *admins.Service
	Notify       *notify.Service
	Geo          *geo.Service
	LGD          *lgd.Service
	Reports      *reports.Service
	Store        store.Store
}

type Controller struct {
	svc Services
}

func NewController(svc Services) *Controller {
	return &Controller{svc: svc}
}

// RequestToken pulls the auth token from the bearer header or the session
// cookie, the two places the SPA persists it.
func RequestToken(ctx echo.Context) string {
	if header := ctx.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// panelJSON renders a loader result with its source tag, so clients can
// badge substituted data instead of mistaking it for a live read.
func panelJSON[T any](ctx echo.Context, result panel.Result[T]) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"data":   result.Data,
		"source": result.Source,
	})
}

func sessionFrom(ctx echo.Context) *domain.Session {
	if session, ok := ctx.Get(constants.CtxKeySession).(*domain.Session); ok {
		return session
	}
	return &domain.Session{}
}

// fundScope narrows fund queries to the caller's tier: state admins see
// their state, district-tier roles their district, the ministry everything.
func fundScope(session *domain.Session) store.ListFundsOpts {
	opts := store.ListFundsOpts{}
	if session.Profile == nil {
		return opts
	}

	switch {
	case session.HasRole(domain.RoleStateAdmin):
		opts.StateID = session.Profile.StateID
	case session.HasAnyRole(domain.RoleDistrictAdmin, domain.RoleGramPanchayat, domain.RoleDepartmentUser, domain.RoleContractor, domain.RoleImplementingAgency, domain.RoleExecutingAgency):
		opts.DistrictID = session.Profile.DistrictID
	}

	return opts
}
