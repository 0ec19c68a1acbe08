package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/pkg/store/storetest"
	"github.com/pmajay/portal/internal/service/admins"
	"github.com/pmajay/portal/internal/service/certificates"
	"github.com/pmajay/portal/internal/service/funds"
	"github.com/pmajay/portal/internal/service/notify"
	"github.com/pmajay/portal/internal/service/proposals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panelController(st *storetest.Stub) *Controller {
	return NewController(Services{
		Funds:        funds.NewService(st),
		Proposals:    proposals.NewService(st),
		Certificates: certificates.NewService(st),
		Admins:       admins.NewService(st),
		Notify:       notify.NewService(st),
	})
}

func listRequest(handler echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := handler(echo.New().NewContext(req, rec)); err != nil {
		panic(err)
	}
	return rec
}

// A failed panel read degrades to a tagged empty list, never a blocking
// HTTP error.
func TestListPanelsFallBackOnStoreFailure(t *testing.T) {
	st := &storetest.Stub{
		ListAllocationsFunc: func(context.Context, store.ListFundsOpts) ([]*domain.FundAllocation, error) {
			return nil, assert.AnError
		},
		ListReleasesFunc: func(context.Context, store.ListFundsOpts) ([]*domain.FundRelease, error) {
			return nil, assert.AnError
		},
		ListProposalsFunc: func(context.Context, store.ListProposalsOpts) ([]*domain.ExtendedProposal, error) {
			return nil, assert.AnError
		},
		ListCertificatesFunc: func(context.Context, store.ListCertificatesOpts) ([]*domain.UtilizationCertificate, error) {
			return nil, assert.AnError
		},
		ListDistrictAdminsFunc: func(context.Context, store.ListAdminsOpts) ([]*domain.DistrictAdmin, error) {
			return nil, assert.AnError
		},
		ListNotificationsFunc: func(context.Context, string) ([]*domain.Notification, error) {
			return nil, assert.AnError
		},
	}
	c := panelController(st)

	handlers := map[string]echo.HandlerFunc{
		"allocations":   c.ListAllocations,
		"releases":      c.ListReleases,
		"proposals":     c.ListProposals,
		"certificates":  c.ListCertificates,
		"admins":        c.ListDistrictAdmins,
		"notifications": c.ListNotifications,
	}

	for name, handler := range handlers {
		rec := listRequest(handler)

		require.Equal(t, http.StatusOK, rec.Code, "%s", name)
		assert.Contains(t, rec.Body.String(), `"source":"fallback"`, "%s", name)
		assert.Contains(t, rec.Body.String(), `"data":[]`, "%s", name)
	}
}

func TestListPanelTaggedLiveOnSuccess(t *testing.T) {
	st := &storetest.Stub{
		ListNotificationsFunc: func(context.Context, string) ([]*domain.Notification, error) {
			return []*domain.Notification{{Title: "Annual plan window open"}}, nil
		},
	}
	c := panelController(st)

	rec := listRequest(c.ListNotifications)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"live"`)
	assert.Contains(t, rec.Body.String(), "Annual plan window open")
}
