package dashboard

import (
	"context"
	"testing"

	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/pkg/store/storetest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellFor(t *testing.T) {
	svc := NewService(&storetest.Stub{})

	view, err := svc.ShellFor(domain.RoleStateAdmin, "")
	require.NoError(t, err)

	assert.Equal(t, domain.VariantState, view.Variant)
	assert.Equal(t, SectionID("dashboard"), view.Active)
	assert.Equal(t, "state/dashboard", view.MountedPanel)

	activeCount := 0
	for _, section := range view.Sections {
		if section.Active {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestShellForUnknownRole(t *testing.T) {
	svc := NewService(&storetest.Stub{})

	_, err := svc.ShellFor(domain.Role("intruder"), "")
	assert.Error(t, err)
}

func TestStatsFanOut(t *testing.T) {
	st := &storetest.Stub{
		FundStatsFunc: func(context.Context) (*store.FundStats, error) {
			return &store.FundStats{
				AllocationCount: 3,
				AllocationCrore: decimal.NewFromInt(120),
				ReleaseCount:    5,
				ReleaseCrore:    decimal.RequireFromString("87.5"),
			}, nil
		},
		ProposalStatusCountsFunc: func(context.Context) (map[domain.ProposalStatus]int64, error) {
			return map[domain.ProposalStatus]int64{domain.ProposalSubmitted: 4}, nil
		},
		PendingCertificateCountFunc: func(context.Context) (int64, error) {
			return 2, nil
		},
	}

	stats, err := NewService(st).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.AllocationCount)
	assert.Equal(t, "120", stats.AllocationCrore)
	assert.Equal(t, "87.5", stats.ReleaseCrore)
	assert.Equal(t, int64(4), stats.ProposalsByStatus[domain.ProposalSubmitted])
	assert.Equal(t, int64(2), stats.PendingCertificates)
}

func TestStatsPropagatesFailure(t *testing.T) {
	st := &storetest.Stub{
		FundStatsFunc: func(context.Context) (*store.FundStats, error) {
			return nil, assert.AnError
		},
		ProposalStatusCountsFunc: func(context.Context) (map[domain.ProposalStatus]int64, error) {
			return nil, nil
		},
		PendingCertificateCountFunc: func(context.Context) (int64, error) {
			return 0, nil
		},
	}

	_, err := NewService(st).Stats(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
