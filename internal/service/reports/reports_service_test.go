package reports

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/pkg/store/storetest"
	"github.com/pmajay/portal/internal/service/funds"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFundReleasesCSV(t *testing.T) {
	st := &storetest.Stub{
		ListReleasesFunc: func(context.Context, store.ListFundsOpts) ([]*domain.FundRelease, error) {
			return []*domain.FundRelease{{
				ID:           uuid.New(),
				RefNo:        "FR-TEST0001",
				DistrictName: "Pune",
				Components:   []string{"GIA", "Hostel"},
				AmountCrore:  decimal.RequireFromString("0.5"),
				ReleasedOn:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
				OfficerID:    "MH-SA-042",
			}}, nil
		},
	}

	svc := NewService(st, funds.NewService(st))
	out, err := svc.FundReleasesCSV(context.Background(), store.ListFundsOpts{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Ref No,District,Components,Amount (Cr),Amount,Date,Officer", lines[0])
	assert.Contains(t, lines[1], "FR-TEST0001")
	assert.Contains(t, lines[1], "GIA; Hostel")
	assert.Contains(t, lines[1], "₹50,00,000")
	assert.Contains(t, lines[1], "2026-04-01")
}

func TestProposalSummaryCSV(t *testing.T) {
	st := &storetest.Stub{
		ListProposalsFunc: func(context.Context, store.ListProposalsOpts) ([]*domain.ExtendedProposal, error) {
			return []*domain.ExtendedProposal{{
				Proposal: domain.Proposal{
					ProjectName:    "Community Hall",
					EstimatedCrore: decimal.RequireFromString("1.25"),
					Status:         domain.ProposalApprovedByState,
				},
				DistrictName: "Pune",
				StateName:    "Maharashtra",
			}}, nil
		},
	}

	svc := NewService(st, funds.NewService(st))
	out, err := svc.ProposalSummaryCSV(context.Background(), store.ListProposalsOpts{})
	require.NoError(t, err)

	csv := string(out)
	assert.Contains(t, csv, "Community Hall,Pune,Maharashtra,1.25,APPROVED_BY_STATE,")
}
