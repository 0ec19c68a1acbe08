// Package reports assembles the downloadable exports the portal's report
// panels offer.
package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/pmajay/portal/internal/service/funds"
)

type Service struct {
	store store.Store
	funds *funds.Service
}

func NewService(st store.Store, fundsService *funds.Service) *Service {
	return &Service{store: st, funds: fundsService}
}

// FundReleasesCSV exports the fund-release log with display amounts the way
// the table renders them.
func (svc *Service) FundReleasesCSV(ctx context.Context, opts store.ListFundsOpts) ([]byte, error) {
	rows, err := svc.funds.ListReleases(ctx, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err = w.Write([]string{"Ref No", "District", "Components", "Amount (Cr)", "Amount", "Date", "Officer"}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{row.RefNo, row.Target, strings.Join(row.Components, "; "), row.AmountCrore, row.DisplayAmount, row.Date, row.OfficerID}
		if err = w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	return buf.Bytes(), nil
}

// ProposalSummaryCSV exports proposals with their workflow status.
func (svc *Service) ProposalSummaryCSV(ctx context.Context, opts store.ListProposalsOpts) ([]byte, error) {
	proposals, err := svc.store.ListProposals(ctx, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err = w.Write([]string{"Project", "District", "State", "Estimated Cost (Cr)", "Status", "Reject Reason"}); err != nil {
		return nil, err
	}
	for _, p := range proposals {
		record := []string{p.ProjectName, p.DistrictName, p.StateName, p.EstimatedCrore.String(), string(p.Status), p.RejectReason}
		if err = w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	return buf.Bytes(), nil
}
