package store

import (
	"context"

	"github.com/pmajay/portal/internal/domain"
	"github.com/shopspring/decimal"
)

// FundStats backs the dashboard stat cards.
type FundStats struct {
	AllocationCount int64           `db:"allocation_count"`
	AllocationCrore decimal.Decimal `db:"allocation_crore"`
	ReleaseCount    int64           `db:"release_count"`
	ReleaseCrore    decimal.Decimal `db:"release_crore"`
}

func (s *store) FundStats(ctx context.Context) (*FundStats, error) {
	query := builder().Select(
		`(select count(*) from fund_allocations) as allocation_count`,
		`(select coalesce(sum(amount_crore), 0) from fund_allocations) as allocation_crore`,
		`(select count(*) from fund_releases) as release_count`,
		`(select coalesce(sum(amount_crore), 0) from fund_releases) as release_crore`,
	)

	var selected FundStats
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ProposalStatusCounts(ctx context.Context) (map[domain.ProposalStatus]int64, error) {
	query := builder().Select("status", "count(*) as total").
		From(tableProposals).
		GroupBy("status")

	type statusCount struct {
		Status domain.ProposalStatus `db:"status"`
		Total  int64                 `db:"total"`
	}

	var selected []*statusCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	counts := make(map[domain.ProposalStatus]int64, len(selected))
	for _, sc := range selected {
		counts[sc.Status] = sc.Total
	}

	return counts, nil
}

func (s *store) PendingCertificateCount(ctx context.Context) (int64, error) {
	query := builder().Select("count(*) as total").
		From(tableCertificates).
		Where("status = ?", domain.CertificatePending)

	type countRow struct {
		Total int64 `db:"total"`
	}

	var selected countRow
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return 0, wrapErr(err)
	}

	return selected.Total, nil
}
