package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pmajay/portal/internal/domain"
)

// ListFundsOpts scopes fund queries to the caller's tier. Nil fields mean
// no filter (ministry view).
type ListFundsOpts struct {
	StateID    *int64
	DistrictID *int64
}

var (
	allocationColumns = []string{"id", "ref_no", "state_id", "state_name", "components", "amount_crore", "allocated_on", "officer_id", "remarks", "created_by", "created_at"}
	releaseColumns    = []string{"id", "ref_no", "district_id", "district_name", "components", "amount_crore", "released_on", "officer_id", "remarks", "created_by", "created_at"}
)

func (s *store) InsertAllocation(ctx context.Context, alloc *domain.FundAllocation) error {
	query := builder().Insert(tableAllocations).
		Columns("id", "ref_no", "state_id", "state_name", "components", "amount_crore", "allocated_on", "officer_id", "remarks", "created_by").
		Values(alloc.ID, alloc.RefNo, alloc.StateID, alloc.StateName, alloc.Components, alloc.AmountCrore, alloc.AllocatedOn, alloc.OfficerID, alloc.Remarks, alloc.CreatedBy)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ListAllocations(ctx context.Context, opts ListFundsOpts) ([]*domain.FundAllocation, error) {
	query := builder().Select(allocationColumns...).
		From(tableAllocations).
		OrderBy("allocated_on desc, created_at desc")

	if opts.StateID != nil {
		query = query.Where(sq.Eq{"state_id": *opts.StateID})
	}

	var selected []*domain.FundAllocation
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) InsertRelease(ctx context.Context, release *domain.FundRelease) error {
	query := builder().Insert(tableReleases).
		Columns("id", "ref_no", "district_id", "district_name", "components", "amount_crore", "released_on", "officer_id", "remarks", "created_by").
		Values(release.ID, release.RefNo, release.DistrictID, release.DistrictName, release.Components, release.AmountCrore, release.ReleasedOn, release.OfficerID, release.Remarks, release.CreatedBy)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ListReleases(ctx context.Context, opts ListFundsOpts) ([]*domain.FundRelease, error) {
	query := builder().Select(releaseColumns...).
		From(tableReleases).
		OrderBy("released_on desc, created_at desc")

	if opts.DistrictID != nil {
		query = query.Where(sq.Eq{"district_id": *opts.DistrictID})
	}
	if opts.StateID != nil {
		query = query.Where(sq.Expr("district_id in (select id from districts where state_id = ?)", *opts.StateID))
	}

	var selected []*domain.FundRelease
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
