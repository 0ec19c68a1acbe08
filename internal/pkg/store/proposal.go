package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/constants"
)

type ListProposalsOpts struct {
	DistrictID *int64
	StateID    *int64
	Status     *domain.ProposalStatus
}

var proposalColumns = []string{"id", "district_id", "project_name", "estimated_crore", "status", "reject_reason", "created_by", "created_at", "updated_at"}

func (s *store) InsertProposal(ctx context.Context, proposal *domain.Proposal) error {
	query := builder().Insert(tableProposals).
		Columns("id", "district_id", "project_name", "estimated_crore", "status", "created_by").
		Values(proposal.ID, proposal.DistrictID, proposal.ProjectName, proposal.EstimatedCrore, proposal.Status, proposal.CreatedBy)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetProposalByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	query := builder().Select(proposalColumns...).
		From(tableProposals).
		Where(sq.Eq{"id": id})

	var selected domain.Proposal
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListProposals(ctx context.Context, opts ListProposalsOpts) ([]*domain.ExtendedProposal, error) {
	query := builder().Select(
		`p.id, p.district_id, p.project_name, p.estimated_crore, p.status, p.reject_reason, p.created_by, p.created_at, p.updated_at, d.name as district_name, s.name as state_name`).
		From("proposals p").
		Join("districts d on d.id=p.district_id").
		Join("states s on s.id=d.state_id").
		OrderBy("p.created_at desc")

	if opts.DistrictID != nil {
		query = query.Where(sq.Eq{"p.district_id": *opts.DistrictID})
	}
	if opts.StateID != nil {
		query = query.Where(sq.Eq{"d.state_id": *opts.StateID})
	}
	if opts.Status != nil {
		query = query.Where(sq.Eq{"p.status": *opts.Status})
	}

	var selected []*domain.ExtendedProposal
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// TransitionProposal advances a proposal guarded by its current status, so a
// racing second actor loses with ErrInvalidTransition instead of overwriting
// a terminal state.
func (s *store) TransitionProposal(ctx context.Context, id uuid.UUID, from, to domain.ProposalStatus, reason string) error {
	query := builder().Update(tableProposals).
		Set("status", to).
		Set("reject_reason", reason).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"status": from},
		})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrInvalidTransition
	}

	return nil
}
