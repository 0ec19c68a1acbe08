package proposals

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/pmajay/portal/internal/pkg/logger"
	"github.com/pmajay/portal/internal/pkg/store"
	"github.com/shopspring/decimal"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Create(ctx context.Context, session *domain.Session, request *dto.CreateProposalRequest) (*domain.Proposal, []domain.FieldError, error) {
	cost, err := decimal.NewFromString(request.EstimatedCost)
	if err != nil || !cost.IsPositive() {
		return nil, []domain.FieldError{{Field: "estimated_cost", Message: "estimated cost must be a positive number of crore"}}, nil
	}

	proposal := &domain.Proposal{
		ID:             uuid.New(),
		DistrictID:     request.DistrictID,
		ProjectName:    request.ProjectName,
		EstimatedCrore: cost,
		Status:         domain.ProposalSubmitted,
		CreatedBy:      session.UserID(),
	}

	if err = svc.store.InsertProposal(ctx, proposal); err != nil {
		return nil, nil, fmt.Errorf("store.InsertProposal: %w", err)
	}

	return proposal, nil, nil
}

func (svc *Service) List(ctx context.Context, opts store.ListProposalsOpts) ([]*domain.ExtendedProposal, error) {
	return svc.store.ListProposals(ctx, opts)
}

// ApproveByState moves SUBMITTED -> APPROVED_BY_STATE.
func (svc *Service) ApproveByState(ctx context.Context, id uuid.UUID) error {
	return svc.transition(ctx, id, domain.ProposalApprovedByState, "")
}

// ApproveByMinistry moves APPROVED_BY_STATE -> APPROVED_BY_MINISTRY.
func (svc *Service) ApproveByMinistry(ctx context.Context, id uuid.UUID) error {
	return svc.transition(ctx, id, domain.ProposalApprovedByMinistry, "")
}

// RejectByState moves SUBMITTED -> REJECTED_BY_STATE; the reason is required.
func (svc *Service) RejectByState(ctx context.Context, id uuid.UUID, reason string) error {
	return svc.transition(ctx, id, domain.ProposalRejectedByState, reason)
}

// RejectByMinistry moves APPROVED_BY_STATE -> REJECTED.
func (svc *Service) RejectByMinistry(ctx context.Context, id uuid.UUID, reason string) error {
	return svc.transition(ctx, id, domain.ProposalRejected, reason)
}

// transition checks the workflow edge in memory, then lets the store apply
// it guarded by the current status so concurrent actors cannot both win.
func (svc *Service) transition(ctx context.Context, id uuid.UUID, to domain.ProposalStatus, reason string) error {
	proposal, err := svc.store.GetProposalByID(ctx, id)
	if err != nil {
		return err
	}

	if !proposal.Status.CanTransition(to) {
		logger.Warnf(ctx, "proposal %s: transition %s -> %s refused", id, proposal.Status, to)
		return constants.ErrInvalidTransition
	}

	if err = svc.store.TransitionProposal(ctx, id, proposal.Status, to, reason); err != nil {
		return err
	}

	logger.Infof(ctx, "proposal %s: %s -> %s", id, proposal.Status, to)

	return nil
}
