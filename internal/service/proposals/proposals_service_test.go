package proposals

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/pmajay/portal/internal/pkg/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proposalStub(status domain.ProposalStatus, transitioned *bool) *storetest.Stub {
	return &storetest.Stub{
		GetProposalByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Proposal, error) {
			return &domain.Proposal{ID: id, Status: status}, nil
		},
		TransitionProposalFunc: func(_ context.Context, _ uuid.UUID, from, to domain.ProposalStatus, _ string) error {
			if transitioned != nil {
				*transitioned = true
			}
			return nil
		},
	}
}

func TestApproveByState(t *testing.T) {
	var transitioned bool
	svc := NewService(proposalStub(domain.ProposalSubmitted, &transitioned))

	require.NoError(t, svc.ApproveByState(context.Background(), uuid.New()))
	assert.True(t, transitioned)
}

func TestApproveByMinistryNeedsStateApproval(t *testing.T) {
	svc := NewService(proposalStub(domain.ProposalSubmitted, nil))

	err := svc.ApproveByMinistry(context.Background(), uuid.New())
	assert.ErrorIs(t, err, constants.ErrInvalidTransition)
}

func TestTerminalProposalsRefuseEveryAction(t *testing.T) {
	for _, status := range []domain.ProposalStatus{
		domain.ProposalApprovedByMinistry,
		domain.ProposalRejectedByState,
		domain.ProposalRejected,
	} {
		svc := NewService(proposalStub(status, nil))
		id := uuid.New()

		assert.ErrorIs(t, svc.ApproveByState(context.Background(), id), constants.ErrInvalidTransition, "%s", status)
		assert.ErrorIs(t, svc.ApproveByMinistry(context.Background(), id), constants.ErrInvalidTransition, "%s", status)
		assert.ErrorIs(t, svc.RejectByState(context.Background(), id, "late"), constants.ErrInvalidTransition, "%s", status)
		assert.ErrorIs(t, svc.RejectByMinistry(context.Background(), id, "late"), constants.ErrInvalidTransition, "%s", status)
	}
}

func TestCreateRejectsBadCost(t *testing.T) {
	svc := NewService(&storetest.Stub{})
	session := &domain.Session{User: &domain.User{ID: uuid.New()}, Role: domain.RoleDistrictAdmin}

	for _, raw := range []string{"", "free", "-4", "0"} {
		proposal, fields, err := svc.Create(context.Background(), session, &dto.CreateProposalRequest{
			DistrictID:    7,
			ProjectName:   "Community Hall",
			EstimatedCost: raw,
		})
		require.NoError(t, err)
		assert.Nil(t, proposal)
		require.Len(t, fields, 1, "cost %q", raw)
		assert.Equal(t, "estimated_cost", fields[0].Field)
	}
}

func TestCreateSubmitsProposal(t *testing.T) {
	var inserted *domain.Proposal
	st := &storetest.Stub{
		InsertProposalFunc: func(_ context.Context, p *domain.Proposal) error {
			inserted = p
			return nil
		},
	}

	session := &domain.Session{User: &domain.User{ID: uuid.New()}, Role: domain.RoleDistrictAdmin}
	proposal, fields, err := NewService(st).Create(context.Background(), session, &dto.CreateProposalRequest{
		DistrictID:    7,
		ProjectName:   "Community Hall",
		EstimatedCost: "1.25",
	})
	require.NoError(t, err)
	require.Empty(t, fields)
	require.NotNil(t, inserted)

	assert.Equal(t, domain.ProposalSubmitted, proposal.Status)
	assert.Equal(t, session.UserID(), proposal.CreatedBy)
}
