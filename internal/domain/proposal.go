package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProposalStatus string

const (
	ProposalSubmitted          ProposalStatus = "SUBMITTED"
	ProposalApprovedByState    ProposalStatus = "APPROVED_BY_STATE"
	ProposalApprovedByMinistry ProposalStatus = "APPROVED_BY_MINISTRY"
	ProposalRejectedByState    ProposalStatus = "REJECTED_BY_STATE"
	ProposalRejected           ProposalStatus = "REJECTED"
)

// proposalEdges is the single source of truth for the one-way workflow.
// Terminal statuses have no outgoing edges and never regain one.
var proposalEdges = map[ProposalStatus][]ProposalStatus{
	ProposalSubmitted:       {ProposalApprovedByState, ProposalRejectedByState},
	ProposalApprovedByState: {ProposalApprovedByMinistry, ProposalRejected},
}

func (s ProposalStatus) CanTransition(to ProposalStatus) bool {
	for _, next := range proposalEdges[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ProposalStatus) Terminal() bool {
	return len(proposalEdges[s]) == 0
}

type Proposal struct {
	ID             uuid.UUID       `db:"id"`
	DistrictID     int64           `db:"district_id"`
	ProjectName    string          `db:"project_name"`
	EstimatedCrore decimal.Decimal `db:"estimated_crore"`
	Status         ProposalStatus  `db:"status"`
	RejectReason   string          `db:"reject_reason"`
	CreatedBy      uuid.UUID       `db:"created_by"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// ExtendedProposal carries district and state names for list views.
type ExtendedProposal struct {
	Proposal
	DistrictName string `db:"district_name"`
	StateName    string `db:"state_name"`
}
