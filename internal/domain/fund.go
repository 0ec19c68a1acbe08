package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Component is a PM-AJAY scheme component. The set is closed.
type Component string

const (
	ComponentAdarshGram Component = "Adarsh Gram"
	ComponentGIA        Component = "GIA"
	ComponentHostel     Component = "Hostel"
)

var AllComponents = []Component{ComponentAdarshGram, ComponentGIA, ComponentHostel}

func ValidComponent(raw string) bool {
	for _, c := range AllComponents {
		if string(c) == raw {
			return true
		}
	}
	return false
}

// FundAllocation is a ministry-to-state grant. Amounts are in crore.
// Allocations are append-only; there is no update or delete path.
type FundAllocation struct {
	ID          uuid.UUID       `db:"id"`
	RefNo       string          `db:"ref_no"`
	StateID     int64           `db:"state_id"`
	StateName   string          `db:"state_name"`
	Components  []string        `db:"components"`
	AmountCrore decimal.Decimal `db:"amount_crore"`
	AllocatedOn time.Time       `db:"allocated_on"`
	OfficerID   string          `db:"officer_id"`
	Remarks     string          `db:"remarks"`
	CreatedBy   uuid.UUID       `db:"created_by"`
	CreatedAt   time.Time       `db:"created_at"`
}

// FundRelease is a state-to-district release, likewise append-only.
type FundRelease struct {
	ID           uuid.UUID       `db:"id"`
	RefNo        string          `db:"ref_no"`
	DistrictID   int64           `db:"district_id"`
	DistrictName string          `db:"district_name"`
	Components   []string        `db:"components"`
	AmountCrore  decimal.Decimal `db:"amount_crore"`
	ReleasedOn   time.Time       `db:"released_on"`
	OfficerID    string          `db:"officer_id"`
	Remarks      string          `db:"remarks"`
	CreatedBy    uuid.UUID       `db:"created_by"`
	CreatedAt    time.Time       `db:"created_at"`
}
