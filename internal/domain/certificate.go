package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CertificateStatus string

const (
	CertificatePending  CertificateStatus = "Pending"
	CertificateVerified CertificateStatus = "Verified"
	CertificateRejected CertificateStatus = "Rejected"
)

// UtilizationCertificate reports fund utilization for a district and
// financial year. Verification is one-way: once Verified or Rejected the
// certificate never returns to Pending.
type UtilizationCertificate struct {
	ID            uuid.UUID         `db:"id"`
	DistrictID    int64             `db:"district_id"`
	FinancialYear string            `db:"financial_year"`
	ReleasedCrore decimal.Decimal   `db:"released_crore"`
	UtilizedCrore decimal.Decimal   `db:"utilized_crore"`
	Status        CertificateStatus `db:"status"`
	Remarks       string            `db:"remarks"`
	VerifiedBy    *uuid.UUID        `db:"verified_by"`
	CreatedAt     time.Time         `db:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at"`
}

// UtilizationPercent is utilized/released, rounded to two places; zero when
// nothing was released.
func (c *UtilizationCertificate) UtilizationPercent() decimal.Decimal {
	if c.ReleasedCrore.IsZero() {
		return decimal.Zero
	}
	return c.UtilizedCrore.Div(c.ReleasedCrore).Mul(decimal.NewFromInt(100)).Round(2)
}
