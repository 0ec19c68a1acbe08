package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/pkg/constants"
)

type ListCertificatesOpts struct {
	DistrictID    *int64
	StateID       *int64
	Status        *domain.CertificateStatus
	FinancialYear *string
}

var certificateColumns = []string{"id", "district_id", "financial_year", "released_crore", "utilized_crore", "status", "remarks", "verified_by", "created_at", "updated_at"}

func (s *store) InsertCertificate(ctx context.Context, cert *domain.UtilizationCertificate) error {
	query := builder().Insert(tableCertificates).
		Columns("id", "district_id", "financial_year", "released_crore", "utilized_crore", "status", "remarks").
		Values(cert.ID, cert.DistrictID, cert.FinancialYear, cert.ReleasedCrore, cert.UtilizedCrore, cert.Status, cert.Remarks)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetCertificateByID(ctx context.Context, id uuid.UUID) (*domain.UtilizationCertificate, error) {
	query := builder().Select(certificateColumns...).
		From(tableCertificates).
		Where(sq.Eq{"id": id})

	var selected domain.UtilizationCertificate
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListCertificates(ctx context.Context, opts ListCertificatesOpts) ([]*domain.UtilizationCertificate, error) {
	query := builder().Select(certificateColumns...).
		From(tableCertificates).
		OrderBy("financial_year desc, created_at desc")

	if opts.DistrictID != nil {
		query = query.Where(sq.Eq{"district_id": *opts.DistrictID})
	}
	if opts.StateID != nil {
		query = query.Where(sq.Expr("district_id in (select id from districts where state_id = ?)", *opts.StateID))
	}
	if opts.Status != nil {
		query = query.Where(sq.Eq{"status": *opts.Status})
	}
	if opts.FinancialYear != nil {
		query = query.Where(sq.Eq{"financial_year": *opts.FinancialYear})
	}

	var selected []*domain.UtilizationCertificate
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// SetCertificateStatus verifies or rejects a pending certificate. The
// Pending guard keeps the transition one-way. Empty remarks leave the
// submitter's remarks untouched; verification passes none.
func (s *store) SetCertificateStatus(ctx context.Context, id uuid.UUID, to domain.CertificateStatus, remarks string, verifiedBy uuid.UUID) error {
	query := builder().Update(tableCertificates).
		Set("status", to).
		Set("verified_by", verifiedBy).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"status": domain.CertificatePending},
		})
	if remarks != "" {
		query = query.Set("remarks", remarks)
	}

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrInvalidTransition
	}

	return nil
}
