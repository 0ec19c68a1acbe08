package certificates

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
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

func (svc *Service) Create(ctx context.Context, request *dto.CreateCertificateRequest) (*domain.UtilizationCertificate, []domain.FieldError, error) {
	var fields []domain.FieldError

	released, err := decimal.NewFromString(request.Released)
	if err != nil || released.IsNegative() {
		fields = append(fields, domain.FieldError{Field: "released", Message: "released amount must be a non-negative number of crore"})
	}
	utilized, err := decimal.NewFromString(request.Utilized)
	if err != nil || utilized.IsNegative() {
		fields = append(fields, domain.FieldError{Field: "utilized", Message: "utilized amount must be a non-negative number of crore"})
	}
	if len(fields) == 0 && utilized.GreaterThan(released) {
		fields = append(fields, domain.FieldError{Field: "utilized", Message: "utilized amount cannot exceed released amount"})
	}
	if len(fields) > 0 {
		return nil, fields, nil
	}

	cert := &domain.UtilizationCertificate{
		ID:            uuid.New(),
		DistrictID:    request.DistrictID,
		FinancialYear: request.FinancialYear,
		ReleasedCrore: released,
		UtilizedCrore: utilized,
		Status:        domain.CertificatePending,
		Remarks:       request.Remarks,
	}

	if err = svc.store.InsertCertificate(ctx, cert); err != nil {
		return nil, nil, fmt.Errorf("store.InsertCertificate: %w", err)
	}

	return cert, nil, nil
}

func (svc *Service) List(ctx context.Context, opts store.ListCertificatesOpts) ([]*domain.UtilizationCertificate, error) {
	return svc.store.ListCertificates(ctx, opts)
}

// Verify marks a pending certificate Verified. Verification is terminal.
func (svc *Service) Verify(ctx context.Context, id uuid.UUID, verifiedBy uuid.UUID) error {
	if err := svc.store.SetCertificateStatus(ctx, id, domain.CertificateVerified, "", verifiedBy); err != nil {
		return err
	}
	logger.Infof(ctx, "utilization certificate %s verified by %s", id, verifiedBy)
	return nil
}

// Reject marks a pending certificate Rejected with the verifier's remarks.
func (svc *Service) Reject(ctx context.Context, id uuid.UUID, verifiedBy uuid.UUID, remarks string) error {
	if err := svc.store.SetCertificateStatus(ctx, id, domain.CertificateRejected, remarks, verifiedBy); err != nil {
		return err
	}
	logger.Infof(ctx, "utilization certificate %s rejected by %s", id, verifiedBy)
	return nil
}
