package funds

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/random"
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

const dateLayout = "2006-01-02"

// CreateAllocation records a ministry-to-state grant. Field errors block the
// write and are surfaced inline next to the offending field.
func (svc *Service) CreateAllocation(ctx context.Context, session *domain.Session, request *dto.CreateAllocationRequest) (*domain.FundAllocation, []domain.FieldError, error) {
	amount, fields := validateAmount(request.Amount)
	if len(fields) > 0 {
		return nil, fields, nil
	}

	state, err := svc.store.GetStateByName(ctx, request.State)
	if err != nil {
		return nil, []domain.FieldError{{Field: "state", Message: fmt.Sprintf("unknown state %q", request.State)}}, nil
	}

	allocatedOn, err := time.Parse(dateLayout, request.Date)
	if err != nil {
		return nil, []domain.FieldError{{Field: "date", Message: "date must be YYYY-MM-DD"}}, nil
	}

	alloc := &domain.FundAllocation{
		ID:          uuid.New(),
		RefNo:       newRefNo("FA"),
		StateID:     state.ID,
		StateName:   state.Name,
		Components:  request.Components,
		AmountCrore: amount,
		AllocatedOn: allocatedOn,
		OfficerID:   request.OfficerID,
		Remarks:     request.Remarks,
		CreatedBy:   session.UserID(),
	}

	if err = svc.store.InsertAllocation(ctx, alloc); err != nil {
		return nil, nil, fmt.Errorf("store.InsertAllocation: %w", err)
	}

	logger.Infof(ctx, "fund allocation %s: %s crore to %s", alloc.RefNo, amount, state.Name)

	return alloc, nil, nil
}

// CreateRelease records a state-to-district release from the "Release New
// Funds" modal.
func (svc *Service) CreateRelease(ctx context.Context, session *domain.Session, request *dto.CreateReleaseRequest) (*domain.FundRelease, []domain.FieldError, error) {
	amount, fields := validateAmount(request.Amount)
	if len(fields) > 0 {
		return nil, fields, nil
	}

	district, err := svc.store.GetDistrictByName(ctx, request.District)
	if err != nil {
		return nil, []domain.FieldError{{Field: "district", Message: fmt.Sprintf("unknown district %q", request.District)}}, nil
	}

	releasedOn, err := time.Parse(dateLayout, request.Date)
	if err != nil {
		return nil, []domain.FieldError{{Field: "date", Message: "date must be YYYY-MM-DD"}}, nil
	}

	release := &domain.FundRelease{
		ID:           uuid.New(),
		RefNo:        newRefNo("FR"),
		DistrictID:   district.ID,
		DistrictName: district.Name,
		Components:   request.Components,
		AmountCrore:  amount,
		ReleasedOn:   releasedOn,
		OfficerID:    request.OfficerID,
		Remarks:      request.Remarks,
		CreatedBy:    session.UserID(),
	}

	if err = svc.store.InsertRelease(ctx, release); err != nil {
		return nil, nil, fmt.Errorf("store.InsertRelease: %w", err)
	}

	logger.Infof(ctx, "fund release %s: %s crore to %s", release.RefNo, amount, district.Name)

	return release, nil, nil
}

func (svc *Service) ListAllocations(ctx context.Context, opts store.ListFundsOpts) ([]*dto.FundRow, error) {
	allocations, err := svc.store.ListAllocations(ctx, opts)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.FundRow, 0, len(allocations))
	for _, a := range allocations {
		rows = append(rows, AllocationRow(a))
	}

	return rows, nil
}

func (svc *Service) ListReleases(ctx context.Context, opts store.ListFundsOpts) ([]*dto.FundRow, error) {
	releases, err := svc.store.ListReleases(ctx, opts)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.FundRow, 0, len(releases))
	for _, r := range releases {
		rows = append(rows, ReleaseRow(r))
	}

	return rows, nil
}

func AllocationRow(a *domain.FundAllocation) *dto.FundRow {
	return &dto.FundRow{
		ID:            a.ID.String(),
		RefNo:         a.RefNo,
		Target:        a.StateName,
		Components:    a.Components,
		AmountCrore:   a.AmountCrore.String(),
		DisplayAmount: FormatINR(a.AmountCrore),
		Date:          a.AllocatedOn.Format(dateLayout),
		OfficerID:     a.OfficerID,
		Remarks:       a.Remarks,
	}
}

func ReleaseRow(r *domain.FundRelease) *dto.FundRow {
	return &dto.FundRow{
		ID:            r.ID.String(),
		RefNo:         r.RefNo,
		Target:        r.DistrictName,
		Components:    r.Components,
		AmountCrore:   r.AmountCrore.String(),
		DisplayAmount: FormatINR(r.AmountCrore),
		Date:          r.ReleasedOn.Format(dateLayout),
		OfficerID:     r.OfficerID,
		Remarks:       r.Remarks,
	}
}

func validateAmount(raw string) (amount decimal.Decimal, fields []domain.FieldError) {
	amount, ok := ParseCroreAmount(raw)
	if !ok {
		fields = append(fields, domain.FieldError{Field: "amount", Message: "amount must be a positive number of crore"})
	}
	return amount, fields
}

func newRefNo(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, random.String(8, random.Uppercase, random.Numeric))
}
