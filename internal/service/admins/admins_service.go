package admins

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
	"github.com/pmajay/portal/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Create(ctx context.Context, request *dto.CreateDistrictAdminRequest) (*domain.DistrictAdmin, error) {
	admin := &domain.DistrictAdmin{
		ID:         uuid.New(),
		DistrictID: request.DistrictID,
		FullName:   request.FullName,
		Email:      request.Email,
		Phone:      request.Phone,
		Active:     true,
	}

	if err := svc.store.InsertDistrictAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("store.InsertDistrictAdmin: %w", err)
	}

	return admin, nil
}

func (svc *Service) List(ctx context.Context, opts store.ListAdminsOpts) ([]*domain.DistrictAdmin, error) {
	return svc.store.ListDistrictAdmins(ctx, opts)
}

func (svc *Service) Update(ctx context.Context, id uuid.UUID, request *dto.UpdateDistrictAdminRequest) (*domain.DistrictAdmin, error) {
	return svc.store.UpdateDistrictAdmin(ctx, id, store.UpdateDistrictAdminOpts{
		FullName: request.FullName,
		Email:    request.Email,
		Phone:    request.Phone,
		Active:   request.Active,
	})
}
