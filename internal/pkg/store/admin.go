package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
)

type ListAdminsOpts struct {
	DistrictID *int64
	StateID    *int64
}

// UpdateDistrictAdminOpts carries the editable fields; nil means unchanged.
type UpdateDistrictAdminOpts struct {
	FullName *string
	Email    *string
	Phone    *string
	Active   *bool
}

var adminColumns = []string{"id", "district_id", "full_name", "email", "phone", "active", "created_at", "updated_at"}

func (s *store) InsertDistrictAdmin(ctx context.Context, admin *domain.DistrictAdmin) error {
	query := builder().Insert(tableDistrictAdmins).
		Columns("id", "district_id", "full_name", "email", "phone", "active").
		Values(admin.ID, admin.DistrictID, admin.FullName, admin.Email, admin.Phone, admin.Active)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) ListDistrictAdmins(ctx context.Context, opts ListAdminsOpts) ([]*domain.DistrictAdmin, error) {
	query := builder().Select(adminColumns...).
		From(tableDistrictAdmins).
		OrderBy("full_name")

	if opts.DistrictID != nil {
		query = query.Where(sq.Eq{"district_id": *opts.DistrictID})
	}
	if opts.StateID != nil {
		query = query.Where(sq.Expr("district_id in (select id from districts where state_id = ?)", *opts.StateID))
	}

	var selected []*domain.DistrictAdmin
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateDistrictAdmin(ctx context.Context, id uuid.UUID, upd UpdateDistrictAdminOpts) (*domain.DistrictAdmin, error) {
	query := builder().Update(tableDistrictAdmins).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if upd.FullName != nil {
		query = query.Set("full_name", *upd.FullName)
	}
	if upd.Email != nil {
		query = query.Set("email", *upd.Email)
	}
	if upd.Phone != nil {
		query = query.Set("phone", *upd.Phone)
	}
	if upd.Active != nil {
		query = query.Set("active", *upd.Active)
	}

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := builder().Select(adminColumns...).
		From(tableDistrictAdmins).
		Where(sq.Eq{"id": id})

	var selected domain.DistrictAdmin
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
