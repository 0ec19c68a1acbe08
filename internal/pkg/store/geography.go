package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pmajay/portal/internal/domain"
)

type ListDistrictsOpts struct {
	StateID   *int64
	StateName *string
}

var (
	stateColumns    = []string{"id", "name", "code", "created_at", "updated_at"}
	districtColumns = []string{"id", "state_id", "name", "code", "created_at", "updated_at"}
	villageColumns  = []string{"id", "district_id", "name", "code", "created_at", "updated_at"}
)

func (s *store) UpsertState(ctx context.Context, name, code string) (*domain.State, error) {
	query := builder().Insert(tableStates).
		Columns("name", "code").
		Values(name, code).
		Suffix(`on conflict (code) do update set name=excluded.name, updated_at=now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := builder().Select(stateColumns...).
		From(tableStates).
		Where(sq.Eq{"code": code})

	var selected domain.State
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) UpsertDistrict(ctx context.Context, stateID int64, name, code string) (*domain.District, error) {
	query := builder().Insert(tableDistricts).
		Columns("state_id", "name", "code").
		Values(stateID, name, code).
		Suffix(`on conflict (code) do update set name=excluded.name, state_id=excluded.state_id, updated_at=now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := builder().Select(districtColumns...).
		From(tableDistricts).
		Where(sq.Eq{"code": code})

	var selected domain.District
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) UpsertVillage(ctx context.Context, districtID int64, name, code string) (*domain.Village, error) {
	query := builder().Insert(tableVillages).
		Columns("district_id", "name", "code").
		Values(districtID, name, code).
		Suffix(`on conflict (code) do update set name=excluded.name, district_id=excluded.district_id, updated_at=now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := builder().Select(villageColumns...).
		From(tableVillages).
		Where(sq.Eq{"code": code})

	var selected domain.Village
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListStates(ctx context.Context) ([]*domain.State, error) {
	query := builder().Select(stateColumns...).
		From(tableStates).
		OrderBy("name")

	var selected []*domain.State
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListDistricts(ctx context.Context, opts ListDistrictsOpts) ([]*domain.ExtendedDistrict, error) {
	query := builder().Select(
		`d.id, d.state_id, d.name, d.code, d.created_at, d.updated_at, s.name as state_name`).
		From("districts d").
		Join("states s on s.id=d.state_id").
		OrderBy("s.name, d.name")

	if opts.StateID != nil {
		query = query.Where(sq.Eq{"d.state_id": *opts.StateID})
	}
	if opts.StateName != nil {
		query = query.Where(sq.Eq{"s.name": *opts.StateName})
	}

	var selected []*domain.ExtendedDistrict
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) GetStateByName(ctx context.Context, name string) (*domain.State, error) {
	query := builder().Select(stateColumns...).
		From(tableStates).
		Where(sq.Eq{"name": name})

	var selected domain.State
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetDistrictByName(ctx context.Context, name string) (*domain.District, error) {
	query := builder().Select(districtColumns...).
		From(tableDistricts).
		Where(sq.Eq{"name": name})

	var selected domain.District
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
