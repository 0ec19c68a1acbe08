package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
)

var (
	userColumns    = []string{"id", "email", "full_name", "password_hash", "password_salt", "created_at", "updated_at"}
	profileColumns = []string{"user_id", "role", "state_id", "district_id", "agency_name", "created_at", "updated_at"}
	sessionColumns = []string{"token", "user_id", "expires_at", "created_at"}
)

func (s *store) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns("id", "email", "full_name", "password_hash", "password_salt").
		Values(user.ID, user.Email, user.FullName, user.Hash, user.Salt)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"email": email})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"id": id})

	var selected domain.User
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	query := builder().Insert(tableProfiles).
		Columns("user_id", "role", "state_id", "district_id", "agency_name").
		Values(profile.UserID, profile.Role, profile.StateID, profile.DistrictID, profile.AgencyName).
		Suffix(`on conflict (user_id) do update set role=excluded.role, state_id=excluded.state_id, district_id=excluded.district_id, agency_name=excluded.agency_name, updated_at=now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := builder().Select(profileColumns...).
		From(tableProfiles).
		Where(sq.Eq{"user_id": userID})

	var selected domain.Profile
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) CreateSession(ctx context.Context, rec *domain.SessionRecord) error {
	query := builder().Insert(tableSessions).
		Columns("token", "user_id", "expires_at").
		Values(rec.Token, rec.UserID, rec.ExpiresAt)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetSessionByToken(ctx context.Context, token string) (*domain.SessionRecord, error) {
	query := builder().Select(sessionColumns...).
		From(tableSessions).
		Where(sq.And{
			sq.Eq{"token": token},
			sq.Expr("expires_at > now()"),
		})

	var selected domain.SessionRecord
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) DeleteSession(ctx context.Context, token string) error {
	query := builder().Delete(tableSessions).
		Where(sq.Eq{"token": token})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
