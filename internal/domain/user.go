package domain

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/pkg/constants"
)

type UserPassword struct {
	Hash string `db:"password_hash"`
	Salt string `db:"password_salt"`
}

func (p *UserPassword) Init(raw string) error {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	p.Salt = hex.EncodeToString(salt)
	p.Hash = hashPassword(raw, p.Salt)
	return nil
}

func (p *UserPassword) Validate(raw string) error {
	if hashPassword(raw, p.Salt) != p.Hash {
		return constants.ErrInvalidCredentials
	}
	return nil
}

func hashPassword(raw, salt string) string {
	sum := sha256.Sum256([]byte(salt + raw))
	return hex.EncodeToString(sum[:])
}

type User struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	FullName  string    `db:"full_name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	UserPassword
}

// Profile is the role/scope row mirrored from the auth record. StateID and
// DistrictID scope what the user's panels may fetch.
type Profile struct {
	UserID     uuid.UUID `db:"user_id"`
	Role       Role      `db:"role"`
	StateID    *int64    `db:"state_id"`
	DistrictID *int64    `db:"district_id"`
	AgencyName *string   `db:"agency_name"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
