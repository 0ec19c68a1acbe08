package domain

import (
	"time"

	"github.com/google/uuid"
)

// DistrictAdmin is the one record type with an update path in the portal;
// everything else is an append-only log.
type DistrictAdmin struct {
	ID         uuid.UUID `db:"id"`
	DistrictID int64     `db:"district_id"`
	FullName   string    `db:"full_name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
