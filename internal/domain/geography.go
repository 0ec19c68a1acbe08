package domain

import "time"

type State struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type District struct {
	ID        int64     `db:"id"`
	StateID   int64     `db:"state_id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Village struct {
	ID         int64     `db:"id"`
	DistrictID int64     `db:"district_id"`
	Name       string    `db:"name"`
	Code       string    `db:"code"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// ExtendedDistrict carries the parent state name for list views.
type ExtendedDistrict struct {
	District
	StateName string `db:"state_name"`
}
