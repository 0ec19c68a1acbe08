package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pmajay/portal/internal/pkg/constants"
)

const (
	tableUsers          = "users"
	tableProfiles       = "profiles"
	tableSessions       = "sessions"
	tableStates         = "states"
	tableDistricts      = "districts"
	tableVillages       = "villages"
	tableAllocations    = "fund_allocations"
	tableReleases       = "fund_releases"
	tableProposals      = "proposals"
	tableCertificates   = "utilization_certificates"
	tableDistrictAdmins = "district_admins"
	tableNotifications  = "notifications"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
