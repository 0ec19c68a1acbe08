package domain

import (
	"testing"

	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteDashboard(t *testing.T) {
	expected := map[Role]DashboardVariant{
		RoleMinistryAdmin:      VariantMinistry,
		RoleStateAdmin:         VariantState,
		RoleDistrictAdmin:      VariantDistrict,
		RoleGramPanchayat:      VariantGramPanchayat,
		RoleDepartmentUser:     VariantDepartment,
		RoleContractor:         VariantContractor,
		RolePublic:             VariantPublic,
		RoleImplementingAgency: VariantDepartment,
		RoleExecutingAgency:    VariantContractor,
	}

	// Every enumerated role resolves to exactly one variant.
	for _, role := range AllRoles {
		variant, err := RouteDashboard(role)
		require.NoError(t, err, "role %s", role)
		assert.Equal(t, expected[role], variant, "role %s", role)
	}
}

func TestRouteDashboardFailsClosed(t *testing.T) {
	for _, raw := range []string{"", "superadmin", "MINISTRY_ADMIN", "ministry_admin "} {
		variant, err := RouteDashboard(Role(raw))
		assert.ErrorIs(t, err, constants.ErrUnauthorized, "role %q", raw)
		assert.Empty(t, variant)
	}
}

func TestAgencyAliasesShareVariants(t *testing.T) {
	department, err := RouteDashboard(RoleImplementingAgency)
	require.NoError(t, err)
	assert.Equal(t, VariantDepartment, department)

	contractor, err := RouteDashboard(RoleExecutingAgency)
	require.NoError(t, err)
	assert.Equal(t, VariantContractor, contractor)
}

func TestSelfRegistrableExcludesAdminTiers(t *testing.T) {
	for _, role := range []Role{RoleMinistryAdmin, RoleStateAdmin, RoleDistrictAdmin} {
		assert.False(t, role.SelfRegistrable(), "%s", role)
	}
	for _, role := range []Role{RolePublic, RoleGramPanchayat, RoleDepartmentUser, RoleContractor, RoleImplementingAgency, RoleExecutingAgency} {
		assert.True(t, role.SelfRegistrable(), "%s", role)
	}
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("state_admin")
	require.True(t, ok)
	assert.Equal(t, RoleStateAdmin, role)

	_, ok = ParseRole("auditor")
	assert.False(t, ok)
}
