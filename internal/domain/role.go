package domain

import "github.com/pmajay/portal/internal/pkg/constants"

type Role string

const (
	RoleMinistryAdmin      Role = "ministry_admin"
	RoleStateAdmin         Role = "state_admin"
	RoleDistrictAdmin      Role = "district_admin"
	RoleGramPanchayat      Role = "gram_panchayat_user"
	RoleDepartmentUser     Role = "department_user"
	RoleContractor         Role = "contractor"
	RolePublic             Role = "public"
	RoleImplementingAgency Role = "implementing_agency"
	RoleExecutingAgency    Role = "executing_agency"
)

// AllRoles is the closed set of roles the portal recognises.
var AllRoles = []Role{
	RoleMinistryAdmin,
	RoleStateAdmin,
	RoleDistrictAdmin,
	RoleGramPanchayat,
	RoleDepartmentUser,
	RoleContractor,
	RolePublic,
	RoleImplementingAgency,
	RoleExecutingAgency,
}

type DashboardVariant string

const (
	VariantMinistry      DashboardVariant = "ministry"
	VariantState         DashboardVariant = "state"
	VariantDistrict      DashboardVariant = "district"
	VariantGramPanchayat DashboardVariant = "gram_panchayat"
	VariantDepartment    DashboardVariant = "department"
	VariantContractor    DashboardVariant = "contractor"
	VariantPublic        DashboardVariant = "public"
)

// RouteDashboard resolves a role to its dashboard variant. The agency roles
// reuse the department and contractor variants. Anything outside the closed
// enumeration fails closed with ErrUnauthorized.
func RouteDashboard(role Role) (DashboardVariant, error) {
	switch role {
	case RoleMinistryAdmin:
		return VariantMinistry, nil
	case RoleStateAdmin:
		return VariantState, nil
	case RoleDistrictAdmin:
		return VariantDistrict, nil
	case RoleGramPanchayat:
		return VariantGramPanchayat, nil
	case RoleDepartmentUser, RoleImplementingAgency:
		return VariantDepartment, nil
	case RoleContractor, RoleExecutingAgency:
		return VariantContractor, nil
	case RolePublic:
		return VariantPublic, nil
	default:
		return "", constants.ErrUnauthorized
	}
}

// selfRegistrable is the subset of roles open to self-service signup.
// Administrative tiers are provisioned by the tier above them: the ministry
// seeds state admins, state admins create district admins.
var selfRegistrable = map[Role]bool{
	RoleGramPanchayat:      true,
	RoleDepartmentUser:     true,
	RoleContractor:         true,
	RolePublic:             true,
	RoleImplementingAgency: true,
	RoleExecutingAgency:    true,
}

func (r Role) SelfRegistrable() bool {
	return selfRegistrable[r]
}

func ParseRole(raw string) (Role, bool) {
	for _, r := range AllRoles {
		if string(r) == raw {
			return r, true
		}
	}
	return "", false
}
