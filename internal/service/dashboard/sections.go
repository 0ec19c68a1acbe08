package dashboard

import (
	"fmt"

	"github.com/pmajay/portal/internal/domain"
)

type SectionID string

// Section is one declarative sidebar entry.
type Section struct {
	ID    SectionID `json:"id"`
	Label string    `json:"label"`
	Icon  string    `json:"icon"`
}

// variantSections is the closed section set per dashboard variant, in
// sidebar order. The first entry is the default active section.
var variantSections = map[domain.DashboardVariant][]Section{
	domain.VariantMinistry: {
		{ID: "dashboard", Label: "Dashboard", Icon: "home"},
		{ID: "admins", Label: "Manage State Admins", Icon: "users"},
		{ID: "funds", Label: "Fund Allocation", Icon: "banknote"},
		{ID: "released", Label: "Released Funds", Icon: "send"},
		{ID: "plans", Label: "Annual Plans", Icon: "calendar"},
		{ID: "monitor", Label: "Monitor Projects", Icon: "map"},
		{ID: "notifications", Label: "Notifications", Icon: "bell"},
		{ID: "reports", Label: "Reports", Icon: "file-text"},
		{ID: "help", Label: "Help", Icon: "help-circle"},
	},
	domain.VariantState: {
		{ID: "dashboard", Label: "Dashboard", Icon: "home"},
		{ID: "admins", Label: "Manage District Admins", Icon: "users"},
		{ID: "funds", Label: "Funds Received", Icon: "banknote"},
		{ID: "released", Label: "Fund Release to Districts", Icon: "send"},
		{ID: "proposals", Label: "District Proposals", Icon: "clipboard"},
		{ID: "certificates", Label: "Utilization Certificates", Icon: "badge-check"},
		{ID: "monitor", Label: "Monitor Projects", Icon: "map"},
		{ID: "notifications", Label: "Notifications", Icon: "bell"},
		{ID: "reports", Label: "Reports", Icon: "file-text"},
		{ID: "help", Label: "Help", Icon: "help-circle"},
	},
	domain.VariantDistrict: {
		{ID: "dashboard", Label: "Dashboard", Icon: "home"},
		{ID: "funds", Label: "Funds Received", Icon: "banknote"},
		{ID: "proposals", Label: "Project Proposals", Icon: "clipboard"},
		{ID: "certificates", Label: "Utilization Certificates", Icon: "badge-check"},
		{ID: "villages", Label: "Adarsh Gram Villages", Icon: "map-pin"},
		{ID: "help", Label: "Help", Icon: "help-circle"},
	},
	domain.VariantGramPanchayat: {
		{ID: "dashboard", Label: "Dashboard", Icon: "home"},
		{ID: "projects", Label: "Village Projects", Icon: "hammer"},
		{ID: "funds", Label: "Funds", Icon: "banknote"},
		{ID: "help", Label: "Help", Icon: "help-circle"},
	},
	domain.VariantDepartment: {
		{ID: "dashboard", Label: "Dashboard", Icon: "home"},
		{ID: "projects", Label: "Assigned Projects", Icon: "hammer"},
		{ID: "proposals", Label: "Proposals", Icon: "clipboard"},
		{ID: "help", Label: "Help", Icon: "help-circle"},
	},
	domain.VariantContractor: {
		{ID: "dashboard", Label: "Dashboard", Icon: "home"},
		{ID: "works", Label: "Work Orders", Icon: "hammer"},
		{ID: "progress", Label: "Progress Updates", Icon: "trending-up"},
		{ID: "help", Label: "Help", Icon: "help-circle"},
	},
	domain.VariantPublic: {
		{ID: "dashboard", Label: "Scheme Overview", Icon: "home"},
		{ID: "map", Label: "Project Map", Icon: "map"},
		{ID: "reports", Label: "Public Reports", Icon: "file-text"},
		{ID: "help", Label: "Help", Icon: "help-circle"},
	},
}

func SectionsFor(variant domain.DashboardVariant) ([]Section, error) {
	sections, ok := variantSections[variant]
	if !ok {
		return nil, fmt.Errorf("unknown dashboard variant %q", variant)
	}
	return sections, nil
}

// Shell holds the one piece of dashboard state: which section is active.
// Activating a section discards the previous panel entirely; there is no
// cache and never more than one mounted panel.
type Shell struct {
	Variant  domain.DashboardVariant
	Sections []Section
	active   SectionID
}

func NewShell(variant domain.DashboardVariant) (*Shell, error) {
	sections, err := SectionsFor(variant)
	if err != nil {
		return nil, err
	}
	return &Shell{
		Variant:  variant,
		Sections: sections,
		active:   sections[0].ID,
	}, nil
}

func (s *Shell) Activate(id SectionID) error {
	for _, section := range s.Sections {
		if section.ID == id {
			s.active = id
			return nil
		}
	}
	return fmt.Errorf("section %q not in %s dashboard", id, s.Variant)
}

func (s *Shell) Active() SectionID {
	return s.active
}

// MountedPanel names the single content panel the shell currently renders.
func (s *Shell) MountedPanel() string {
	return fmt.Sprintf("%s/%s", s.Variant, s.active)
}
