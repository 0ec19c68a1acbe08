package dashboard

import (
	"testing"

	"github.com/pmajay/portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShellDefaultsToFirstSection(t *testing.T) {
	shell, err := NewShell(domain.VariantMinistry)
	require.NoError(t, err)

	assert.Equal(t, SectionID("dashboard"), shell.Active())
	assert.Equal(t, "ministry/dashboard", shell.MountedPanel())
}

func TestActivateSwapsTheSingleMountedPanel(t *testing.T) {
	shell, err := NewShell(domain.VariantState)
	require.NoError(t, err)

	require.NoError(t, shell.Activate("certificates"))
	assert.Equal(t, "state/certificates", shell.MountedPanel())

	require.NoError(t, shell.Activate("funds"))
	assert.Equal(t, "state/funds", shell.MountedPanel())
}

func TestActivateRejectsForeignSection(t *testing.T) {
	shell, err := NewShell(domain.VariantGramPanchayat)
	require.NoError(t, err)

	// "admins" belongs to ministry and state dashboards only.
	require.Error(t, shell.Activate("admins"))
	assert.Equal(t, SectionID("dashboard"), shell.Active())
}

func TestEveryVariantHasSections(t *testing.T) {
	for _, role := range domain.AllRoles {
		variant, err := domain.RouteDashboard(role)
		require.NoError(t, err)

		sections, err := SectionsFor(variant)
		require.NoError(t, err, "variant %s", variant)
		require.NotEmpty(t, sections, "variant %s", variant)

		seen := make(map[SectionID]bool, len(sections))
		for _, section := range sections {
			assert.False(t, seen[section.ID], "variant %s repeats section %s", variant, section.ID)
			seen[section.ID] = true
		}
	}
}

func TestSectionsForUnknownVariant(t *testing.T) {
	_, err := SectionsFor(domain.DashboardVariant("superuser"))
	assert.Error(t, err)
}
