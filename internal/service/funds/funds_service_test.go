package funds

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
	"github.com/pmajay/portal/internal/domain/dto"
	"github.com/pmajay/portal/internal/pkg/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateAdminSession() *domain.Session {
	return &domain.Session{
		User: &domain.User{ID: uuid.New()},
		Role: domain.RoleStateAdmin,
	}
}

func TestCreateRelease(t *testing.T) {
	var inserted *domain.FundRelease
	st := &storetest.Stub{
		GetDistrictByNameFunc: func(_ context.Context, name string) (*domain.District, error) {
			require.Equal(t, "Pune", name)
			return &domain.District{ID: 7, StateID: 1, Name: "Pune"}, nil
		},
		InsertReleaseFunc: func(_ context.Context, release *domain.FundRelease) error {
			inserted = release
			return nil
		},
	}

	svc := NewService(st)
	session := stateAdminSession()

	release, fields, err := svc.CreateRelease(context.Background(), session, &dto.CreateReleaseRequest{
		District:   "Pune",
		Components: []string{"GIA"},
		Amount:     "0.5",
		Date:       "2026-04-01",
		OfficerID:  "MH-SA-042",
	})
	require.NoError(t, err)
	require.Empty(t, fields)
	require.NotNil(t, inserted)

	assert.Equal(t, inserted, release)
	assert.Equal(t, int64(7), release.DistrictID)
	assert.Equal(t, session.UserID(), release.CreatedBy)
	assert.True(t, strings.HasPrefix(release.RefNo, "FR-"))

	row := ReleaseRow(release)
	assert.Equal(t, "₹50,00,000", row.DisplayAmount)
	assert.Equal(t, "2026-04-01", row.Date)
}

func TestCreateReleaseBadAmountBlocksWrite(t *testing.T) {
	// Store funcs stay nil: any store access would panic the test.
	svc := NewService(&storetest.Stub{})

	for _, raw := range []string{"abc", "-2", "0"} {
		release, fields, err := svc.CreateRelease(context.Background(), stateAdminSession(), &dto.CreateReleaseRequest{
			District:   "Pune",
			Components: []string{"GIA"},
			Amount:     raw,
			Date:       "2026-04-01",
			OfficerID:  "MH-SA-042",
		})
		require.NoError(t, err)
		assert.Nil(t, release)
		require.Len(t, fields, 1, "amount %q", raw)
		assert.Equal(t, "amount", fields[0].Field)
	}
}

func TestCreateAllocationUnknownState(t *testing.T) {
	st := &storetest.Stub{
		GetStateByNameFunc: func(_ context.Context, name string) (*domain.State, error) {
			return nil, context.DeadlineExceeded
		},
	}
	svc := NewService(st)

	alloc, fields, err := svc.CreateAllocation(context.Background(), stateAdminSession(), &dto.CreateAllocationRequest{
		State:      "Atlantis",
		Components: []string{"Hostel"},
		Amount:     "1",
		Date:       "2026-04-01",
		OfficerID:  "MIN-001",
	})
	require.NoError(t, err)
	assert.Nil(t, alloc)
	require.Len(t, fields, 1)
	assert.Equal(t, "state", fields[0].Field)
}
