package panel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLive(t *testing.T) {
	result := Load(context.Background(), "funds", func(context.Context) ([]string, error) {
		return []string{"FA-1"}, nil
	}, nil)

	assert.True(t, result.Live())
	assert.Equal(t, SourceLive, result.Source)
	assert.Equal(t, []string{"FA-1"}, result.Data)
	assert.NoError(t, result.Err)
}

func TestLoadRetriesThenFallsBack(t *testing.T) {
	fetchErr := errors.New("upstream down")
	calls := 0

	fallback := []string{"bundled"}
	result := Load(context.Background(), "map", func(context.Context) ([]string, error) {
		calls++
		return nil, fetchErr
	}, fallback)

	// One initial try plus the bounded retries.
	assert.Equal(t, maxRetries+1, calls)

	assert.False(t, result.Live())
	assert.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, fallback, result.Data)
	assert.ErrorIs(t, result.Err, fetchErr)
}

func TestLoadRecoversMidway(t *testing.T) {
	calls := 0
	result := Load(context.Background(), "stats", func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("transient")
		}
		return 42, nil
	}, -1)

	require.True(t, result.Live())
	assert.Equal(t, 42, result.Data)
	assert.Equal(t, 2, calls)
}

func TestLoadHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := Load(ctx, "funds", func(context.Context) (string, error) {
		return "", errors.New("never retried")
	}, "bundled")

	assert.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, "bundled", result.Data)
}
