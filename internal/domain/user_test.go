package domain

import (
	"testing"

	"github.com/pmajay/portal/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	var p UserPassword
	require.NoError(t, p.Init("s3cret"))
	require.NotEmpty(t, p.Hash)
	require.NotEmpty(t, p.Salt)

	assert.NoError(t, p.Validate("s3cret"))
	assert.ErrorIs(t, p.Validate("wrong"), constants.ErrInvalidCredentials)
}

func TestUserPasswordSaltsDiffer(t *testing.T) {
	var a, b UserPassword
	require.NoError(t, a.Init("same"))
	require.NoError(t, b.Init("same"))

	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Hash, b.Hash)
}
