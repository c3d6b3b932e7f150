package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fourword/internal/loader"
)

func TestWriteWordFile(t *testing.T) {
	path := WriteWordFile(t, "plan\nfrog\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "plan\nfrog\n", string(data))
}

func TestLoadedStore(t *testing.T) {
	s, res := LoadedStore(t, "plan\ngo\nfrog\n")
	assert.Equal(t, loader.Result{Loaded: 2, Rejected: 1}, res)

	ctx := context.Background()
	assert.True(t, s.IsMember(ctx, "plan"))
	assert.True(t, s.IsMember(ctx, "frog"))
	assert.False(t, s.IsMember(ctx, "go"))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
