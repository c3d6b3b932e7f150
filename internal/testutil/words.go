package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/fourword/internal/loader"
	"github.com/roach88/fourword/internal/store"
)

// WriteWordFile writes content to data.txt in a fresh temp dir and returns
// its path.
func WriteWordFile(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// LoadedStore opens a store in a temp dir, recreates the word tables and
// loads content as a word list. The store is closed when the test ends.
func LoadedStore(t testing.TB, content string) (*store.Store, loader.Result) {
	t.Helper()
	ctx := context.Background()

	s, err := store.Open(ctx, filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.ResetSchema(ctx))

	res, err := loader.New(s, nil).LoadFile(ctx, WriteWordFile(t, content))
	require.NoError(t, err)
	return s, res
}
