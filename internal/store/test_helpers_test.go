package store

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestStore opens a store in a temp dir with the word tables in place.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s := openTestStore(t, nil)
	require.NoError(t, s.ResetSchema(context.Background()))
	return s
}

// openTestStore opens a store without preparing the schema.
// Store events are written to logs when it is non-nil.
func openTestStore(t *testing.T, logs *bytes.Buffer) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	var opts []Option
	if logs != nil {
		opts = append(opts, WithLogger(slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	s, err := Open(context.Background(), path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}
