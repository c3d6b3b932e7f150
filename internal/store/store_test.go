package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file was not created")
	assert.Equal(t, path, s.Path())
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqlite", "words.db")

	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer s.Close()

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpen_PreservesUnmanagedTables(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s1.db.Exec(`CREATE TABLE notes (body TEXT)`)
	require.NoError(t, err)
	_, err = s1.db.Exec(`INSERT INTO notes (body) VALUES ('keep me')`)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Open and reset repeatedly
	for i := 0; i < 3; i++ {
		s, err := Open(ctx, path)
		require.NoError(t, err, "Open() iteration %d", i)
		require.NoError(t, s.ResetSchema(ctx))
		require.NoError(t, s.Close())
	}

	s, err := Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	var body string
	require.NoError(t, s.db.QueryRow(`SELECT body FROM notes`).Scan(&body))
	assert.Equal(t, "keep me", body)
}

func TestOpen_ConnectionError(t *testing.T) {
	// A regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	logs := &bytes.Buffer{}
	_, err := Open(context.Background(), filepath.Join(blocker, "sub", "test.db"), WithLogger(newTestLogger(logs)))
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeConnection), "got %v", err)
	assert.Contains(t, logs.String(), "level=ERROR")
}

func TestOpen_WithTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(context.Background(), path, WithOpenTimeout(2*time.Second))
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestOpen_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.ResetSchema(ctx))
	require.NoError(t, s.InsertWord(ctx, 1, "plan"))
	assert.True(t, s.IsMember(ctx, "plan"))
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Close())
}

func TestResetSchema_CreatesTables(t *testing.T) {
	s := createTestStore(t)

	for _, table := range []string{"wordlist", "validWords"} {
		rows, err := s.db.Query(`SELECT name, type, pk, "notnull" FROM pragma_table_info(?) ORDER BY cid`, table)
		require.NoError(t, err)

		type column struct {
			name    string
			typ     string
			pk      int
			notNull int
		}
		var got []column
		for rows.Next() {
			var c column
			require.NoError(t, rows.Scan(&c.name, &c.typ, &c.pk, &c.notNull))
			// declared types come back in the driver's case
			c.typ = strings.ToLower(c.typ)
			got = append(got, c)
		}
		require.NoError(t, rows.Err())
		rows.Close()

		want := []column{
			{name: "id", typ: "integer", pk: 1, notNull: 0},
			{name: "word", typ: "text", pk: 0, notNull: 1},
		}
		assert.Equal(t, want, got, "table %s", table)
	}
}

func TestResetSchema_StoresExactDDL(t *testing.T) {
	s := createTestStore(t)

	for _, table := range []string{"wordlist", "validWords"} {
		var ddl string
		err := s.db.QueryRow(`SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&ddl)
		require.NoError(t, err)

		want := "CREATE TABLE " + table + " (\n id integer PRIMARY KEY,\n word text NOT NULL\n)"
		assert.Equal(t, want, ddl)
	}
}

func TestResetSchema_ErasesWords(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	require.NoError(t, s.InsertWord(ctx, 1, "plan"))
	require.True(t, s.IsMember(ctx, "plan"))

	require.NoError(t, s.ResetSchema(ctx))

	assert.False(t, s.IsMember(ctx, "plan"))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestResetSchema_EmptyTableIsNeverMember(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	for _, word := range []string{"plan", "", "x", "TREE", "' OR 1=1 --"} {
		assert.False(t, s.IsMember(ctx, word), "word %q", word)
	}
}

func TestResetSchema_SchemaError(t *testing.T) {
	logs := &bytes.Buffer{}
	s := openTestStore(t, logs)
	require.NoError(t, s.db.Close())

	err := s.ResetSchema(context.Background())
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeSchema), "got %v", err)
	assert.Contains(t, logs.String(), "level=ERROR")
}

func TestSchemaStatements(t *testing.T) {
	stmts := schemaStatements()
	require.Len(t, stmts, 4)
	assert.Equal(t, "DROP TABLE IF EXISTS wordlist", stmts[0])
	assert.Equal(t, "CREATE TABLE wordlist", firstLine(stmts[1]))
	assert.Equal(t, "DROP TABLE IF EXISTS validWords", stmts[2])
	assert.Equal(t, "CREATE TABLE validWords", firstLine(stmts[3]))
}
