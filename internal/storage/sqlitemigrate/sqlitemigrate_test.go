package sqlitemigrate

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func count(t *testing.T, db *sql.DB, query string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query).Scan(&n))
	return n
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	return count(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = '"+name+"'") == 1
}

func TestApplyRecordsMigrations(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{
		"0002_notes.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nALTER TABLE items ADD COLUMN notes TEXT;")},
		"0001_items.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
		"README.md":      &fstest.MapFile{Data: []byte("not a migration")},
	}

	require.NoError(t, Apply(context.Background(), db, migrations, ""))

	assert.Equal(t, 2, count(t, db, "SELECT COUNT(*) FROM schema_migrations"))
	assert.True(t, tableExists(t, db, "items"))
	assert.Equal(t, 1, count(t, db, "SELECT COUNT(*) FROM pragma_table_info('items') WHERE name = 'notes'"))
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{
		"0001_items.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);")},
	}

	require.NoError(t, Apply(context.Background(), db, migrations, "."))
	require.NoError(t, Apply(context.Background(), db, migrations, "."))

	assert.Equal(t, 1, count(t, db, "SELECT COUNT(*) FROM schema_migrations"))
}

func TestApplyDoesNotRecordFailedMigration(t *testing.T) {
	db := openInMemoryDB(t)
	bad := fstest.MapFS{
		"0001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREAT TABLE things(id INT);")},
	}

	require.Error(t, Apply(context.Background(), db, bad, ""))
	assert.Equal(t, 0, count(t, db, "SELECT COUNT(*) FROM schema_migrations"))

	good := fstest.MapFS{
		"0001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE things(id INT);")},
	}
	require.NoError(t, Apply(context.Background(), db, good, ""))
	assert.True(t, tableExists(t, db, "things"))
}

func TestApplyNestedRoot(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{
		"sql/0001_items.sql": &fstest.MapFile{Data: []byte("CREATE TABLE items(id TEXT PRIMARY KEY);")},
	}

	require.NoError(t, Apply(context.Background(), db, migrations, "sql"))

	var name string
	require.NoError(t, db.QueryRow("SELECT name FROM schema_migrations").Scan(&name))
	assert.Equal(t, "sql/0001_items.sql", name)
}

func TestApplyRequiresDB(t *testing.T) {
	assert.Error(t, Apply(context.Background(), nil, fstest.MapFS{}, ""))
}

func TestExtractUp(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected string
	}{
		{"no markers", "CREATE TABLE a(id INT);", "CREATE TABLE a(id INT);"},
		{"up only", "-- +migrate Up\nCREATE TABLE a(id INT);", "\nCREATE TABLE a(id INT);"},
		{"up and down", "-- +migrate Up\nCREATE TABLE a(id INT);\n-- +migrate Down\nDROP TABLE a;", "\nCREATE TABLE a(id INT);\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractUp(tc.content))
		})
	}
}

func TestIsAlreadyExists(t *testing.T) {
	assert.False(t, IsAlreadyExists(nil))
}
