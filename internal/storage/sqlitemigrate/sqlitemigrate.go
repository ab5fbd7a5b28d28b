// Package sqlitemigrate applies embedded SQL migrations to a SQLite database
package sqlitemigrate

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	migrationTable = "schema_migrations"

	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

// Apply executes every *.sql file under root in name order, at most once per
// file. Each file runs in its own transaction and is recorded in
// schema_migrations only when it commits.
func Apply(ctx context.Context, db *sql.DB, migrationFS fs.FS, root string) error {
	if db == nil {
		return errors.InvalidArgument("sql db is required")
	}
	if migrationFS == nil {
		return errors.InvalidArgument("migration fs is required")
	}

	root = strings.TrimSpace(root)
	if root == "" {
		root = "."
	}

	files, err := listMigrations(migrationFS, root)
	if err != nil {
		return err
	}

	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`, migrationTable)
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		return errors.Wrap(err, "failed to ensure migration table")
	}

	for _, name := range files {
		key := name
		if root != "." {
			key = path.Join(root, name)
		}

		applied, err := isApplied(ctx, db, key)
		if err != nil {
			return errors.Wrapf(err, "failed to check migration %s", key)
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(migrationFS, path.Join(root, name))
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", key)
		}

		if err := applyOne(ctx, db, key, ExtractUp(string(content))); err != nil {
			return err
		}
		slog.DebugContext(ctx, "applied migration", "name", key)
	}

	return nil
}

func listMigrations(migrationFS fs.FS, root string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read migrations dir")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func applyOne(ctx context.Context, db *sql.DB, key, upSQL string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to begin migration %s", key)
	}

	if strings.TrimSpace(upSQL) != "" {
		if _, err := tx.ExecContext(ctx, upSQL); err != nil && !IsAlreadyExists(err) {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to exec migration %s", key)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		key, time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return errors.Wrapf(err, "failed to record migration %s", key)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "failed to commit migration %s", key)
	}
	return nil
}

// ExtractUp returns the SQL in the "-- +migrate Up" section. Files without
// markers are returned whole.
func ExtractUp(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	body := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(body, downMarker); downIdx != -1 {
		body = body[:downIdx]
	}
	return body
}

// IsAlreadyExists reports whether err is DDL that already took effect
func IsAlreadyExists(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}

func isApplied(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var found int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
	if stderrors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
