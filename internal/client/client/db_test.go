package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	if err != nil {
		t.Fatalf("tableExists query failed: %v", err)
	}
	return n > 0
}

func TestInitDatabase_CreatesMetadataTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "slayer.db")

	db, err := InitDatabase(ctx, dsn)
	if err != nil {
		t.Fatalf("InitDatabase error: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("db.PingContext failed: %v", err)
	}

	if !tableExists(t, db, "goose_db_version") {
		t.Fatalf("expected goose_db_version table to exist after migrations")
	}
	if !tableExists(t, db, "metadata") {
		t.Fatalf("expected metadata table to exist after migrations")
	}
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "slayer.db")

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	defer db.Close()

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (first) error: %v", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (second) should be idempotent, got error: %v", err)
	}

	if !tableExists(t, db, "metadata") {
		t.Fatalf("expected metadata table to exist after repeated migrations")
	}
}

func TestInitDatabase_MetadataUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "slayer.db")

	db, err := InitDatabase(ctx, dsn)
	if err != nil {
		t.Fatalf("InitDatabase error: %v", err)
	}
	defer db.Close()

	for _, v := range []string{"first", "second"} {
		_, err = db.ExecContext(ctx, `
			INSERT INTO metadata (key, value) VALUES ('k', ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, []byte(v))
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	var got []byte
	if err := db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = 'k'`).Scan(&got); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("unexpected value: %q", got)
	}
}
