// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"eventpress/internal/database"
	"eventpress/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "eventpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "eventpress")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := testDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	// Run migrations to ensure the schema is current.
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanMediaByKey removes test media by object key. Call in t.Cleanup().
func cleanMediaByKey(t *testing.T, db *sql.DB, keys ...string) {
	t.Helper()
	for _, key := range keys {
		db.Exec("DELETE FROM media WHERE object_key = $1", key)
	}
}

// cleanComponents removes test components by name. Call in t.Cleanup().
func cleanComponents(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM components WHERE name = $1", name)
	}
}

// cleanShells removes test shells by name. Call in t.Cleanup().
func cleanShells(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM shells WHERE name = $1", name)
	}
}

// cleanEvents removes test events by slug. Call in t.Cleanup().
func cleanEvents(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM events WHERE slug = $1", slug)
	}
}

// createTestComponent inserts a component for use by shell and event tests.
func createTestComponent(t *testing.T, db *sql.DB, name string, cat models.ComponentCategory, html string) uuid.UUID {
	t.Helper()
	created, err := NewComponentStore(db).Create(&models.Component{
		Name:         name,
		Category:     cat,
		RawTemplate:  html,
		CompiledHTML: html,
	})
	if err != nil {
		t.Fatalf("create test component: %v", err)
	}
	t.Cleanup(func() { cleanComponents(t, db, name) })
	return created.ID
}
