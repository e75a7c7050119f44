// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"eventpress/internal/cache"
	"eventpress/internal/compiler"
	"eventpress/internal/database"
	"eventpress/internal/models"
	"eventpress/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "eventpress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "eventpress")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "event:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB             *sql.DB
	Valkey         *redis.Client
	MediaStore     *store.MediaStore
	ComponentStore *store.ComponentStore
	ShellStore     *store.ShellStore
	EventStore     *store.EventStore
	Compiler       *compiler.Compiler
	PageCache      *cache.PageCache
	API            *API
	Public         *Public
}

// newTestEnv creates a complete test environment. Object storage is left
// nil, so media upload tests exercise the unconfigured path.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	mediaStore := store.NewMediaStore(db)
	componentStore := store.NewComponentStore(db)
	shellStore := store.NewShellStore(db)
	eventStore := store.NewEventStore(db)
	comp := compiler.New(mediaStore, componentStore, shellStore)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)

	api := NewAPI(mediaStore, componentStore, shellStore, eventStore, comp, nil, pageCache)
	public := NewPublic(eventStore, pageCache)

	return &testEnv{
		DB:             db,
		Valkey:         vk,
		MediaStore:     mediaStore,
		ComponentStore: componentStore,
		ShellStore:     shellStore,
		EventStore:     eventStore,
		Compiler:       comp,
		PageCache:      pageCache,
		API:            api,
		Public:         public,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// seedMedia inserts a media row directly and registers cleanup.
func seedMedia(t *testing.T, env *testEnv, key, url string) *models.Media {
	t.Helper()

	m, err := env.MediaStore.Create(&models.Media{
		Filename:     key,
		OriginalName: "test-upload.png",
		ContentType:  "image/png",
		SizeBytes:    1024,
		Bucket:       "eventpress-media",
		ObjectKey:    key,
		URL:          url,
	})
	if err != nil {
		t.Fatalf("seed media: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM media WHERE id = $1", m.ID)
	})
	return m
}

// seedComponent compiles and inserts a component, registering cleanup.
func seedComponent(t *testing.T, env *testEnv, name string, category models.ComponentCategory, raw string, vars map[string]uuid.UUID) *models.Component {
	t.Helper()

	compiled, err := env.Compiler.CompileComponent(raw, vars)
	if err != nil {
		t.Fatalf("compile seed component: %v", err)
	}
	c, err := env.ComponentStore.Create(&models.Component{
		Name:         name,
		Category:     category,
		RawTemplate:  raw,
		CompiledHTML: compiled,
	})
	if err != nil {
		t.Fatalf("seed component: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM components WHERE id = $1", c.ID)
	})
	return c
}

// seedShell builds header/footer/navigation components and a compiled
// shell around them, registering cleanup for all four rows.
func seedShell(t *testing.T, env *testEnv, name string) *models.Shell {
	t.Helper()

	header := seedComponent(t, env, name+" header", models.ComponentHeader, "<header>H</header>", nil)
	footer := seedComponent(t, env, name+" footer", models.ComponentFooter, "<footer>F</footer>", nil)
	nav := seedComponent(t, env, name+" nav", models.ComponentNavigation, "<nav>N</nav>", nil)

	layout := "{{header}}{{navigation}}<main>{{content}}</main>{{footer}}"
	compiled, err := env.Compiler.CompileShell(layout, header.ID, footer.ID, nav.ID)
	if err != nil {
		t.Fatalf("compile seed shell: %v", err)
	}
	sh, err := env.ShellStore.Create(&models.Shell{
		Name:         name,
		HeaderID:     header.ID,
		FooterID:     footer.ID,
		NavigationID: nav.ID,
		RawLayout:    layout,
		CompiledHTML: compiled,
	})
	if err != nil {
		t.Fatalf("seed shell: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM events WHERE shell_id = $1", sh.ID)
		env.DB.Exec("DELETE FROM shells WHERE id = $1", sh.ID)
	})
	return sh
}
