// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"eventpress/internal/models"
)

func TestShellCreate_ResolvesComponentsKeepsContentSlot(t *testing.T) {
	env := newTestEnv(t)

	header := seedComponent(t, env, "Shell test header", models.ComponentHeader, "<header>H</header>", nil)
	footer := seedComponent(t, env, "Shell test footer", models.ComponentFooter, "<footer>F</footer>", nil)
	nav := seedComponent(t, env, "Shell test nav", models.ComponentNavigation, "<nav>N</nav>", nil)

	body, _ := json.Marshal(map[string]any{
		"name":          "Shell test layout",
		"layout":        "{{header}}{{navigation}}<main>{{content}}</main>{{footer}}",
		"header_id":     header.ID,
		"footer_id":     footer.ID,
		"navigation_id": nav.ID,
	})
	rec := httptest.NewRecorder()
	env.API.ShellCreate(rec, postJSON("/api/shells", string(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created models.Shell
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM shells WHERE id = $1", created.ID)
	})

	want := "<header>H</header><nav>N</nav><main>{{content}}</main><footer>F</footer>"
	if created.CompiledHTML != want {
		t.Errorf("compiled = %q, want %q", created.CompiledHTML, want)
	}
	if !strings.Contains(created.CompiledHTML, "{{content}}") {
		t.Error("content slot must survive shell compilation")
	}
}

func TestShellCreate_MissingComponent_422PersistsNothing(t *testing.T) {
	env := newTestEnv(t)

	header := seedComponent(t, env, "Shell missing footer header", models.ComponentHeader, "<header>H</header>", nil)
	nav := seedComponent(t, env, "Shell missing footer nav", models.ComponentNavigation, "<nav>N</nav>", nil)

	before, err := env.ShellStore.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	body, _ := json.Marshal(map[string]any{
		"name":          "Shell with ghost footer",
		"layout":        "{{header}}{{navigation}}{{content}}{{footer}}",
		"header_id":     header.ID,
		"footer_id":     uuid.New(),
		"navigation_id": nav.ID,
	})
	rec := httptest.NewRecorder()
	env.API.ShellCreate(rec, postJSON("/api/shells", string(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	after, err := env.ShellStore.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if after != before {
		t.Errorf("shell count changed on failed compile: %d -> %d", before, after)
	}
}

func TestShellCreate_CategoryMismatch(t *testing.T) {
	env := newTestEnv(t)

	header := seedComponent(t, env, "Mismatch header", models.ComponentHeader, "<header>H</header>", nil)
	nav := seedComponent(t, env, "Mismatch nav", models.ComponentNavigation, "<nav>N</nav>", nil)

	// A header component passed in the footer slot must be rejected.
	body, _ := json.Marshal(map[string]any{
		"name":          "Mismatch shell",
		"layout":        "{{header}}{{navigation}}{{content}}{{footer}}",
		"header_id":     header.ID,
		"footer_id":     header.ID,
		"navigation_id": nav.ID,
	})
	rec := httptest.NewRecorder()
	env.API.ShellCreate(rec, postJSON("/api/shells", string(body)))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestShellCreate_MissingSlotIDs(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name":"Incomplete shell","layout":"{{content}}"}`
	rec := httptest.NewRecorder()
	env.API.ShellCreate(rec, postJSON("/api/shells", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
