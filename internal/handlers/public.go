// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eventpress/internal/cache"
	"eventpress/internal/store"
)

// Public groups handlers for the public-facing site. Compiled event HTML
// is served as-is from the database, with a Valkey full-page cache in
// front. Since compiled pages are immutable, cache entries never go stale.
type Public struct {
	eventStore *store.EventStore
	pageCache  *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(eventStore *store.EventStore, pageCache *cache.PageCache) *Public {
	return &Public{eventStore: eventStore, pageCache: pageCache}
}

// homeSlug is the event slug served at the site root.
const homeSlug = "welcome"

// Homepage serves the welcome event, or a plain placeholder when no
// welcome event exists yet.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	if p.serveBySlug(w, r, homeSlug) {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(`<!DOCTYPE html>
<html><head><title>EventPress</title></head>
<body>
<h1>EventPress</h1>
<p>Your site is running. Create components, shells, and events through the API.</p>
</body></html>`))
}

// Event serves a compiled event page by its slug.
func (p *Public) Event(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	if !p.serveBySlug(w, r, slugParam) {
		http.NotFound(w, r)
	}
}

// serveBySlug writes the compiled HTML for an event slug, consulting the
// page cache first. Returns false when the event does not exist.
func (p *Public) serveBySlug(w http.ResponseWriter, r *http.Request, slugParam string) bool {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, slugParam); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return true
	}

	event, err := p.eventStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find event by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return true
	}
	if event == nil {
		return false
	}

	html := []byte(event.CompiledHTML)
	p.pageCache.Set(ctx, slugParam, html)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
	return true
}
