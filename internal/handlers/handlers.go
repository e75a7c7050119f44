// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the EventPress service.
// Handlers are grouped by concern (API, public) and receive their
// dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventpress/internal/cache"
	"eventpress/internal/compiler"
	"eventpress/internal/storage"
	"eventpress/internal/store"
)

// API groups the compile-and-persist endpoints for media, components,
// shells, and events. Every write is one row insert; entities are never
// updated or deleted after creation.
type API struct {
	mediaStore     *store.MediaStore
	componentStore *store.ComponentStore
	shellStore     *store.ShellStore
	eventStore     *store.EventStore
	compiler       *compiler.Compiler
	storageClient  *storage.Client // nil when S3 is not configured
	pageCache      *cache.PageCache
}

// NewAPI creates a new API handler group with the given dependencies.
// storageClient may be nil if S3 is not configured; uploads then return 503.
func NewAPI(mediaStore *store.MediaStore, componentStore *store.ComponentStore, shellStore *store.ShellStore, eventStore *store.EventStore, comp *compiler.Compiler, storageClient *storage.Client, pageCache *cache.PageCache) *API {
	return &API{
		mediaStore:     mediaStore,
		componentStore: componentStore,
		shellStore:     shellStore,
		eventStore:     eventStore,
		compiler:       comp,
		storageClient:  storageClient,
		pageCache:      pageCache,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeCompileError maps a compile failure onto the HTTP error taxonomy:
// reference errors are client input errors (422), anything else is a
// server-side failure (500).
func writeCompileError(w http.ResponseWriter, err error) {
	var refErr *compiler.ReferenceError
	if errors.As(err, &refErr) {
		writeError(w, refErr.Error(), http.StatusUnprocessableEntity)
		return
	}
	slog.Error("compile failed", "error", err)
	writeError(w, "Internal Server Error", http.StatusInternalServerError)
}

// decodeJSON parses a JSON request body into dst. Unknown fields are
// rejected so malformed payloads fail before any substitution runs.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// parsePagination reads limit/offset query parameters with defaults.
func parsePagination(r *http.Request) (limit, offset int) {
	limit, offset = 50, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 200 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
