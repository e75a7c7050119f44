// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"eventpress/internal/markdown"
	"eventpress/internal/models"
	"eventpress/internal/slug"
)

// eventRequest is the JSON payload for creating an event.
// ContentFormat defaults to "html"; "markdown" content is converted to
// HTML before the shell's content slot is filled.
type eventRequest struct {
	Name          string    `json:"name"`
	ShellID       uuid.UUID `json:"shell_id"`
	Content       string    `json:"content"`
	ContentFormat string    `json:"content_format"`
}

// EventCreate fills a shell's content slot with literal content and
// persists the final page. The compiled HTML is terminal: later changes
// to the shell or its components never propagate back to this event.
func (a *API) EventCreate(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}

	if msg := validateName(req.Name); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}
	if req.ShellID == uuid.Nil {
		writeError(w, "shell_id is required.", http.StatusBadRequest)
		return
	}
	if msg := validateContent(req.Content); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}
	if req.ContentFormat == "" {
		req.ContentFormat = string(models.ContentFormatHTML)
	}
	format := models.ContentFormat(req.ContentFormat)
	if !format.Valid() {
		writeError(w, "content_format must be html or markdown.", http.StatusBadRequest)
		return
	}

	// Markdown content is converted up front; the resulting HTML is still
	// injected literally by the compiler, never re-scanned for tokens.
	body := req.Content
	if format == models.ContentFormatMarkdown {
		converted, err := markdown.ToHTML(req.Content)
		if err != nil {
			writeError(w, "Invalid Markdown content.", http.StatusBadRequest)
			return
		}
		body = converted
	}

	compiled, err := a.compiler.CompileEvent(req.ShellID, body)
	if err != nil {
		writeCompileError(w, err)
		return
	}

	eventSlug, err := a.uniqueSlug(req.Name)
	if err != nil {
		slog.Error("slug generation failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	created, err := a.eventStore.Create(&models.Event{
		Name:          req.Name,
		Slug:          eventSlug,
		ShellID:       req.ShellID,
		Content:       req.Content,
		ContentFormat: format,
		CompiledHTML:  compiled,
	})
	if err != nil {
		slog.Error("event insert failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// uniqueSlug derives a slug from the event name, appending a short
// suffix when the slug is already taken.
func (a *API) uniqueSlug(name string) (string, error) {
	base := slug.Generate(name)
	if base == "" {
		base = "event"
	}

	taken, err := a.eventStore.SlugExists(base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return base + "-" + uuid.New().String()[:8], nil
}

// EventList returns events with pagination, newest first.
func (a *API) EventList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	items, err := a.eventStore.List(limit, offset)
	if err != nil {
		slog.Error("list events failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// EventGet returns a single event by ID.
func (a *API) EventGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "Invalid ID.", http.StatusBadRequest)
		return
	}

	event, err := a.eventStore.FindByID(id)
	if err != nil {
		slog.Error("event lookup failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if event == nil {
		writeError(w, "Not Found.", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, event)
}
