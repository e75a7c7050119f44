// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"eventpress/internal/models"
)

// shellRequest is the JSON payload for creating a shell.
type shellRequest struct {
	Name         string    `json:"name"`
	Layout       string    `json:"layout"`
	HeaderID     uuid.UUID `json:"header_id"`
	FooterID     uuid.UUID `json:"footer_id"`
	NavigationID uuid.UUID `json:"navigation_id"`
}

// ShellCreate compiles a layout against its three referenced components
// and persists the result. The compiled text resolves header, footer, and
// navigation while {{content}} stays verbatim for the event stage.
func (a *API) ShellCreate(w http.ResponseWriter, r *http.Request) {
	var req shellRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}

	if msg := validateName(req.Name); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}
	if msg := validateTemplateText(req.Layout); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}
	if req.HeaderID == uuid.Nil || req.FooterID == uuid.Nil || req.NavigationID == uuid.Nil {
		writeError(w, "header_id, footer_id, and navigation_id are required.", http.StatusBadRequest)
		return
	}

	compiled, err := a.compiler.CompileShell(req.Layout, req.HeaderID, req.FooterID, req.NavigationID)
	if err != nil {
		writeCompileError(w, err)
		return
	}

	created, err := a.shellStore.Create(&models.Shell{
		Name:         req.Name,
		HeaderID:     req.HeaderID,
		FooterID:     req.FooterID,
		NavigationID: req.NavigationID,
		RawLayout:    req.Layout,
		CompiledHTML: compiled,
	})
	if err != nil {
		slog.Error("shell insert failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ShellList returns all shells.
func (a *API) ShellList(w http.ResponseWriter, r *http.Request) {
	items, err := a.shellStore.List()
	if err != nil {
		slog.Error("list shells failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// ShellGet returns a single shell by ID.
func (a *API) ShellGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "Invalid ID.", http.StatusBadRequest)
		return
	}

	shell, err := a.shellStore.FindByID(id)
	if err != nil {
		slog.Error("shell lookup failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if shell == nil {
		writeError(w, "Not Found.", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, shell)
}
