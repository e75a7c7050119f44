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

// componentRequest is the JSON payload for creating a component.
// Variables maps placeholder names in the template to media IDs.
type componentRequest struct {
	Name      string               `json:"name"`
	Category  string               `json:"category"`
	Template  string               `json:"template"`
	Variables map[string]uuid.UUID `json:"variables"`
}

// ComponentCreate compiles a component template against its media
// variables and persists the result. The compile either fully succeeds
// and inserts one immutable row, or fails and persists nothing.
func (a *API) ComponentCreate(w http.ResponseWriter, r *http.Request) {
	var req componentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid JSON body.", http.StatusBadRequest)
		return
	}

	if msg := validateName(req.Name); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}
	category := models.ComponentCategory(req.Category)
	if !category.Valid() {
		writeError(w, "Category must be header, footer, or navigation.", http.StatusBadRequest)
		return
	}
	if msg := validateTemplateText(req.Template); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}
	if len(req.Variables) > maxVariables {
		writeError(w, "Too many variables (max 100).", http.StatusBadRequest)
		return
	}

	compiled, err := a.compiler.CompileComponent(req.Template, req.Variables)
	if err != nil {
		writeCompileError(w, err)
		return
	}

	created, err := a.componentStore.Create(&models.Component{
		Name:         req.Name,
		Category:     category,
		RawTemplate:  req.Template,
		CompiledHTML: compiled,
	})
	if err != nil {
		slog.Error("component insert failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ComponentList returns all components, optionally filtered by category.
func (a *API) ComponentList(w http.ResponseWriter, r *http.Request) {
	var (
		items []models.Component
		err   error
	)
	if cat := r.URL.Query().Get("category"); cat != "" {
		category := models.ComponentCategory(cat)
		if !category.Valid() {
			writeError(w, "Unknown category.", http.StatusBadRequest)
			return
		}
		items, err = a.componentStore.ListByCategory(category)
	} else {
		items, err = a.componentStore.List()
	}
	if err != nil {
		slog.Error("list components failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// ComponentGet returns a single component by ID.
func (a *API) ComponentGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "Invalid ID.", http.StatusBadRequest)
		return
	}

	component, err := a.componentStore.FindByID(id)
	if err != nil {
		slog.Error("component lookup failed", "error", err)
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if component == nil {
		writeError(w, "Not Found.", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, component)
}
