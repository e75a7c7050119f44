// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// EventPress service. It organizes routes into the compile API and the
// public site with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"eventpress/internal/handlers"
	"eventpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Compile-and-persist API. Writes are rate-limited per client IP.
	r.Route("/api", func(r chi.Router) {
		limiter := middleware.NewRateLimiter(60, time.Minute)
		r.Use(limiter.Middleware)

		r.Route("/media", func(r chi.Router) {
			r.Get("/", api.MediaList)
			r.Post("/", api.MediaUpload)
			r.Get("/{id}", api.MediaGet)
		})

		r.Route("/components", func(r chi.Router) {
			r.Get("/", api.ComponentList)
			r.Post("/", api.ComponentCreate)
			r.Get("/{id}", api.ComponentGet)
		})

		r.Route("/shells", func(r chi.Router) {
			r.Get("/", api.ShellList)
			r.Post("/", api.ShellCreate)
			r.Get("/{id}", api.ShellGet)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", api.EventList)
			r.Post("/", api.EventCreate)
			r.Get("/{id}", api.EventGet)
		})
	})

	// Public routes — compiled event pages served by slug.
	r.Get("/", public.Homepage)
	r.Get("/{slug}", public.Event)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
