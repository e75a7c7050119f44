// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"eventpress/internal/models"
)

// EventStore handles all event-related database operations.
type EventStore struct {
	db *sql.DB
}

// NewEventStore creates a new EventStore with the given database connection.
func NewEventStore(db *sql.DB) *EventStore {
	return &EventStore{db: db}
}

// eventColumns lists the columns selected in event queries.
const eventColumns = `id, name, slug, shell_id, content, content_format,
	compiled_html, created_at`

// scanEvent scans an event row from the result set.
func scanEvent(scanner interface{ Scan(...any) error }) (*models.Event, error) {
	var e models.Event
	err := scanner.Scan(
		&e.ID, &e.Name, &e.Slug, &e.ShellID, &e.Content, &e.ContentFormat,
		&e.CompiledHTML, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new event and returns it with the generated ID.
func (s *EventStore) Create(e *models.Event) (*models.Event, error) {
	row := s.db.QueryRow(`
		INSERT INTO events (name, slug, shell_id, content, content_format, compiled_html)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+eventColumns,
		e.Name, e.Slug, e.ShellID, e.Content, e.ContentFormat, e.CompiledHTML,
	)
	created, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return created, nil
}

// FindByID retrieves an event by its UUID. Returns nil if not found.
func (s *EventStore) FindByID(id uuid.UUID) (*models.Event, error) {
	row := s.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find event by id: %w", err)
	}
	return e, nil
}

// FindBySlug retrieves an event by its public slug. Returns nil if not found.
func (s *EventStore) FindBySlug(slug string) (*models.Event, error) {
	row := s.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE slug = $1`, slug)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find event by slug: %w", err)
	}
	return e, nil
}

// SlugExists reports whether an event already uses the given slug.
func (s *EventStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM events WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check event slug: %w", err)
	}
	return exists, nil
}

// List returns events ordered by creation date, newest first.
func (s *EventStore) List(limit, offset int) ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT `+eventColumns+`
		FROM events
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var items []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

// Count returns the total number of events.
func (s *EventStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
