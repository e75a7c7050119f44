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

// ComponentStore handles all component-related database operations.
type ComponentStore struct {
	db *sql.DB
}

// NewComponentStore creates a new ComponentStore with the given database connection.
func NewComponentStore(db *sql.DB) *ComponentStore {
	return &ComponentStore{db: db}
}

// componentColumns lists the columns selected in component queries.
const componentColumns = `id, name, category, raw_template, compiled_html, created_at`

// scanComponent scans a component row from the result set.
func scanComponent(scanner interface{ Scan(...any) error }) (*models.Component, error) {
	var c models.Component
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Category, &c.RawTemplate, &c.CompiledHTML, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new component and returns it with the generated ID.
// Components carry their compiled text from creation; there is no update.
func (s *ComponentStore) Create(c *models.Component) (*models.Component, error) {
	row := s.db.QueryRow(`
		INSERT INTO components (name, category, raw_template, compiled_html)
		VALUES ($1, $2, $3, $4)
		RETURNING `+componentColumns,
		c.Name, c.Category, c.RawTemplate, c.CompiledHTML,
	)
	created, err := scanComponent(row)
	if err != nil {
		return nil, fmt.Errorf("create component: %w", err)
	}
	return created, nil
}

// FindByID retrieves a component by its UUID. Returns nil if not found.
func (s *ComponentStore) FindByID(id uuid.UUID) (*models.Component, error) {
	row := s.db.QueryRow(`SELECT `+componentColumns+` FROM components WHERE id = $1`, id)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find component by id: %w", err)
	}
	return c, nil
}

// List returns all components ordered by category and name.
func (s *ComponentStore) List() ([]models.Component, error) {
	rows, err := s.db.Query(`
		SELECT ` + componentColumns + `
		FROM components
		ORDER BY category, name
	`)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()

	var items []models.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListByCategory returns components of one category ordered by name.
func (s *ComponentStore) ListByCategory(category models.ComponentCategory) ([]models.Component, error) {
	rows, err := s.db.Query(`
		SELECT `+componentColumns+`
		FROM components
		WHERE category = $1
		ORDER BY name
	`, category)
	if err != nil {
		return nil, fmt.Errorf("list components by category: %w", err)
	}
	defer rows.Close()

	var items []models.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Count returns the total number of components.
func (s *ComponentStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM components`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count components: %w", err)
	}
	return count, nil
}
