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

// ShellStore handles all shell-related database operations.
type ShellStore struct {
	db *sql.DB
}

// NewShellStore creates a new ShellStore with the given database connection.
func NewShellStore(db *sql.DB) *ShellStore {
	return &ShellStore{db: db}
}

// shellColumns lists the columns selected in shell queries.
const shellColumns = `id, name, header_id, footer_id, navigation_id,
	raw_layout, compiled_html, created_at`

// scanShell scans a shell row from the result set.
func scanShell(scanner interface{ Scan(...any) error }) (*models.Shell, error) {
	var sh models.Shell
	err := scanner.Scan(
		&sh.ID, &sh.Name, &sh.HeaderID, &sh.FooterID, &sh.NavigationID,
		&sh.RawLayout, &sh.CompiledHTML, &sh.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

// Create inserts a new shell and returns it with the generated ID. The
// component references are plain foreign keys, never embedded copies.
func (s *ShellStore) Create(sh *models.Shell) (*models.Shell, error) {
	row := s.db.QueryRow(`
		INSERT INTO shells (name, header_id, footer_id, navigation_id, raw_layout, compiled_html)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+shellColumns,
		sh.Name, sh.HeaderID, sh.FooterID, sh.NavigationID, sh.RawLayout, sh.CompiledHTML,
	)
	created, err := scanShell(row)
	if err != nil {
		return nil, fmt.Errorf("create shell: %w", err)
	}
	return created, nil
}

// FindByID retrieves a shell by its UUID. Returns nil if not found.
func (s *ShellStore) FindByID(id uuid.UUID) (*models.Shell, error) {
	row := s.db.QueryRow(`SELECT `+shellColumns+` FROM shells WHERE id = $1`, id)
	sh, err := scanShell(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find shell by id: %w", err)
	}
	return sh, nil
}

// List returns all shells ordered by name.
func (s *ShellStore) List() ([]models.Shell, error) {
	rows, err := s.db.Query(`
		SELECT ` + shellColumns + `
		FROM shells
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list shells: %w", err)
	}
	defer rows.Close()

	var items []models.Shell
	for rows.Next() {
		sh, err := scanShell(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shell: %w", err)
		}
		items = append(items, *sh)
	}
	return items, rows.Err()
}

// Count returns the total number of shells.
func (s *ShellStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM shells`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count shells: %w", err)
	}
	return count, nil
}
