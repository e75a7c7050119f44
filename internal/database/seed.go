package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"eventpress/internal/compiler"
)

// Seed populates an empty database with a starter component set, a shell
// composed from them, and a welcome event, so a fresh development install
// serves a page immediately. It is a no-op when components already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM components").Scan(&count); err != nil {
		return fmt.Errorf("seed check components: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Starter components reference no media, so raw and compiled text match.
	seedComponents := []struct {
		name, category, raw string
	}{
		{"Starter Header", "header", `<header><h1>EventPress</h1></header>`},
		{"Starter Footer", "footer", `<footer><p>Powered by EventPress</p></footer>`},
		{"Starter Navigation", "navigation", `<nav><a href="/">Home</a></nav>`},
	}

	compiled := make(map[string]string, len(seedComponents))
	ids := make(map[string]string, len(seedComponents))
	for _, c := range seedComponents {
		html := compiler.Render(c.raw, nil)
		var id string
		err := db.QueryRow(`
			INSERT INTO components (name, category, raw_template, compiled_html)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, c.name, c.category, c.raw, html).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert component %q: %w", c.name, err)
		}
		compiled[c.category] = html
		ids[c.category] = id
	}

	rawLayout := `<!DOCTYPE html><html><body>{{navigation}}{{header}}<main>{{content}}</main>{{footer}}</body></html>`
	shellHTML := compiler.Render(rawLayout, map[string]string{
		"header":     compiled["header"],
		"footer":     compiled["footer"],
		"navigation": compiled["navigation"],
	})

	var shellID string
	err := db.QueryRow(`
		INSERT INTO shells (name, header_id, footer_id, navigation_id, raw_layout, compiled_html)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, "Starter Shell", ids["header"], ids["footer"], ids["navigation"], rawLayout, shellHTML).Scan(&shellID)
	if err != nil {
		return fmt.Errorf("seed insert shell: %w", err)
	}

	content := `<p>Your EventPress install is running. Create components, shells, and events through the API.</p>`
	eventHTML := compiler.Render(shellHTML, map[string]string{"content": content})

	_, err = db.Exec(`
		INSERT INTO events (name, slug, shell_id, content, content_format, compiled_html)
		VALUES ($1, $2, $3, $4, 'html', $5)
	`, "Welcome", "welcome", shellID, content, eventHTML)
	if err != nil {
		return fmt.Errorf("seed insert event: %w", err)
	}

	slog.Info("database seeded with starter components, shell, and welcome event")
	return nil
}
