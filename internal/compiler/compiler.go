// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compiler

import (
	"fmt"

	"github.com/google/uuid"

	"eventpress/internal/models"
)

// MediaSource resolves media IDs to persisted records. Satisfied by
// store.MediaStore; tests use in-memory fakes.
type MediaSource interface {
	FindByID(id uuid.UUID) (*models.Media, error)
}

// ComponentSource resolves component IDs to persisted records.
type ComponentSource interface {
	FindByID(id uuid.UUID) (*models.Component, error)
}

// ShellSource resolves shell IDs to persisted records.
type ShellSource interface {
	FindByID(id uuid.UUID) (*models.Shell, error)
}

// ReferenceError reports a compile input that names an entity that does
// not exist, or a component used in the wrong layout slot. It is a client
// input error: the compile aborts and nothing is persisted.
type ReferenceError struct {
	Kind string // "media", "component", "shell"
	ID   uuid.UUID
	Slot string // layout slot or placeholder name, when relevant
}

func (e *ReferenceError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("%s %s not usable for %q", e.Kind, e.ID, e.Slot)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// Compiler runs the three compile stages against injected repositories.
// It holds no mutable state; stages are independent and safe to run
// concurrently.
type Compiler struct {
	media      MediaSource
	components ComponentSource
	shells     ShellSource
}

// New creates a Compiler backed by the given repositories.
func New(media MediaSource, components ComponentSource, shells ShellSource) *Compiler {
	return &Compiler{media: media, components: components, shells: shells}
}

// CompileComponent resolves each placeholder-to-media mapping to that
// media's URL and renders the raw template once. A mapping that names a
// missing media ID yields a ReferenceError. Placeholders outside the
// mapping are left untouched.
func (c *Compiler) CompileComponent(raw string, vars map[string]uuid.UUID) (string, error) {
	ctx := make(map[string]string, len(vars))
	for name, id := range vars {
		m, err := c.media.FindByID(id)
		if err != nil {
			return "", fmt.Errorf("resolve media for %q: %w", name, err)
		}
		if m == nil {
			return "", &ReferenceError{Kind: "media", ID: id, Slot: name}
		}
		ctx[name] = m.URL
	}
	return Render(raw, ctx), nil
}

// CompileShell resolves the three slot components and renders the raw
// layout once, mapping header, footer, and navigation to each component's
// already-compiled text. Media resolution is inherited transitively through
// the compiled artifacts. {{content}} is absent from the context and
// survives verbatim — that token is the hinge that lets one shell serve
// many events.
func (c *Compiler) CompileShell(raw string, headerID, footerID, navigationID uuid.UUID) (string, error) {
	slots := []struct {
		name     string
		id       uuid.UUID
		category models.ComponentCategory
	}{
		{"header", headerID, models.ComponentHeader},
		{"footer", footerID, models.ComponentFooter},
		{"navigation", navigationID, models.ComponentNavigation},
	}

	ctx := make(map[string]string, len(slots))
	for _, slot := range slots {
		comp, err := c.components.FindByID(slot.id)
		if err != nil {
			return "", fmt.Errorf("resolve %s component: %w", slot.name, err)
		}
		if comp == nil {
			return "", &ReferenceError{Kind: "component", ID: slot.id}
		}
		if comp.Category != slot.category {
			return "", &ReferenceError{Kind: "component", ID: slot.id, Slot: slot.name}
		}
		ctx[slot.name] = comp.CompiledHTML
	}
	return Render(raw, ctx), nil
}

// CompileEvent renders the referenced shell's compiled text with the
// content slot filled by the literal content string. The result is
// terminal: it is never re-parsed or recompiled, and later changes to the
// shell do not propagate to it.
func (c *Compiler) CompileEvent(shellID uuid.UUID, content string) (string, error) {
	shell, err := c.shells.FindByID(shellID)
	if err != nil {
		return "", fmt.Errorf("resolve shell: %w", err)
	}
	if shell == nil {
		return "", &ReferenceError{Kind: "shell", ID: shellID}
	}
	return Render(shell.CompiledHTML, map[string]string{"content": content}), nil
}
