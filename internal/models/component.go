// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ComponentCategory classifies a component by the layout slot it fills.
type ComponentCategory string

const (
	ComponentHeader     ComponentCategory = "header"
	ComponentFooter     ComponentCategory = "footer"
	ComponentNavigation ComponentCategory = "navigation"
)

// Valid reports whether the category is one of the three known slots.
func (c ComponentCategory) Valid() bool {
	switch c {
	case ComponentHeader, ComponentFooter, ComponentNavigation:
		return true
	}
	return false
}

// Component is a reusable HTML fragment (header, footer, or navigation).
// RawTemplate holds the authored text with {{placeholder}} tokens that
// reference media; CompiledHTML holds the text after media URLs were
// substituted at creation time. Components are never recompiled.
type Component struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Category     ComponentCategory `json:"category"`
	RawTemplate  string            `json:"raw_template"`
	CompiledHTML string            `json:"compiled_html"`
	CreatedAt    time.Time         `json:"created_at"`
}
