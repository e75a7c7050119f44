// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Shell is a page layout composed from exactly one header, footer, and
// navigation component, referenced by ID (non-owning). CompiledHTML has
// the three component tokens resolved while {{content}} is deliberately
// left verbatim so the shell can be reused across many events.
type Shell struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	HeaderID     uuid.UUID `json:"header_id"`
	FooterID     uuid.UUID `json:"footer_id"`
	NavigationID uuid.UUID `json:"navigation_id"`
	RawLayout    string    `json:"raw_layout"`
	CompiledHTML string    `json:"compiled_html"`
	CreatedAt    time.Time `json:"created_at"`
}
