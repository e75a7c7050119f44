// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentFormat describes how an event's content body is authored.
type ContentFormat string

const (
	ContentFormatHTML     ContentFormat = "html"
	ContentFormatMarkdown ContentFormat = "markdown"
)

// Valid reports whether the format is a known content format.
func (f ContentFormat) Valid() bool {
	return f == ContentFormatHTML || f == ContentFormatMarkdown
}

// Event is a finished page: a shell's content slot filled with literal
// content text. CompiledHTML is the terminal output — it contains no
// residual {{content}} token and is never re-parsed or recompiled. A later
// change to the shell or its components does not propagate here.
type Event struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	ShellID       uuid.UUID     `json:"shell_id"`
	Content       string        `json:"content"`
	ContentFormat ContentFormat `json:"content_format"`
	CompiledHTML  string        `json:"compiled_html"`
	CreatedAt     time.Time     `json:"created_at"`
}
