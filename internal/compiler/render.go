// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package compiler implements the EventPress template pipeline: a single
// placeholder-substitution pass and the three stages built on it
// (component, shell, event). Each stage renders once and persists the
// result; compiled HTML is bound at creation time and never re-rendered.
package compiler

import (
	"regexp"
	"strings"
)

// placeholderRe matches a substitution token: {{, optional ASCII
// whitespace, an identifier, optional ASCII whitespace, }}. Identifiers
// are case-sensitive. Anything else — unbalanced braces, invalid
// identifier characters, Unicode whitespace — is ordinary text and passes
// through untouched. Go's \s is ASCII-only.
var placeholderRe = regexp.MustCompile(`\{\{\s*[A-Za-z_][A-Za-z0-9_]*\s*\}\}`)

// Render replaces every recognized {{name}} token in tmpl whose identifier
// is a key of ctx with the mapped value. Tokens with unmapped identifiers
// are kept byte-identical, interior whitespace included. Replacement values
// are inserted literally and never re-scanned, so a value containing
// {{...}} sequences survives as-is in the output. Pure function.
func Render(tmpl string, ctx map[string]string) string {
	if len(tmpl) == 0 || len(ctx) == 0 {
		return tmpl
	}
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := strings.Trim(token[2:len(token)-2], " \t\n\f\r")
		if value, ok := ctx[name]; ok {
			return value
		}
		return token
	})
}
