package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for API inputs.
const (
	maxNameLen     = 200
	maxTemplateLen = 500_000
	maxContentLen  = 500_000
	maxVariables   = 100
)

// validateName checks a display name and returns the first error found.
func validateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	return ""
}

// validateTemplateText checks raw template or layout text.
func validateTemplateText(text string) string {
	if strings.TrimSpace(text) == "" {
		return "Template text is required."
	}
	if utf8.RuneCountInString(text) > maxTemplateLen {
		return "Template text is too long (max 500,000 characters)."
	}
	return ""
}

// validateContent checks event content text. Empty content is allowed —
// a shell page with no body is a legitimate event.
func validateContent(content string) string {
	if utf8.RuneCountInString(content) > maxContentLen {
		return "Content is too long (max 500,000 characters)."
	}
	return ""
}
