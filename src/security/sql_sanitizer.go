package security

import (
	"fmt"
	"regexp"
	"strings"
)

// SQLSanitizer provides SQL injection protection utilities for the
// free-text inputs that reach ILIKE patterns.
type SQLSanitizer struct {
	dangerousPatterns []*regexp.Regexp
}

// NewSQLSanitizer creates a new SQL sanitizer
func NewSQLSanitizer() *SQLSanitizer {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)(^|\s)(union|select|insert|update|delete|drop|create|alter|exec|execute|declare|grant|revoke|truncate|show|describe)\s`),
		regexp.MustCompile(`(--|/\*|\*/|;)`),
		regexp.MustCompile(`(?i)(<script|javascript:|onload\s*=|onerror\s*=)`),
		regexp.MustCompile(`(?i)(xp_|sp_|information_schema|pg_catalog)`),
	}

	return &SQLSanitizer{
		dangerousPatterns: patterns,
	}
}

// ValidateSearchQuery validates a search query before it reaches the
// database layer.
func (s *SQLSanitizer) ValidateSearchQuery(query string) error {
	if query == "" {
		return nil
	}

	if len(query) > 200 {
		return fmt.Errorf("search query too long (max: 200 characters)")
	}

	for _, pattern := range s.dangerousPatterns {
		if pattern.MatchString(query) {
			return fmt.Errorf("potentially dangerous pattern detected in search query")
		}
	}

	return nil
}

// SanitizeSearchQuery normalizes a search query for safe use in an ILIKE
// pattern: trims, collapses whitespace, and escapes LIKE wildcards.
func (s *SQLSanitizer) SanitizeSearchQuery(query string) string {
	if query == "" {
		return ""
	}

	sanitized := strings.TrimSpace(query)
	sanitized = regexp.MustCompile(`\s+`).ReplaceAllString(sanitized, " ")
	return s.EscapeForLike(sanitized)
}

// EscapeForLike escapes special characters in LIKE patterns
func (s *SQLSanitizer) EscapeForLike(pattern string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"%", "\\%",
		"_", "\\_",
	)
	return replacer.Replace(pattern)
}
