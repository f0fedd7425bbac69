package db

import (
	"regexp"
	"strings"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// NormalizeDSN trims quotes and whitespace from a DSN. For lib/pq style
// key=value lists it collapses spacing and ensures sslmode is present
// (default disable). URL-form and sqlite path DSNs pass through unchanged.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	if IsPostgresURL(s) {
		return s
	}
	if !kvPairRegex.MatchString(s) {
		return s
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// IsPostgresURL reports whether the DSN is a postgres:// or postgresql:// URL.
func IsPostgresURL(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// IsPostgresDSN reports whether the DSN targets postgres in either URL or
// key=value form. Anything else is treated as a sqlite path.
func IsPostgresDSN(dsn string) bool {
	return IsPostgresURL(dsn) || kvPairRegex.MatchString(dsn)
}
