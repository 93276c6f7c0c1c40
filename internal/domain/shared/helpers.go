package shared

import "strings"

// IsUniqueConstraintError reports whether err is a database unique violation.
// Matches Postgres error text and the 23505 SQLSTATE so callers can translate
// it into a conflict error.
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
