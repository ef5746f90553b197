// Package gormpersistence implements the repository interfaces on GORM.
package gormpersistence

import "strings"

// isDuplicateEntryError checks the driver error strings for unique-constraint
// violations. MySQL is the production store; the SQLite string keeps the
// in-memory test harness on the same code path.
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // MySQL
		strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
