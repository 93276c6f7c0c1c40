package pkg

import (
	"crypto/rand"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateULIDObject creates a new ULID for use as an entity primary key.
func GenerateULIDObject() ulid.ULID {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

// ParseULID converts a string representation into a ULID.
func ParseULID(s string) (ulid.ULID, error) {
	return ulid.Parse(s)
}

// IsEmptyULID reports whether the ULID is the zero value.
func IsEmptyULID(id ulid.ULID) bool {
	return id == ulid.ULID{}
}

// SetTimestamps fills CreatedAt when unset and always refreshes UpdatedAt.
// Either pointer may be nil.
func SetTimestamps(createdAt, updatedAt *time.Time) {
	now := time.Now()
	if createdAt != nil && createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt != nil {
		*updatedAt = now
	}
}

// ParseInt converts s to an int, falling back to def on empty or invalid input.
func ParseInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
