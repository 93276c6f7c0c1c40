package shared

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// UserChecker exposes the one user lookup capability that other domains need
// without importing the user package directly.
type UserChecker interface {
	Exists(ctx context.Context, id ulid.ULID) error
}
