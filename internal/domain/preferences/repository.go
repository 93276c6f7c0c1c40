package preferences

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Get(ctx context.Context, userID ulid.ULID) (*Preference, error)
	Upsert(ctx context.Context, pref *Preference) error
}
