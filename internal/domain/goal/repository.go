package goal

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, goalID, userID ulid.ULID) error
	GetByIDAndUser(ctx context.Context, goalID, userID ulid.ULID) (*Goal, error)
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*Goal, error)
}
