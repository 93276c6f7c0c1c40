package bill

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, bill *Bill) error
	Update(ctx context.Context, bill *Bill) error
	Delete(ctx context.Context, billID, userID ulid.ULID) error
	GetByIDAndUser(ctx context.Context, billID, userID ulid.ULID) (*Bill, error)
	// GetAllByUser returns the user's bills ordered by due date ascending.
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*Bill, error)
}
