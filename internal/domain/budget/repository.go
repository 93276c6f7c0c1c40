package budget

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, budget *Budget) error
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, budgetID, userID ulid.ULID) error
	GetByIDAndUser(ctx context.Context, budgetID, userID ulid.ULID) (*Budget, error)
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*Budget, error)
	GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month string) ([]*Budget, error)
}
