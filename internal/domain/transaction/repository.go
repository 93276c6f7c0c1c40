package transaction

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

// Filters narrows transaction listings. Zero values mean no filtering.
type Filters struct {
	Month    string // YYYY-MM
	Category string
	Type     Types
}

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID, userID ulid.ULID) error
	GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*Transaction, error)
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*Transaction, error)
	List(ctx context.Context, userID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	// BulkCreate inserts transactions, silently skipping rows whose ExternalId
	// already exists for the same user. Returns created and skipped counts.
	BulkCreate(ctx context.Context, transactions []*Transaction) (int, int, error)
}
