package transaction

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/shared"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

type Service struct {
	Repository  Repository
	UserChecker *shared.UserCheckerService
}

// UpdateRequest carries optional field changes; nil fields keep their value.
type UpdateRequest struct {
	Title    *string
	Amount   *float64
	Category *string
	Type     *Types
	Date     *time.Time
}

func (s *Service) CreateTransaction(ctx context.Context, tx *Transaction) error {
	if err := s.UserChecker.EnsureUserExists(ctx, tx.UserId); err != nil {
		return err
	}
	if tx.Title == "" {
		return appErrors.NewValidationError("title", "title is required")
	}
	if tx.Amount < 0 {
		return appErrors.NewValidationError("amount", "amount cannot be negative")
	}
	if !tx.Type.IsValid() {
		return appErrors.NewValidationError("type", "type must be income or expense")
	}
	if tx.Date.IsZero() {
		return appErrors.NewValidationError("date", "date is required")
	}
	if tx.Category == "" {
		tx.Category = FallbackCategory
	}

	tx.Id = pkg.GenerateULIDObject()
	pkg.SetTimestamps(&tx.CreatedAt, &tx.UpdatedAt)

	if err := s.Repository.Create(ctx, tx); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetTransactionByID(ctx context.Context, transactionID, userID ulid.ULID) (*Transaction, error) {
	tx, err := s.Repository.GetByIDAndUser(ctx, transactionID, userID)
	if err != nil || tx == nil {
		return nil, appErrors.ErrTransactionNotFound
	}
	return tx, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	pagination = pkg.NormalizePagination(pagination)
	txs, total, err := s.Repository.List(ctx, userID, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return txs, total, nil
}

func (s *Service) UpdateTransaction(ctx context.Context, transactionID, userID ulid.ULID, req *UpdateRequest) (*Transaction, error) {
	tx, err := s.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, appErrors.NewValidationError("title", "title cannot be empty")
		}
		tx.Title = *req.Title
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, appErrors.NewValidationError("amount", "amount cannot be negative")
		}
		tx.Amount = *req.Amount
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, appErrors.NewValidationError("type", "type must be income or expense")
		}
		tx.Type = *req.Type
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}

	pkg.SetTimestamps(nil, &tx.UpdatedAt)

	if err := s.Repository.Update(ctx, tx); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return tx, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID, userID ulid.ULID) error {
	if _, err := s.GetTransactionByID(ctx, transactionID, userID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, transactionID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// ImportTransactions persists a parsed batch for the user, assigning ids and
// timestamps and deduplicating on ExternalId. Returns created and skipped
// counts.
func (s *Service) ImportTransactions(ctx context.Context, userID ulid.ULID, txs []*Transaction) (int, int, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return 0, 0, err
	}
	for _, tx := range txs {
		tx.Id = pkg.GenerateULIDObject()
		tx.UserId = userID
		if tx.Category == "" {
			tx.Category = FallbackCategory
		}
		pkg.SetTimestamps(&tx.CreatedAt, &tx.UpdatedAt)
	}
	created, skipped, err := s.Repository.BulkCreate(ctx, txs)
	if err != nil {
		return 0, 0, appErrors.NewDatabaseError(err)
	}
	return created, skipped, nil
}
