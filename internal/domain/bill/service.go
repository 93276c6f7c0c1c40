package bill

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
	Name     *string
	Amount   *float64
	Category *string
	DueDate  *time.Time
}

func (s *Service) CreateBill(ctx context.Context, bill *Bill) error {
	if err := s.UserChecker.EnsureUserExists(ctx, bill.UserId); err != nil {
		return err
	}
	if bill.Name == "" {
		return appErrors.NewValidationError("name", "name is required")
	}
	if bill.Amount < 0 {
		return appErrors.NewValidationError("amount", "amount cannot be negative")
	}
	if bill.DueDate.IsZero() {
		return appErrors.NewValidationError("dueDate", "due date is required")
	}
	if bill.Category == "" {
		bill.Category = "Bills"
	}

	bill.Id = pkg.GenerateULIDObject()
	pkg.SetTimestamps(&bill.CreatedAt, &bill.UpdatedAt)

	if err := s.Repository.Create(ctx, bill); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetBillByID(ctx context.Context, billID, userID ulid.ULID) (*Bill, error) {
	bill, err := s.Repository.GetByIDAndUser(ctx, billID, userID)
	if err != nil || bill == nil {
		return nil, appErrors.ErrBillNotFound
	}
	return bill, nil
}

func (s *Service) ListBills(ctx context.Context, userID ulid.ULID) ([]*Bill, error) {
	bills, err := s.Repository.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return bills, nil
}

func (s *Service) UpdateBill(ctx context.Context, billID, userID ulid.ULID, req *UpdateRequest) (*Bill, error) {
	bill, err := s.GetBillByID(ctx, billID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, appErrors.NewValidationError("name", "name cannot be empty")
		}
		bill.Name = *req.Name
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, appErrors.NewValidationError("amount", "amount cannot be negative")
		}
		bill.Amount = *req.Amount
	}
	if req.Category != nil {
		bill.Category = *req.Category
	}
	if req.DueDate != nil {
		bill.DueDate = *req.DueDate
	}

	pkg.SetTimestamps(nil, &bill.UpdatedAt)

	if err := s.Repository.Update(ctx, bill); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return bill, nil
}

func (s *Service) DeleteBill(ctx context.Context, billID, userID ulid.ULID) error {
	if _, err := s.GetBillByID(ctx, billID, userID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, billID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
