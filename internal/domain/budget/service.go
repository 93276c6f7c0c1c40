package budget

import (
	"context"

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
	Category *string
	Amount   *float64
	Month    *string
}

func (s *Service) CreateBudget(ctx context.Context, budget *Budget) error {
	if err := s.UserChecker.EnsureUserExists(ctx, budget.UserId); err != nil {
		return err
	}
	if budget.Category == "" {
		return appErrors.NewValidationError("category", "category is required")
	}
	if budget.Amount < 0 {
		return appErrors.NewValidationError("amount", "amount cannot be negative")
	}
	if !IsValidMonth(budget.Month) {
		return appErrors.NewValidationError("month", "month must be in YYYY-MM format")
	}

	budget.Id = pkg.GenerateULIDObject()
	pkg.SetTimestamps(&budget.CreatedAt, &budget.UpdatedAt)

	if err := s.Repository.Create(ctx, budget); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetBudgetByID(ctx context.Context, budgetID, userID ulid.ULID) (*Budget, error) {
	budget, err := s.Repository.GetByIDAndUser(ctx, budgetID, userID)
	if err != nil || budget == nil {
		return nil, appErrors.ErrBudgetNotFound
	}
	return budget, nil
}

// ListBudgets returns the user's budgets, optionally narrowed to one month.
func (s *Service) ListBudgets(ctx context.Context, userID ulid.ULID, month string) ([]*Budget, error) {
	var (
		budgets []*Budget
		err     error
	)
	if month != "" {
		if !IsValidMonth(month) {
			return nil, appErrors.NewValidationError("month", "month must be in YYYY-MM format")
		}
		budgets, err = s.Repository.GetByUserAndMonth(ctx, userID, month)
	} else {
		budgets, err = s.Repository.GetAllByUser(ctx, userID)
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return budgets, nil
}

func (s *Service) UpdateBudget(ctx context.Context, budgetID, userID ulid.ULID, req *UpdateRequest) (*Budget, error) {
	budget, err := s.GetBudgetByID(ctx, budgetID, userID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if *req.Category == "" {
			return nil, appErrors.NewValidationError("category", "category cannot be empty")
		}
		budget.Category = *req.Category
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, appErrors.NewValidationError("amount", "amount cannot be negative")
		}
		budget.Amount = *req.Amount
	}
	if req.Month != nil {
		if !IsValidMonth(*req.Month) {
			return nil, appErrors.NewValidationError("month", "month must be in YYYY-MM format")
		}
		budget.Month = *req.Month
	}

	pkg.SetTimestamps(nil, &budget.UpdatedAt)

	if err := s.Repository.Update(ctx, budget); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return budget, nil
}

func (s *Service) DeleteBudget(ctx context.Context, budgetID, userID ulid.ULID) error {
	if _, err := s.GetBudgetByID(ctx, budgetID, userID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, budgetID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
