package goal

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
	Title         *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
}

func (s *Service) CreateGoal(ctx context.Context, goal *Goal) error {
	if err := s.UserChecker.EnsureUserExists(ctx, goal.UserId); err != nil {
		return err
	}
	if goal.Title == "" {
		return appErrors.NewValidationError("title", "title is required")
	}
	if goal.TargetAmount < 0 {
		return appErrors.NewValidationError("targetAmount", "target amount cannot be negative")
	}
	if goal.CurrentAmount < 0 {
		return appErrors.NewValidationError("currentAmount", "current amount cannot be negative")
	}

	goal.Id = pkg.GenerateULIDObject()
	pkg.SetTimestamps(&goal.CreatedAt, &goal.UpdatedAt)

	if err := s.Repository.Create(ctx, goal); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetGoalByID(ctx context.Context, goalID, userID ulid.ULID) (*Goal, error) {
	goal, err := s.Repository.GetByIDAndUser(ctx, goalID, userID)
	if err != nil || goal == nil {
		return nil, appErrors.ErrGoalNotFound
	}
	return goal, nil
}

func (s *Service) ListGoals(ctx context.Context, userID ulid.ULID) ([]*Goal, error) {
	goals, err := s.Repository.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return goals, nil
}

func (s *Service) UpdateGoal(ctx context.Context, goalID, userID ulid.ULID, req *UpdateRequest) (*Goal, error) {
	goal, err := s.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, appErrors.NewValidationError("title", "title cannot be empty")
		}
		goal.Title = *req.Title
	}
	if req.TargetAmount != nil {
		if *req.TargetAmount < 0 {
			return nil, appErrors.NewValidationError("targetAmount", "target amount cannot be negative")
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		if *req.CurrentAmount < 0 {
			return nil, appErrors.NewValidationError("currentAmount", "current amount cannot be negative")
		}
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}

	pkg.SetTimestamps(nil, &goal.UpdatedAt)

	if err := s.Repository.Update(ctx, goal); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return goal, nil
}

func (s *Service) DeleteGoal(ctx context.Context, goalID, userID ulid.ULID) error {
	if _, err := s.GetGoalByID(ctx, goalID, userID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, goalID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
