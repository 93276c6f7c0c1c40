package shared

import (
	"context"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

// UserCheckerService validates that a user exists before dependent writes.
type UserCheckerService struct {
	userService UserChecker
}

func NewUserCheckerService(userService UserChecker) *UserCheckerService {
	return &UserCheckerService{userService: userService}
}

// EnsureUserExists returns ErrUserNotFound when the id resolves to no user.
func (s *UserCheckerService) EnsureUserExists(ctx context.Context, userID ulid.ULID) error {
	if err := s.userService.Exists(ctx, userID); err != nil {
		return appErrors.ErrUserNotFound
	}
	return nil
}
