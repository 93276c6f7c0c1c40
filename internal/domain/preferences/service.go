package preferences

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

// UpdateRequest carries optional changes; nil fields keep their value.
type UpdateRequest struct {
	Theme            *string
	CustomCategories []string
}

// GetPreferences returns the stored preferences, or the defaults when the
// user has never saved any.
func (s *Service) GetPreferences(ctx context.Context, userID ulid.ULID) (*Preference, error) {
	pref, err := s.Repository.Get(ctx, userID)
	if err != nil || pref == nil {
		return Defaults(userID), nil
	}
	return pref, nil
}

func (s *Service) UpdatePreferences(ctx context.Context, userID ulid.ULID, req *UpdateRequest) (*Preference, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	pref, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		if !IsValidTheme(*req.Theme) {
			return nil, appErrors.NewValidationError("theme", "theme must be system, light or dark")
		}
		pref.Theme = *req.Theme
	}
	if req.CustomCategories != nil {
		pref.CustomCategories = req.CustomCategories
	}

	pkg.SetTimestamps(&pref.CreatedAt, &pref.UpdatedAt)

	if err := s.Repository.Upsert(ctx, pref); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return pref, nil
}
