package user

import (
	"context"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/shared"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

type Service struct {
	Repository Repository
}

// Create registers a user with a bcrypt-hashed password. An empty password is
// allowed for externally provisioned accounts.
func (s *Service) Create(ctx context.Context, user *User) error {
	if user.Email == "" {
		return appErrors.NewValidationError("email", "email is required")
	}

	if existing, err := s.Repository.GetByEmail(ctx, user.Email); err == nil && existing != nil {
		return appErrors.ErrEmailAlreadyExists
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return appErrors.WrapError(err, "HASH_ERROR", "failed to hash password", 500)
		}
		user.Password = string(hashed)
	}

	if pkg.IsEmptyULID(user.Id) {
		user.Id = pkg.GenerateULIDObject()
	}
	pkg.SetTimestamps(&user.CreatedAt, &user.UpdatedAt)

	if err := s.Repository.Create(ctx, user); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.ErrEmailAlreadyExists
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Authenticate verifies the email and password pair. Accounts without a local
// password (Google, demo) never authenticate this way.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.Repository.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, appErrors.ErrInvalidCredentials
	}
	if user.Password == "" {
		return nil, appErrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, appErrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	user, err := s.Repository.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, appErrors.ErrUserNotFound
	}
	return user, nil
}

// Exists satisfies shared.UserChecker.
func (s *Service) Exists(ctx context.Context, id ulid.ULID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return nil
}

// UpsertByEmail provisions accounts arriving from Google sign-in or the demo
// flow. Email is the identity key; profile fields refresh on every login.
func (s *Service) UpsertByEmail(ctx context.Context, user *User) (*User, error) {
	if user.Email == "" {
		return nil, appErrors.NewValidationError("email", "email is required")
	}

	existing, err := s.Repository.GetByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		existing.FirstName = user.FirstName
		existing.LastName = user.LastName
		if user.ProfileImageUrl != "" {
			existing.ProfileImageUrl = user.ProfileImageUrl
		}
		pkg.SetTimestamps(nil, &existing.UpdatedAt)
		if err := s.Repository.Update(ctx, existing); err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
		return existing, nil
	}

	user.Id = pkg.GenerateULIDObject()
	pkg.SetTimestamps(&user.CreatedAt, &user.UpdatedAt)
	if err := s.Repository.Create(ctx, user); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return user, nil
}
