package auth

import (
	"context"
	"regexp"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

// Demo account identity. Logging in through the demo flow always lands on
// this same account, so demo data survives across sessions.
const (
	DemoEmail     = "demo@smartfinance.ai"
	DemoFirstName = "Demo"
	DemoLastName  = "User"
)

type Service struct {
	UserService *user.Service
	// OAuth is nil when Google sign-in is disabled by configuration.
	OAuth OAuthProvider
}

func (s *Service) Register(ctx context.Context, u *user.User) error {
	if err := PasswordRequirements(u.Password); err != nil {
		return err
	}
	return s.UserService.Create(ctx, u)
}

func (s *Service) Login(ctx context.Context, email, password string) (*user.User, error) {
	if email == "" {
		return nil, appErrors.NewValidationError("email", "email is required")
	}
	if password == "" {
		return nil, appErrors.NewValidationError("password", "password is required")
	}
	return s.UserService.Authenticate(ctx, email, password)
}

// GoogleLogin verifies the posted credential (or exchanges an authorization
// code first) and provisions the account on first sight.
func (s *Service) GoogleLogin(ctx context.Context, credential, code string) (*user.User, error) {
	if s.OAuth == nil {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth is not configured. Set GOOGLE_OAUTH_CLIENT_ID and GOOGLE_OAUTH_ENABLED=true")
	}

	if credential == "" && code == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "Google credential or authorization code is required")
	}

	if credential == "" {
		idToken, err := s.OAuth.ExchangeCode(ctx, code)
		if err != nil {
			return nil, err
		}
		credential = idToken
	}

	info, err := s.OAuth.VerifyToken(ctx, credential)
	if err != nil {
		return nil, err
	}

	return s.UserService.UpsertByEmail(ctx, &user.User{
		Email:           info.Email,
		FirstName:       info.FirstName,
		LastName:        info.LastName,
		ProfileImageUrl: info.Picture,
	})
}

// GoogleAuthURL starts the redirect flow, returning the consent URL and the
// state the callback must echo.
func (s *Service) GoogleAuthURL() (string, string, error) {
	if s.OAuth == nil {
		return "", "", appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth is not configured")
	}

	state, err := GenerateState()
	if err != nil {
		return "", "", err
	}

	url := s.OAuth.GetAuthURL(state)
	if url == "" {
		return "", "", appErrors.NewAuthError("OAUTH_CONFIG_INCOMPLETE", "OAuth configuration is incomplete for the redirect flow")
	}
	return url, state, nil
}

// DemoLogin signs into the shared demo account, creating it on first use.
func (s *Service) DemoLogin(ctx context.Context) (*user.User, error) {
	return s.UserService.UpsertByEmail(ctx, &user.User{
		Email:     DemoEmail,
		FirstName: DemoFirstName,
		LastName:  DemoLastName,
	})
}

func PasswordRequirements(password string) error {
	if len(password) < 8 {
		return appErrors.NewValidationError("password", "must be at least 8 characters")
	}
	if hasUpper, _ := regexp.MatchString(`[A-Z]`, password); !hasUpper {
		return appErrors.NewValidationError("password", "must contain at least one uppercase letter")
	}
	if hasSpecial, _ := regexp.MatchString(`[@$!%*?&]`, password); !hasSpecial {
		return appErrors.NewValidationError("password", "must contain at least one special character (@$!%*?&)")
	}
	return nil
}
