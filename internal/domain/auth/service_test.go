package auth_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/auth"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

type fakeUserRepo struct {
	createFn     func(ctx context.Context, u *user.User) error
	updateFn     func(ctx context.Context, u *user.User) error
	getByIDFn    func(ctx context.Context, id ulid.ULID) (*user.User, error)
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, nil
}

type fakeOAuthProvider struct {
	info *auth.OAuthUserInfo
}

func (f *fakeOAuthProvider) VerifyToken(ctx context.Context, credential string) (*auth.OAuthUserInfo, error) {
	return f.info, nil
}

func (f *fakeOAuthProvider) GetAuthURL(state string) string { return "https://example.com/auth" }

func (f *fakeOAuthProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	return "exchanged-token", nil
}

func newAuthService(repo *fakeUserRepo, oauth auth.OAuthProvider) *auth.Service {
	return &auth.Service{
		UserService: &user.Service{Repository: repo},
		OAuth:       oauth,
	}
}

func TestPasswordRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Sup3rSecret!", wantErr: false},
		{name: "too short", password: "Ab@1", wantErr: true},
		{name: "no uppercase", password: "lowercase@only", wantErr: true},
		{name: "no special character", password: "NoSpecial123", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := auth.PasswordRequirements(tt.password)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %q", tt.password)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.password, err)
			}
			if tt.wantErr {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != "VALIDATION_ERROR" {
					t.Fatalf("expected validation error, got %v", err)
				}
			}
		})
	}
}

func TestServiceRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("weak password", func(t *testing.T) {
		svc := newAuthService(&fakeUserRepo{}, nil)

		err := svc.Register(ctx, &user.User{Email: "a@b.com", Password: "weak"})
		if err == nil {
			t.Fatalf("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %s", appErr.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{Id: ulid.Make(), Email: email}, nil
			},
		}
		svc := newAuthService(repo, nil)

		err := svc.Register(ctx, &user.User{Email: "taken@b.com", Password: "Sup3rSecret!"})
		if err == nil {
			t.Fatalf("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != appErrors.ErrEmailAlreadyExists.Code {
			t.Fatalf("expected duplicate email error, got %s", appErr.Code)
		}
	})

	t.Run("success hashes the password", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepo{
			createFn: func(ctx context.Context, u *user.User) error {
				created = u
				return nil
			},
		}
		svc := newAuthService(repo, nil)

		err := svc.Register(ctx, &user.User{Email: "new@b.com", Password: "Sup3rSecret!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatalf("expected create to be called")
		}
		if created.Password == "Sup3rSecret!" {
			t.Fatalf("expected password to be hashed")
		}
		if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Sup3rSecret!")) != nil {
			t.Fatalf("expected stored hash to match the password")
		}
	})
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret!"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash setup: %v", err)
	}

	stored := &user.User{Id: ulid.Make(), Email: "a@b.com", Password: string(hash)}
	repo := &fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, nil
		},
	}
	svc := newAuthService(repo, nil)

	tests := []struct {
		name        string
		email       string
		password    string
		wantErrCode string
	}{
		{name: "missing email", email: "", password: "x", wantErrCode: "VALIDATION_ERROR"},
		{name: "missing password", email: "a@b.com", password: "", wantErrCode: "VALIDATION_ERROR"},
		{name: "unknown email", email: "nobody@b.com", password: "Sup3rSecret!", wantErrCode: appErrors.ErrInvalidCredentials.Code},
		{name: "wrong password", email: "a@b.com", password: "WrongSecret!", wantErrCode: appErrors.ErrInvalidCredentials.Code},
		{name: "success", email: "a@b.com", password: "Sup3rSecret!"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErrCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got == nil || got.Id != stored.Id {
					t.Fatalf("expected stored user, got %+v", got)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErrCode {
				t.Fatalf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
			}
		})
	}

	t.Run("account without local password", func(t *testing.T) {
		repo := &fakeUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{Id: ulid.Make(), Email: email}, nil
			},
		}
		svc := newAuthService(repo, nil)

		_, err := svc.Login(ctx, "google@b.com", "anything")
		if err == nil {
			t.Fatalf("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != appErrors.ErrInvalidCredentials.Code {
			t.Fatalf("expected invalid credentials, got %s", appErr.Code)
		}
	})
}

func TestServiceGoogleLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("oauth not configured", func(t *testing.T) {
		svc := newAuthService(&fakeUserRepo{}, nil)

		_, err := svc.GoogleLogin(ctx, "credential", "")
		if err == nil {
			t.Fatalf("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != "OAUTH_NOT_CONFIGURED" {
			t.Fatalf("expected OAUTH_NOT_CONFIGURED, got %s", appErr.Code)
		}
	})

	t.Run("missing credential and code", func(t *testing.T) {
		svc := newAuthService(&fakeUserRepo{}, &fakeOAuthProvider{})

		_, err := svc.GoogleLogin(ctx, "", "")
		if err == nil {
			t.Fatalf("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != "CREDENTIAL_MISSING" {
			t.Fatalf("expected CREDENTIAL_MISSING, got %s", appErr.Code)
		}
	})

	t.Run("provisions account on first sign-in", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepo{
			createFn: func(ctx context.Context, u *user.User) error {
				created = u
				return nil
			},
		}
		oauth := &fakeOAuthProvider{
			info: &auth.OAuthUserInfo{Email: "g@b.com", FirstName: "G", LastName: "User", Picture: "pic"},
		}
		svc := newAuthService(repo, oauth)

		got, err := svc.GoogleLogin(ctx, "credential", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatalf("expected account to be created")
		}
		if got.Email != "g@b.com" || got.FirstName != "G" {
			t.Fatalf("expected profile from token, got %+v", got)
		}
	})
}

func TestServiceDemoLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates the demo account on first use", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepo{
			createFn: func(ctx context.Context, u *user.User) error {
				created = u
				return nil
			},
		}
		svc := newAuthService(repo, nil)

		got, err := svc.DemoLogin(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatalf("expected account to be created")
		}
		if got.Email != auth.DemoEmail {
			t.Fatalf("expected demo email, got %q", got.Email)
		}
	})

	t.Run("reuses the existing demo account", func(t *testing.T) {
		existing := &user.User{Id: ulid.Make(), Email: auth.DemoEmail}
		repo := &fakeUserRepo{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return existing, nil
			},
			createFn: func(ctx context.Context, u *user.User) error {
				t.Fatalf("unexpected create for existing demo account")
				return nil
			},
		}
		svc := newAuthService(repo, nil)

		got, err := svc.DemoLogin(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Id != existing.Id {
			t.Fatalf("expected existing account to be reused")
		}
	})
}
