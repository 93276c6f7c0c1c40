package contracts

import "github.com/personalfinancemanagentdashboard/babu/internal/domain/user"

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"omitempty,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest accepts either an ID token from the one-tap widget or an
// authorization code from the redirect flow.
type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"omitempty"`
	Code       string `json:"code" binding:"omitempty"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

type GoogleAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type UserResponse struct {
	User *user.User `json:"user"`
}
