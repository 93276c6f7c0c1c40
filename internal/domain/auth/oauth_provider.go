package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

// OAuthUserInfo is the identity extracted from a verified provider token.
type OAuthUserInfo struct {
	Email     string
	FirstName string
	LastName  string
	Picture   string
}

type OAuthProvider interface {
	VerifyToken(ctx context.Context, credential string) (*OAuthUserInfo, error)
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// GenerateState produces the opaque anti-forgery state for the redirect flow.
func GenerateState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
