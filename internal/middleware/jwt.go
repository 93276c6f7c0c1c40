package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/personalfinancemanagentdashboard/babu/config"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

// JwtService signs and validates the HS256 bearer tokens issued at login.
// Validation also confirms the subject still resolves to a live user, so a
// deleted account cannot keep using an unexpired token.
type JwtService struct {
	secret      []byte
	ttl         time.Duration
	userService *user.Service
}

func NewJwtService(cfg config.JWTConfig, userService *user.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, appErrors.NewAuthError("JWT_SECRET_MISSING", "JWT secret is not configured")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JwtService{
		secret:      []byte(cfg.Secret),
		ttl:         ttl,
		userService: userService,
	}, nil
}

func (s *JwtService) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   u.Id.String(),
		"email": u.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

// ValidateToken parses the token and returns the authenticated user.
func (s *JwtService) ValidateToken(ctx context.Context, tokenString string) (*user.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, appErrors.ErrUnauthorized.WithError(err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, appErrors.ErrUnauthorized
	}

	id, err := pkg.ParseULID(subject)
	if err != nil {
		return nil, appErrors.ErrUnauthorized
	}

	u, err := s.userService.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.ErrUnauthorized
	}
	return u, nil
}

// AuthMiddleware guards private routes. On success the authenticated user id
// is stored in the context under "user_id".
func AuthMiddleware(svc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			abortUnauthorized(c, "authorization header must be a bearer token")
			return
		}

		u, err := svc.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set("user_id", u.Id.String())
		c.Set("user_email", u.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   appErrors.ErrUnauthorized.Code,
		"message": message,
	})
}
