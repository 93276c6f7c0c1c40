package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personalfinancemanagentdashboard/babu/internal/contracts"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/user"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

func (h *Handler) Register(c *gin.Context) {
	var body contracts.RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	u := &user.User{
		Email:     body.Email,
		Password:  body.Password,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}

	ctx := c.Request.Context()
	if err := h.AuthService.Register(ctx, u); err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(u)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AuthResponse{Token: token, User: u})
}

func (h *Handler) Login(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	u, err := h.AuthService.Login(ctx, body.Email, body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(u)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{Token: token, User: u})
}

func (h *Handler) GoogleLogin(c *gin.Context) {
	var body contracts.GoogleLoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	u, err := h.AuthService.GoogleLogin(ctx, body.Credential, body.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(u)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{Token: token, User: u})
}

func (h *Handler) GoogleAuthURL(c *gin.Context) {
	url, state, err := h.AuthService.GoogleAuthURL()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoogleAuthURLResponse{URL: url, State: state})
}

func (h *Handler) DemoLogin(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := h.AuthService.DemoLogin(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(u)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AuthResponse{Token: token, User: u})
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	u, err := h.UserService.GetByID(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.UserResponse{User: u})
}
