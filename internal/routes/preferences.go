package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personalfinancemanagentdashboard/babu/internal/contracts"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/preferences"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

func (h *Handler) GetPreferences(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	pref, err := h.PreferencesService.GetPreferences(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PreferencesResponse{Preferences: pref})
}

func (h *Handler) UpdatePreferences(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.PreferencesUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &preferences.UpdateRequest{
		Theme:            body.Theme,
		CustomCategories: body.CustomCategories,
	}

	ctx := c.Request.Context()
	pref, err := h.PreferencesService.UpdatePreferences(ctx, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PreferencesResponse{Preferences: pref})
}

// ListCategories reports the category names offered for classification,
// which is the saved custom list or the defaults.
func (h *Handler) ListCategories(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	pref, err := h.PreferencesService.GetPreferences(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoriesResponse{Categories: pref.CustomCategories})
}
