package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetHealthScore(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	breakdown, err := h.HealthScoreService.GetHealthScore(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
