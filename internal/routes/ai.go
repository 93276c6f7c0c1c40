package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/contracts"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/insights"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

func (h *Handler) Chat(c *gin.Context) {
	var body contracts.ChatRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	messages := make([]insights.Message, 0, len(body.Messages))
	for _, m := range body.Messages {
		messages = append(messages, insights.TextMessage(m.Role, m.Content))
	}

	ctx := c.Request.Context()
	answer, err := h.InsightsService.Chat(ctx, userID, messages)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ChatResponse{Message: answer})
}

func (h *Handler) Categorize(c *gin.Context) {
	var body contracts.CategorizeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	category, err := h.InsightsService.Categorize(ctx, body.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategorizeResponse{Category: category})
}

// CategorizeBatch suggests categories for a set of owned transactions.
// Unknown or malformed ids are skipped rather than failing the batch.
func (h *Handler) CategorizeBatch(c *gin.Context) {
	var body contracts.CategorizeBatchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ids := make([]ulid.ULID, 0, len(body.TransactionIds))
	for _, raw := range body.TransactionIds {
		id, err := pkg.ParseULID(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	ctx := c.Request.Context()
	suggestions, err := h.InsightsService.CategorizeBatch(ctx, userID, ids)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if suggestions == nil {
		suggestions = []*insights.Suggestion{}
	}

	c.JSON(http.StatusOK, contracts.CategorizeBatchResponse{Suggestions: suggestions})
}

func (h *Handler) ScanReceipt(c *gin.Context) {
	var body contracts.ReceiptScanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	if _, err := h.GetUserIDFromContext(c); err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	receipt, err := h.InsightsService.ExtractReceipt(ctx, body.Image)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}
