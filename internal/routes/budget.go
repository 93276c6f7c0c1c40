package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/personalfinancemanagentdashboard/babu/internal/contracts"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

func (h *Handler) CreateBudget(c *gin.Context) {
	var body contracts.BudgetCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	b := &budget.Budget{
		UserId:   userID,
		Category: body.Category,
		Amount:   body.Amount,
		Month:    body.Month,
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.CreateBudget(ctx, b); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BudgetCreateResponse{
		Message: "Budget created",
		Budget:  b,
	})
}

func (h *Handler) ListBudgets(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	month := c.Query("month")
	if month != "" {
		if _, err := time.Parse(contracts.MonthLayout, month); err != nil {
			h.respondError(c, appErrors.NewValidationError("month", "must be a month in YYYY-MM format"))
			return
		}
	}

	ctx := c.Request.Context()
	budgets, err := h.BudgetService.ListBudgets(ctx, userID, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetListResponse{
		Budgets: budgets,
		Total:   len(budgets),
	})
}

func (h *Handler) GetBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	b, err := h.BudgetService.GetBudgetByID(ctx, budgetID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetSingleResponse{Budget: b})
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.BudgetUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &budget.UpdateRequest{
		Category: body.Category,
		Amount:   body.Amount,
		Month:    body.Month,
	}

	ctx := c.Request.Context()
	b, err := h.BudgetService.UpdateBudget(ctx, budgetID, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetUpdateResponse{
		Message: "Budget updated",
		Budget:  b,
	})
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.DeleteBudget(ctx, budgetID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Budget deleted"})
}
