package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/personalfinancemanagentdashboard/babu/internal/contracts"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

func (h *Handler) CreateGoal(c *gin.Context) {
	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	g := &goal.Goal{
		UserId:        userID,
		Title:         body.Title,
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
	}
	if body.Deadline != "" {
		deadline, err := time.Parse(contracts.DateLayout, body.Deadline)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("deadline", "must be a date in YYYY-MM-DD format"))
			return
		}
		g.Deadline = &deadline
	}

	ctx := c.Request.Context()
	if err := h.GoalService.CreateGoal(ctx, g); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalCreateResponse{
		Message: "Goal created",
		Goal:    g,
	})
}

func (h *Handler) ListGoals(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	goals, err := h.GoalService.ListGoals(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalListResponse{
		Goals: goals,
		Total: len(goals),
	})
}

func (h *Handler) GetGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
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
	g, err := h.GoalService.GetGoalByID(ctx, goalID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalSingleResponse{Goal: g})
}

func (h *Handler) UpdateGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "invalid id format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.GoalUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := &goal.UpdateRequest{
		Title:         body.Title,
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
	}
	if body.Deadline != nil {
		deadline, err := time.Parse(contracts.DateLayout, *body.Deadline)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("deadline", "must be a date in YYYY-MM-DD format"))
			return
		}
		req.Deadline = &deadline
	}

	ctx := c.Request.Context()
	g, err := h.GoalService.UpdateGoal(ctx, goalID, userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalUpdateResponse{
		Message: "Goal updated",
		Goal:    g,
	})
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.GoalService.DeleteGoal(ctx, goalID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Goal deleted"})
}
