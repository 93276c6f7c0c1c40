package contracts

import "github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"

type GoalCreateRequest struct {
	Title         string  `json:"title" binding:"required,max=255"`
	TargetAmount  float64 `json:"target_amount" binding:"gt=0"`
	CurrentAmount float64 `json:"current_amount" binding:"omitempty,gte=0"`
	Deadline      string  `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

type GoalUpdateRequest struct {
	Title         *string  `json:"title" binding:"omitempty,max=255"`
	TargetAmount  *float64 `json:"target_amount" binding:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"current_amount" binding:"omitempty,gte=0"`
	Deadline      *string  `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

type GoalCreateResponse struct {
	Message string     `json:"message"`
	Goal    *goal.Goal `json:"goal"`
}

type GoalSingleResponse struct {
	Goal *goal.Goal `json:"goal"`
}

type GoalUpdateResponse struct {
	Message string     `json:"message"`
	Goal    *goal.Goal `json:"goal"`
}

type GoalListResponse struct {
	Goals []*goal.Goal `json:"goals"`
	Total int          `json:"total"`
}
