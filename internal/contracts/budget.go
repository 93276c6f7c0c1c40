package contracts

import "github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"

type BudgetCreateRequest struct {
	Category string  `json:"category" binding:"required,max=100"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Month    string  `json:"month" binding:"required,datetime=2006-01"`
}

type BudgetUpdateRequest struct {
	Category *string  `json:"category" binding:"omitempty,max=100"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Month    *string  `json:"month" binding:"omitempty,datetime=2006-01"`
}

type BudgetCreateResponse struct {
	Message string         `json:"message"`
	Budget  *budget.Budget `json:"budget"`
}

type BudgetSingleResponse struct {
	Budget *budget.Budget `json:"budget"`
}

type BudgetUpdateResponse struct {
	Message string         `json:"message"`
	Budget  *budget.Budget `json:"budget"`
}

type BudgetListResponse struct {
	Budgets []*budget.Budget `json:"budgets"`
	Total   int              `json:"total"`
}
