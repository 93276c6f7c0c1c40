package contracts

import "github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"

type BillCreateRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Category string  `json:"category" binding:"omitempty,max=100"`
	DueDate  string  `json:"due_date" binding:"required,datetime=2006-01-02"`
}

type BillUpdateRequest struct {
	Name     *string  `json:"name" binding:"omitempty,max=255"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Category *string  `json:"category" binding:"omitempty,max=100"`
	DueDate  *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type BillCreateResponse struct {
	Message string     `json:"message"`
	Bill    *bill.Bill `json:"bill"`
}

type BillSingleResponse struct {
	Bill *bill.Bill `json:"bill"`
}

type BillUpdateResponse struct {
	Message string     `json:"message"`
	Bill    *bill.Bill `json:"bill"`
}

type BillListResponse struct {
	Bills []*bill.Bill `json:"bills"`
	Total int          `json:"total"`
}
