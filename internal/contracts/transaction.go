package contracts

import (
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
)

type TransactionCreateRequest struct {
	Title    string  `json:"title" binding:"required,max=255"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Category string  `json:"category" binding:"omitempty,max=100"`
	Type     string  `json:"type" binding:"required,oneof=income expense"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
}

type TransactionUpdateRequest struct {
	Title    *string  `json:"title" binding:"omitempty,max=255"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Category *string  `json:"category" binding:"omitempty,max=100"`
	Type     *string  `json:"type" binding:"omitempty,oneof=income expense"`
	Date     *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionUpdateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}
