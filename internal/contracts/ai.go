package contracts

import "github.com/personalfinancemanagentdashboard/babu/internal/domain/insights"

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

type ChatResponse struct {
	Message string `json:"message"`
}

type CategorizeRequest struct {
	Description string `json:"description" binding:"required"`
}

type CategorizeResponse struct {
	Category string `json:"category"`
}

type CategorizeBatchRequest struct {
	TransactionIds []string `json:"transaction_ids" binding:"required,min=1"`
}

type CategorizeBatchResponse struct {
	Suggestions []*insights.Suggestion `json:"suggestions"`
}

type ReceiptScanRequest struct {
	Image string `json:"image" binding:"required"`
}
