package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/dashboard"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

const (
	chatTemperature = 0.7
	chatMaxTokens   = 500

	categorizeTemperature = 0.3
	categorizeMaxTokens   = 50
	categorizeCacheTTL    = 24 * time.Hour
	batchConcurrency      = 5

	receiptTemperature = 0.2
	receiptMaxTokens   = 500
)

var (
	dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)
	jsonObject    = regexp.MustCompile(`\{[\s\S]*\}`)
)

// CategoryCache memoizes categorization answers across requests. The Redis
// implementation degrades to a no-op when Redis is not configured.
type CategoryCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
}

type Service struct {
	Client       *Client
	Dashboard    *dashboard.Service
	Transactions *transaction.Service
	Cache        CategoryCache
	ChatModel    string
	VisionModel  string
	Now          func() time.Time
}

type Suggestion struct {
	TransactionId     ulid.ULID `json:"transactionId"`
	Title             string    `json:"title"`
	CurrentCategory   string    `json:"currentCategory"`
	SuggestedCategory string    `json:"suggestedCategory"`
}

type ReceiptData struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Chat answers a conversation with the user's current finances prepended as
// the system message.
func (s *Service) Chat(ctx context.Context, userID ulid.ULID, messages []Message) (string, error) {
	if s.Client == nil {
		return "", appErrors.ErrAIUnavailable
	}
	if len(messages) == 0 {
		return "", appErrors.NewValidationError("messages", "at least one message is required")
	}

	overview, err := s.Dashboard.GetDashboard(ctx, userID)
	if err != nil {
		return "", err
	}

	conversation := make([]Message, 0, len(messages)+1)
	conversation = append(conversation, TextMessage("system", BuildSystemPrompt(overview)))
	conversation = append(conversation, messages...)

	answer, err := s.Client.Complete(ctx, s.ChatModel, conversation, chatTemperature, chatMaxTokens)
	if err != nil {
		return "", appErrors.WrapError(err, "AI_ERROR", "Failed to get AI response", http.StatusBadGateway)
	}

	return answer, nil
}

// Categorize suggests one of the default categories for a free-form
// transaction description. Answers are cached by normalized description.
func (s *Service) Categorize(ctx context.Context, description string) (string, error) {
	if s.Client == nil {
		return "", appErrors.ErrAIUnavailable
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return "", appErrors.NewValidationError("description", "description is required")
	}

	cacheKey := "categorize:" + strings.ToLower(description)
	if s.Cache != nil {
		if category, ok := s.Cache.Get(ctx, cacheKey); ok {
			return category, nil
		}
	}

	system := "You are a financial categorization assistant. Given a transaction description, " +
		"suggest the most appropriate category from this list: " + strings.Join(transaction.DefaultCategories, ", ") + ". " +
		"Respond ONLY with the category name, nothing else."

	answer, err := s.Client.Complete(ctx, s.ChatModel, []Message{
		TextMessage("system", system),
		TextMessage("user", "Categorize this transaction: "+description),
	}, categorizeTemperature, categorizeMaxTokens)
	if err != nil {
		return "", appErrors.WrapError(err, "AI_ERROR", "Failed to categorize transaction", http.StatusBadGateway)
	}

	category := strings.TrimSpace(answer)
	if !transaction.IsDefaultCategory(category) {
		category = transaction.FallbackCategory
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, cacheKey, category, categorizeCacheTTL)
	}

	return category, nil
}

// CategorizeBatch suggests categories for the given transactions, skipping
// ids that do not belong to the user and ids whose categorization fails.
// Suggestions come back in input order.
func (s *Service) CategorizeBatch(ctx context.Context, userID ulid.ULID, transactionIDs []ulid.ULID) ([]*Suggestion, error) {
	if s.Client == nil {
		return nil, appErrors.ErrAIUnavailable
	}
	if len(transactionIDs) == 0 {
		return nil, appErrors.NewValidationError("transaction_ids", "no transaction ids provided")
	}

	results := make([]*Suggestion, len(transactionIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, id := range transactionIDs {
		i, id := i, id
		g.Go(func() error {
			tx, err := s.Transactions.GetTransactionByID(gctx, id, userID)
			if err != nil {
				return nil
			}

			category, err := s.Categorize(gctx, tx.Title)
			if err != nil {
				return nil
			}

			results[i] = &Suggestion{
				TransactionId:     id,
				Title:             tx.Title,
				CurrentCategory:   tx.Category,
				SuggestedCategory: category,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	suggestions := make([]*Suggestion, 0, len(transactionIDs))
	for _, suggestion := range results {
		if suggestion != nil {
			suggestions = append(suggestions, suggestion)
		}
	}
	return suggestions, nil
}

// ExtractReceipt pulls transaction fields out of a receipt or bill image.
// The image may arrive as a bare base64 string or a full data URL.
func (s *Service) ExtractReceipt(ctx context.Context, image string) (*ReceiptData, error) {
	if s.Client == nil {
		return nil, appErrors.ErrAIUnavailable
	}

	image = strings.TrimSpace(image)
	if image == "" {
		return nil, appErrors.NewValidationError("image", "base64 image data is required")
	}
	image = dataURLPrefix.ReplaceAllString(image, "")

	system := `You are a financial receipt/bill analyzer. Extract transaction information from images and return it in JSON format.

Extract the following:
- title: A brief description of the transaction (e.g., "Grocery Shopping at Walmart", "Electricity Bill")
- amount: The total amount as a number (no currency symbols, just the number)
- category: One of these categories: ` + strings.Join(transaction.ReceiptCategories, ", ") + `
- date: The transaction date in YYYY-MM-DD format (if not visible, use today's date)
- type: Either "income" or "expense" (receipts are usually expenses)

Rules:
1. Be accurate with the amount - look for "Total", "Amount Due", or similar
2. Choose the most appropriate category
3. For bills, use "Bills" category
4. For shopping receipts, categorize based on items (Food for groceries, etc.)
5. If you can't determine something, make a reasonable guess

Return ONLY valid JSON in this exact format:
{
  "title": "Description here",
  "amount": "1234.56",
  "category": "Food",
  "date": "2024-01-15",
  "type": "expense"
}`

	answer, err := s.Client.Complete(ctx, s.VisionModel, []Message{
		TextMessage("system", system),
		{
			Role: "user",
			Content: []ContentPart{
				{Type: "text", Text: "Extract the transaction details from this receipt/bill image:"},
				{Type: "image_url", ImageURL: &ImageURL{URL: "data:image/jpeg;base64," + image}},
			},
		},
	}, receiptTemperature, receiptMaxTokens)
	if err != nil {
		return nil, appErrors.WrapError(err, "AI_ERROR", "Failed to extract transaction from image", http.StatusBadGateway)
	}

	receipt, err := parseReceipt(answer, s.now())
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// parseReceipt extracts the first JSON object from the model answer and
// normalizes its fields. Models sometimes wrap the object in prose or code
// fences and return the amount as a quoted string.
func parseReceipt(answer string, today time.Time) (*ReceiptData, error) {
	raw := jsonObject.FindString(answer)
	if raw == "" {
		return nil, appErrors.NewAppError("RECEIPT_PARSE_ERROR", "Could not parse receipt data from the image", http.StatusUnprocessableEntity)
	}

	var fields struct {
		Title    string `json:"title"`
		Amount   any    `json:"amount"`
		Category string `json:"category"`
		Date     string `json:"date"`
		Type     string `json:"type"`
	}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, appErrors.NewAppError("RECEIPT_PARSE_ERROR", "Could not parse receipt data from the image", http.StatusUnprocessableEntity)
	}

	if fields.Title == "" {
		return nil, appErrors.NewAppError("RECEIPT_PARSE_ERROR", "Receipt is missing a transaction title", http.StatusUnprocessableEntity)
	}

	amount, ok := toAmount(fields.Amount)
	if !ok {
		return nil, appErrors.NewAppError("RECEIPT_PARSE_ERROR", "Receipt is missing a transaction amount", http.StatusUnprocessableEntity)
	}

	if !transaction.IsReceiptCategory(fields.Category) {
		fields.Category = transaction.FallbackCategory
	}

	if _, err := time.Parse("2006-01-02", fields.Date); err != nil {
		fields.Date = today.Format("2006-01-02")
	}

	if !transaction.Types(fields.Type).IsValid() {
		fields.Type = string(transaction.TypeExpense)
	}

	return &ReceiptData{
		Title:    fields.Title,
		Amount:   amount,
		Category: fields.Category,
		Date:     fields.Date,
		Type:     fields.Type,
	}, nil
}

func toAmount(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case string:
		amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return amount, true
	default:
		return 0, false
	}
}
