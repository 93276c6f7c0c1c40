package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

const (
	recentTransactionLimit = 10
	upcomingBillLimit      = 5
)

type TransactionSource interface {
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error)
}

type BudgetSource interface {
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error)
}

type GoalSource interface {
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error)
}

type BillSource interface {
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*bill.Bill, error)
}

// Service aggregates a user's finances into a single overview. The same
// overview feeds the dashboard endpoint and the AI assistant prompt.
type Service struct {
	Transactions TransactionSource
	Budgets      BudgetSource
	Goals        GoalSource
	Bills        BillSource
	Now          func() time.Time
}

func NewService(transactions TransactionSource, budgets BudgetSource, goals GoalSource, bills BillSource, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		Transactions: transactions,
		Budgets:      budgets,
		Goals:        goals,
		Bills:        bills,
		Now:          now,
	}
}

type DashboardResponse struct {
	Summary              *FinancialSummary     `json:"summary"`
	CurrentMonthExpenses float64               `json:"currentMonthExpenses"`
	LastMonthExpenses    float64               `json:"lastMonthExpenses"`
	SpendingByCategory   map[string]float64    `json:"spendingByCategory"`
	RecentTransactions   []*TransactionSummary `json:"recentTransactions"`
	BudgetStatus         []*BudgetStatusItem   `json:"budgetStatus"`
	Goals                []*GoalSummary        `json:"goals"`
	UpcomingBills        []*BillSummary        `json:"upcomingBills"`
}

type FinancialSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
	SavingsRate   float64 `json:"savingsRate"`
}

type TransactionSummary struct {
	Id       ulid.ULID `json:"id"`
	Title    string    `json:"title"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Type     string    `json:"type"`
	Date     time.Time `json:"date"`
}

type BudgetStatusItem struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

type GoalSummary struct {
	Id            ulid.ULID  `json:"id"`
	Title         string     `json:"title"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Percentage    float64    `json:"percentage"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

type BillSummary struct {
	Id       ulid.ULID `json:"id"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	DueDate  time.Time `json:"dueDate"`
}

// GetDashboard builds the overview for the reference month of s.Now().
// Budget status covers current-month budgets only, upcoming bills are the
// next five due today or later, and recent transactions keep the
// repository's newest-first order.
func (s *Service) GetDashboard(ctx context.Context, userID ulid.ULID) (*DashboardResponse, error) {
	transactions, err := s.Transactions.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	budgets, err := s.Budgets.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	goals, err := s.Goals.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	bills, err := s.Bills.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	now := s.Now()
	currentMonth := monthKey(now)
	lastMonth := monthKey(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0))

	var totalIncome, totalExpenses float64
	var currentMonthExpenses, lastMonthExpenses float64
	spendingByCategory := make(map[string]float64)

	for _, tx := range transactions {
		switch tx.Type {
		case transaction.TypeIncome:
			totalIncome += tx.Amount
		case transaction.TypeExpense:
			totalExpenses += tx.Amount

			switch monthKey(tx.Date) {
			case currentMonth:
				currentMonthExpenses += tx.Amount
				spendingByCategory[tx.Category] += tx.Amount
			case lastMonth:
				lastMonthExpenses += tx.Amount
			}
		}
	}

	balance := totalIncome - totalExpenses

	var savingsRate float64
	if totalIncome > 0 {
		savingsRate = round1(balance / totalIncome * 100)
	}

	recent := make([]*TransactionSummary, 0, recentTransactionLimit)
	for _, tx := range transactions {
		if len(recent) == recentTransactionLimit {
			break
		}

		recent = append(recent, &TransactionSummary{
			Id:       tx.Id,
			Title:    tx.Title,
			Amount:   tx.Amount,
			Category: tx.Category,
			Type:     string(tx.Type),
			Date:     tx.Date,
		})
	}

	budgetStatus := make([]*BudgetStatusItem, 0)
	for _, b := range budgets {
		if b.Month != currentMonth {
			continue
		}

		spent := spendingByCategory[b.Category]

		var percentage float64
		if b.Amount > 0 {
			percentage = round1(spent / b.Amount * 100)
		}

		budgetStatus = append(budgetStatus, &BudgetStatusItem{
			Category:   b.Category,
			Amount:     b.Amount,
			Spent:      spent,
			Remaining:  b.Amount - spent,
			Percentage: percentage,
		})
	}

	goalSummaries := make([]*GoalSummary, 0, len(goals))
	for _, g := range goals {
		goalSummaries = append(goalSummaries, &GoalSummary{
			Id:            g.Id,
			Title:         g.Title,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Percentage:    round1(g.Progress() * 100),
			Deadline:      g.Deadline,
		})
	}

	today := dateOf(now)
	upcoming := make([]*BillSummary, 0, upcomingBillLimit)
	for _, bl := range bills {
		if dateOf(bl.DueDate).Before(today) {
			continue
		}
		if len(upcoming) == upcomingBillLimit {
			break
		}

		upcoming = append(upcoming, &BillSummary{
			Id:       bl.Id,
			Name:     bl.Name,
			Amount:   bl.Amount,
			Category: bl.Category,
			DueDate:  bl.DueDate,
		})
	}

	return &DashboardResponse{
		Summary: &FinancialSummary{
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			Balance:       balance,
			SavingsRate:   savingsRate,
		},
		CurrentMonthExpenses: currentMonthExpenses,
		LastMonthExpenses:    lastMonthExpenses,
		SpendingByCategory:   spendingByCategory,
		RecentTransactions:   recent,
		BudgetStatus:         budgetStatus,
		Goals:                goalSummaries,
		UpcomingBills:        upcoming,
	}, nil
}

func monthKey(t time.Time) string {
	return t.Format(budget.MonthLayout)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
