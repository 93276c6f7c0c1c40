package report

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

const dateLayout = "2006-01-02"

type TransactionSource interface {
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error)
}

type BudgetSource interface {
	GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error)
}

type Service struct {
	Transactions TransactionSource
	Budgets      BudgetSource
}

// TransactionReport is a date-windowed listing with running totals. The
// window bounds are inclusive; empty bounds mean unbounded.
type TransactionReport struct {
	Transactions []*transaction.Transaction
	TotalIncome  float64
	TotalExpense float64
	NetBalance   float64
	StartDate    string
	EndDate      string
}

type BudgetReport struct {
	Rows      []*BudgetRow
	StartDate string
	EndDate   string
}

// BudgetRow pairs a budget with the spending recorded against it in its
// month.
type BudgetRow struct {
	Month      string
	Category   string
	Budget     float64
	Spent      float64
	Remaining  float64
	Percentage float64
}

func (s *Service) TransactionReport(ctx context.Context, userID ulid.ULID, startDate, endDate string) (*TransactionReport, error) {
	if err := validateDates(startDate, endDate); err != nil {
		return nil, err
	}

	transactions, err := s.Transactions.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	report := &TransactionReport{
		Transactions: make([]*transaction.Transaction, 0, len(transactions)),
		StartDate:    startDate,
		EndDate:      endDate,
	}

	for _, tx := range transactions {
		day := tx.Date.Format(dateLayout)
		if startDate != "" && day < startDate {
			continue
		}
		if endDate != "" && day > endDate {
			continue
		}

		report.Transactions = append(report.Transactions, tx)
		if tx.Type == transaction.TypeIncome {
			report.TotalIncome += tx.Amount
		} else {
			report.TotalExpense += tx.Amount
		}
	}

	report.NetBalance = report.TotalIncome - report.TotalExpense
	return report, nil
}

// BudgetReport reports each budget whose month falls in the window together
// with the expenses booked against its category that month.
func (s *Service) BudgetReport(ctx context.Context, userID ulid.ULID, startDate, endDate string) (*BudgetReport, error) {
	if err := validateDates(startDate, endDate); err != nil {
		return nil, err
	}

	budgets, err := s.Budgets.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	transactions, err := s.Transactions.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	// Spending per (month, category) over expenses only.
	spent := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Type != transaction.TypeExpense {
			continue
		}
		spent[tx.Date.Format(budget.MonthLayout)+"|"+tx.Category] += tx.Amount
	}

	startMonth, endMonth := monthBound(startDate), monthBound(endDate)

	report := &BudgetReport{
		Rows:      make([]*BudgetRow, 0, len(budgets)),
		StartDate: startDate,
		EndDate:   endDate,
	}

	for _, b := range budgets {
		if startMonth != "" && b.Month < startMonth {
			continue
		}
		if endMonth != "" && b.Month > endMonth {
			continue
		}

		used := spent[b.Month+"|"+b.Category]

		var percentage float64
		if b.Amount > 0 {
			percentage = used / b.Amount * 100
		}

		report.Rows = append(report.Rows, &BudgetRow{
			Month:      b.Month,
			Category:   b.Category,
			Budget:     b.Amount,
			Spent:      used,
			Remaining:  b.Amount - used,
			Percentage: percentage,
		})
	}

	return report, nil
}

func validateDates(startDate, endDate string) error {
	if startDate != "" {
		if _, err := time.Parse(dateLayout, startDate); err != nil {
			return appErrors.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
		}
	}
	if endDate != "" {
		if _, err := time.Parse(dateLayout, endDate); err != nil {
			return appErrors.NewValidationError("end_date", "must be a date in YYYY-MM-DD format")
		}
	}
	return nil
}

func monthBound(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

// periodLabel describes the report window for rendered output.
func periodLabel(startDate, endDate string) string {
	if startDate == "" && endDate == "" {
		return ""
	}

	start, end := startDate, endDate
	if start == "" {
		start = "Beginning"
	}
	if end == "" {
		end = "Present"
	}
	return "Period: " + start + " to " + end
}
