package dashboard_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/dashboard"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

var ref = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

type fakeTransactionSource struct {
	getAllFn func(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error)
}

func (f *fakeTransactionSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error) {
	if f.getAllFn == nil {
		return nil, nil
	}
	return f.getAllFn(ctx, userID)
}

type fakeBudgetSource struct {
	getAllFn func(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error)
}

func (f *fakeBudgetSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	if f.getAllFn == nil {
		return nil, nil
	}
	return f.getAllFn(ctx, userID)
}

type fakeGoalSource struct {
	getAllFn func(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error)
}

func (f *fakeGoalSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	if f.getAllFn == nil {
		return nil, nil
	}
	return f.getAllFn(ctx, userID)
}

type fakeBillSource struct {
	getAllFn func(ctx context.Context, userID ulid.ULID) ([]*bill.Bill, error)
}

func (f *fakeBillSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*bill.Bill, error) {
	if f.getAllFn == nil {
		return nil, nil
	}
	return f.getAllFn(ctx, userID)
}

func newService(transactions []*transaction.Transaction, budgets []*budget.Budget, goals []*goal.Goal, bills []*bill.Bill) *dashboard.Service {
	return dashboard.NewService(
		&fakeTransactionSource{getAllFn: func(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error) {
			return transactions, nil
		}},
		&fakeBudgetSource{getAllFn: func(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
			return budgets, nil
		}},
		&fakeGoalSource{getAllFn: func(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
			return goals, nil
		}},
		&fakeBillSource{getAllFn: func(ctx context.Context, userID ulid.ULID) ([]*bill.Bill, error) {
			return bills, nil
		}},
		func() time.Time { return ref },
	)
}

func TestGetDashboardSummary(t *testing.T) {
	t.Parallel()

	transactions := []*transaction.Transaction{
		{Title: "Salary", Amount: 5000, Category: "Other", Type: transaction.TypeIncome, Date: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{Title: "Groceries", Amount: 800, Category: "Food & Dining", Type: transaction.TypeExpense, Date: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{Title: "Old groceries", Amount: 300, Category: "Food & Dining", Type: transaction.TypeExpense, Date: time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)},
	}
	budgets := []*budget.Budget{
		{Category: "Food & Dining", Amount: 1000, Month: "2025-03"},
		{Category: "Food & Dining", Amount: 900, Month: "2025-02"},
	}
	goals := []*goal.Goal{
		{Title: "Emergency fund", TargetAmount: 1000, CurrentAmount: 250},
	}
	bills := []*bill.Bill{
		{Name: "Rent", Amount: 1200, Category: "Bills", DueDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Internet", Amount: 60, Category: "Bills", DueDate: time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)},
	}

	resp, err := newService(transactions, budgets, goals, bills).GetDashboard(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}

	if resp.Summary.TotalIncome != 5000 {
		t.Errorf("TotalIncome = %v, want 5000", resp.Summary.TotalIncome)
	}
	if resp.Summary.TotalExpenses != 1100 {
		t.Errorf("TotalExpenses = %v, want 1100", resp.Summary.TotalExpenses)
	}
	if resp.Summary.Balance != 3900 {
		t.Errorf("Balance = %v, want 3900", resp.Summary.Balance)
	}
	if resp.Summary.SavingsRate != 78.0 {
		t.Errorf("SavingsRate = %v, want 78.0", resp.Summary.SavingsRate)
	}

	if resp.CurrentMonthExpenses != 800 {
		t.Errorf("CurrentMonthExpenses = %v, want 800", resp.CurrentMonthExpenses)
	}
	if resp.LastMonthExpenses != 300 {
		t.Errorf("LastMonthExpenses = %v, want 300", resp.LastMonthExpenses)
	}
	if got := resp.SpendingByCategory["Food & Dining"]; got != 800 {
		t.Errorf("SpendingByCategory[Food & Dining] = %v, want 800", got)
	}

	if len(resp.BudgetStatus) != 1 {
		t.Fatalf("len(BudgetStatus) = %d, want 1 (current month only)", len(resp.BudgetStatus))
	}
	status := resp.BudgetStatus[0]
	if status.Spent != 800 || status.Remaining != 200 || status.Percentage != 80.0 {
		t.Errorf("BudgetStatus = %+v, want spent 800 remaining 200 percentage 80", status)
	}

	if len(resp.Goals) != 1 || resp.Goals[0].Percentage != 25.0 {
		t.Errorf("Goals = %+v, want one goal at 25%%", resp.Goals)
	}

	if len(resp.UpcomingBills) != 1 || resp.UpcomingBills[0].Name != "Internet" {
		t.Errorf("UpcomingBills = %+v, want only the bill due after the reference date", resp.UpcomingBills)
	}
}

func TestGetDashboardLimits(t *testing.T) {
	t.Parallel()

	var transactions []*transaction.Transaction
	for i := 0; i < 14; i++ {
		transactions = append(transactions, &transaction.Transaction{
			Title:  fmt.Sprintf("tx-%d", i),
			Amount: 10,
			Type:   transaction.TypeExpense,
			Date:   ref.AddDate(0, 0, -i),
		})
	}

	var bills []*bill.Bill
	for i := 0; i < 8; i++ {
		bills = append(bills, &bill.Bill{
			Name:    fmt.Sprintf("bill-%d", i),
			Amount:  5,
			DueDate: ref.AddDate(0, 0, i),
		})
	}

	resp, err := newService(transactions, nil, nil, bills).GetDashboard(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}

	if len(resp.RecentTransactions) != 10 {
		t.Errorf("len(RecentTransactions) = %d, want 10", len(resp.RecentTransactions))
	}
	if len(resp.UpcomingBills) != 5 {
		t.Errorf("len(UpcomingBills) = %d, want 5", len(resp.UpcomingBills))
	}
	if resp.RecentTransactions[0].Title != "tx-0" {
		t.Errorf("RecentTransactions[0].Title = %q, want newest-first order preserved", resp.RecentTransactions[0].Title)
	}
}

func TestGetDashboardBillDueTodayIsUpcoming(t *testing.T) {
	t.Parallel()

	bills := []*bill.Bill{
		{Name: "Electricity", Amount: 90, DueDate: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)},
	}

	resp, err := newService(nil, nil, nil, bills).GetDashboard(context.Background(), ulid.Make())
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}

	if len(resp.UpcomingBills) != 1 {
		t.Fatalf("len(UpcomingBills) = %d, want 1 (due today counts as upcoming)", len(resp.UpcomingBills))
	}
}

func TestGetDashboardSourceError(t *testing.T) {
	t.Parallel()

	svc := dashboard.NewService(
		&fakeTransactionSource{getAllFn: func(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error) {
			return nil, fmt.Errorf("connection refused")
		}},
		&fakeBudgetSource{},
		&fakeGoalSource{},
		&fakeBillSource{},
		func() time.Time { return ref },
	)

	_, err := svc.GetDashboard(context.Background(), ulid.Make())
	if err == nil {
		t.Fatal("GetDashboard() error = nil, want database error")
	}

	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "DATABASE_ERROR" {
		t.Errorf("error = %v, want DATABASE_ERROR", err)
	}
}
