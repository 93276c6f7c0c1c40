package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/report"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

type fakeTransactionSource struct {
	transactions []*transaction.Transaction
}

func (f *fakeTransactionSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error) {
	return f.transactions, nil
}

type fakeBudgetSource struct {
	budgets []*budget.Budget
}

func (f *fakeBudgetSource) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	return f.budgets, nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func testTransactions() []*transaction.Transaction {
	return []*transaction.Transaction{
		{Title: "Salary", Amount: 5000, Category: "Other", Type: transaction.TypeIncome, Date: day(2025, time.March, 1)},
		{Title: "Groceries", Amount: 800, Category: "Food & Dining", Type: transaction.TypeExpense, Date: day(2025, time.March, 15)},
		{Title: "Cab", Amount: 100, Category: "Transportation", Type: transaction.TypeExpense, Date: day(2025, time.April, 2)},
	}
}

func TestTransactionReportWindow(t *testing.T) {
	t.Parallel()

	svc := &report.Service{Transactions: &fakeTransactionSource{transactions: testTransactions()}}

	tests := []struct {
		name        string
		start, end  string
		wantRows    int
		wantIncome  float64
		wantExpense float64
	}{
		{"unbounded", "", "", 3, 5000, 900},
		{"march only", "2025-03-01", "2025-03-31", 2, 5000, 800},
		{"start bound is inclusive", "2025-03-15", "", 2, 0, 900},
		{"end bound is inclusive", "", "2025-03-01", 1, 5000, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.TransactionReport(context.Background(), ulid.Make(), tt.start, tt.end)
			if err != nil {
				t.Fatalf("TransactionReport() error = %v", err)
			}

			if len(got.Transactions) != tt.wantRows {
				t.Errorf("rows = %d, want %d", len(got.Transactions), tt.wantRows)
			}
			if got.TotalIncome != tt.wantIncome || got.TotalExpense != tt.wantExpense {
				t.Errorf("totals = %v income %v expense, want %v and %v",
					got.TotalIncome, got.TotalExpense, tt.wantIncome, tt.wantExpense)
			}
			if got.NetBalance != tt.wantIncome-tt.wantExpense {
				t.Errorf("NetBalance = %v, want %v", got.NetBalance, tt.wantIncome-tt.wantExpense)
			}
		})
	}
}

func TestTransactionReportRejectsBadDates(t *testing.T) {
	t.Parallel()

	svc := &report.Service{Transactions: &fakeTransactionSource{}}

	_, err := svc.TransactionReport(context.Background(), ulid.Make(), "03/01/2025", "")
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %v, want VALIDATION_ERROR", err)
	}
}

func TestBudgetReportSpending(t *testing.T) {
	t.Parallel()

	budgets := []*budget.Budget{
		{Category: "Food & Dining", Amount: 1000, Month: "2025-03"},
		{Category: "Food & Dining", Amount: 900, Month: "2025-02"},
		{Category: "Transportation", Amount: 0, Month: "2025-03"},
	}
	transactions := []*transaction.Transaction{
		{Title: "Groceries", Amount: 300, Category: "Food & Dining", Type: transaction.TypeExpense, Date: day(2025, time.March, 5)},
		{Title: "Restaurant", Amount: 200, Category: "Food & Dining", Type: transaction.TypeExpense, Date: day(2025, time.March, 20)},
		{Title: "Old groceries", Amount: 100, Category: "Food & Dining", Type: transaction.TypeExpense, Date: day(2025, time.February, 10)},
		{Title: "Refund", Amount: 50, Category: "Food & Dining", Type: transaction.TypeIncome, Date: day(2025, time.March, 21)},
	}

	svc := &report.Service{
		Transactions: &fakeTransactionSource{transactions: transactions},
		Budgets:      &fakeBudgetSource{budgets: budgets},
	}

	got, err := svc.BudgetReport(context.Background(), ulid.Make(), "", "")
	if err != nil {
		t.Fatalf("BudgetReport() error = %v", err)
	}

	if len(got.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(got.Rows))
	}

	march := got.Rows[0]
	if march.Spent != 500 || march.Remaining != 500 || march.Percentage != 50 {
		t.Errorf("march row = %+v, want spent 500 remaining 500 usage 50%%", march)
	}

	february := got.Rows[1]
	if february.Spent != 100 {
		t.Errorf("february row spent = %v, want 100", february.Spent)
	}

	zeroBudget := got.Rows[2]
	if zeroBudget.Percentage != 0 {
		t.Errorf("zero budget percentage = %v, want 0", zeroBudget.Percentage)
	}

	windowed, err := svc.BudgetReport(context.Background(), ulid.Make(), "2025-03-01", "")
	if err != nil {
		t.Fatalf("BudgetReport(window) error = %v", err)
	}
	if len(windowed.Rows) != 2 {
		t.Errorf("windowed rows = %d, want 2 (february excluded)", len(windowed.Rows))
	}
}

func TestWriteTransactionsCSV(t *testing.T) {
	t.Parallel()

	rep := &report.TransactionReport{
		Transactions: []*transaction.Transaction{
			{Title: "Salary", Amount: 5000, Category: "Other", Type: transaction.TypeIncome, Date: day(2025, time.March, 10)},
			{Title: "Groceries", Amount: 800.5, Category: "Food & Dining", Type: transaction.TypeExpense, Date: day(2025, time.March, 11)},
		},
		TotalIncome:  5000,
		TotalExpense: 800.5,
		NetBalance:   4199.5,
	}

	var buf bytes.Buffer
	if err := report.WriteTransactionsCSV(&buf, rep); err != nil {
		t.Fatalf("WriteTransactionsCSV() error = %v", err)
	}

	want := strings.Join([]string{
		"Date,Title,Category,Type,Amount",
		"2025-03-10,Salary,Other,income,5000",
		"2025-03-11,Groceries,Food & Dining,expense,800.5",
		",,,Total Income:,5000.00",
		",,,Total Expense:,800.50",
		",,,Net Balance:,4199.50",
		"",
	}, "\n")

	if buf.String() != want {
		t.Errorf("csv output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteBudgetsCSV(t *testing.T) {
	t.Parallel()

	rep := &report.BudgetReport{
		Rows: []*report.BudgetRow{
			{Month: "2025-03", Category: "Food & Dining", Budget: 1000, Spent: 500, Remaining: 500, Percentage: 50},
		},
	}

	var buf bytes.Buffer
	if err := report.WriteBudgetsCSV(&buf, rep); err != nil {
		t.Fatalf("WriteBudgetsCSV() error = %v", err)
	}

	want := strings.Join([]string{
		"Month,Category,Budget Amount,Spent,Remaining,Usage %",
		"2025-03,Food & Dining,1000.00,500.00,500.00,50.0%",
		"",
	}, "\n")

	if buf.String() != want {
		t.Errorf("csv output =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWritePDFReports(t *testing.T) {
	t.Parallel()

	txReport := &report.TransactionReport{
		Transactions: []*transaction.Transaction{
			{Title: "Salary", Amount: 5000, Category: "Other", Type: transaction.TypeIncome, Date: day(2025, time.March, 10)},
		},
		TotalIncome: 5000,
		NetBalance:  5000,
		StartDate:   "2025-03-01",
	}

	var txBuf bytes.Buffer
	if err := report.WriteTransactionsPDF(&txBuf, txReport); err != nil {
		t.Fatalf("WriteTransactionsPDF() error = %v", err)
	}
	if !bytes.HasPrefix(txBuf.Bytes(), []byte("%PDF")) {
		t.Error("transactions output is not a PDF document")
	}

	budgetReport := &report.BudgetReport{
		Rows: []*report.BudgetRow{
			{Month: "2025-03", Category: "Food & Dining", Budget: 1000, Spent: 500, Remaining: 500, Percentage: 50},
		},
	}

	var budgetBuf bytes.Buffer
	if err := report.WriteBudgetsPDF(&budgetBuf, budgetReport); err != nil {
		t.Fatalf("WriteBudgetsPDF() error = %v", err)
	}
	if !bytes.HasPrefix(budgetBuf.Bytes(), []byte("%PDF")) {
		t.Error("budgets output is not a PDF document")
	}
}
