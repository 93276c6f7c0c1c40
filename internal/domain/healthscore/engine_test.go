package healthscore_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/healthscore"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
)

// ref pins the computation to mid March 2025 so month selection and overdue
// checks are reproducible.
var ref = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return d
}

func income(t *testing.T, amount float64, date string) *transaction.Transaction {
	t.Helper()
	return &transaction.Transaction{Title: "income", Amount: amount, Category: "Other", Type: transaction.TypeIncome, Date: day(t, date)}
}

func expense(t *testing.T, amount float64, category, date string) *transaction.Transaction {
	t.Helper()
	return &transaction.Transaction{Title: "expense", Amount: amount, Category: category, Type: transaction.TypeExpense, Date: day(t, date)}
}

func monthBudget(category string, amount float64, month string) *budget.Budget {
	return &budget.Budget{Category: category, Amount: amount, Month: month}
}

func savingsGoal(target, current float64) *goal.Goal {
	return &goal.Goal{Title: "goal", TargetAmount: target, CurrentAmount: current}
}

func dueBill(t *testing.T, date string) *bill.Bill {
	t.Helper()
	return &bill.Bill{Name: "bill", Amount: 100, Category: "Bills", DueDate: day(t, date)}
}

func TestSavingsRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		transactions []*transaction.Transaction
		wantScore    int
	}{
		{
			name:      "no transactions",
			wantScore: 0,
		},
		{
			name: "income without expenses",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
			},
			wantScore: 40,
		},
		{
			name: "rate at fifty percent earns the ceiling",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 500, "Food", "2025-03-05"),
			},
			wantScore: 40,
		},
		{
			name: "forty percent rate lands in the thirty band",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 600, "Food", "2025-03-05"),
			},
			wantScore: 29,
		},
		{
			name: "thirty percent boundary",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 700, "Food", "2025-03-05"),
			},
			wantScore: 22,
		},
		{
			name: "twenty five percent rate lands in the twenty band",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 750, "Food", "2025-03-05"),
			},
			wantScore: 14,
		},
		{
			name: "twenty percent boundary",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 800, "Food", "2025-03-05"),
			},
			wantScore: 11,
		},
		{
			name: "fifteen percent rate lands in the ten band",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 850, "Food", "2025-03-05"),
			},
			wantScore: 6,
		},
		{
			name: "ten percent boundary",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 900, "Food", "2025-03-05"),
			},
			wantScore: 4,
		},
		{
			name: "barely positive rate",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 950, "Food", "2025-03-05"),
			},
			wantScore: 1,
		},
		{
			name: "break even scores zero",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 1000, "Food", "2025-03-05"),
			},
			wantScore: 0,
		},
		{
			name: "spending beyond income scores zero",
			transactions: []*transaction.Transaction{
				income(t, 1000, "2025-03-01"),
				expense(t, 1500, "Food", "2025-03-05"),
			},
			wantScore: 0,
		},
		{
			name: "expenses without income score zero",
			transactions: []*transaction.Transaction{
				expense(t, 500, "Food", "2025-03-05"),
			},
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := healthscore.SavingsRatio(tt.transactions)
			if got.Score != tt.wantScore {
				t.Fatalf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.MaxScore != healthscore.SavingsRatioMax {
				t.Fatalf("max score = %d, want %d", got.MaxScore, healthscore.SavingsRatioMax)
			}
			if got.Label != "Savings Ratio" {
				t.Fatalf("label = %q", got.Label)
			}
		})
	}
}

func TestBudgetAdherence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		transactions []*transaction.Transaction
		budgets      []*budget.Budget
		wantScore    int
	}{
		{
			name:      "no budgets is neutral",
			wantScore: 13,
		},
		{
			name: "budgets only in other months is neutral",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-02"),
				monthBudget("Food", 100, "2025-04"),
			},
			wantScore: 13,
		},
		{
			name: "unspent budget earns the ceiling",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
			},
			wantScore: 25,
		},
		{
			name: "half spent budget",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 50, "Food", "2025-03-10"),
			},
			wantScore: 13,
		},
		{
			name: "thirty percent spent",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 30, "Food", "2025-03-10"),
			},
			wantScore: 18,
		},
		{
			name: "three quarters spent",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 75, "Food", "2025-03-10"),
			},
			wantScore: 6,
		},
		{
			name: "fully spent budget scores zero",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 100, "Food", "2025-03-10"),
			},
			wantScore: 0,
		},
		{
			name: "moderate overspend scores zero",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 125, "Food", "2025-03-10"),
			},
			wantScore: 0,
		},
		{
			name: "heavy overspend is capped not compounded",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
				monthBudget("Transport", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 10000, "Food", "2025-03-10"),
			},
			wantScore: 13,
		},
		{
			name: "average across categories",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
				monthBudget("Transport", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 200, "Transport", "2025-03-12"),
			},
			wantScore: 13,
		},
		{
			name: "zero amount budget is skipped",
			budgets: []*budget.Budget{
				monthBudget("Food", 0, "2025-03"),
				monthBudget("Transport", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 50, "Transport", "2025-03-12"),
			},
			wantScore: 13,
		},
		{
			name: "only zero amount budgets is neutral",
			budgets: []*budget.Budget{
				monthBudget("Food", 0, "2025-03"),
			},
			wantScore: 13,
		},
		{
			name: "expense in another month is ignored",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 80, "Food", "2025-02-10"),
			},
			wantScore: 25,
		},
		{
			name: "income in a budgeted category is ignored",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				income(t, 500, "2025-03-05"),
				{Title: "refund", Amount: 200, Category: "Food", Type: transaction.TypeIncome, Date: day(t, "2025-03-06")},
			},
			wantScore: 25,
		},
		{
			name: "spending in unbudgeted categories is ignored",
			budgets: []*budget.Budget{
				monthBudget("Food", 100, "2025-03"),
			},
			transactions: []*transaction.Transaction{
				expense(t, 90, "Transport", "2025-03-09"),
			},
			wantScore: 25,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := healthscore.BudgetAdherence(tt.transactions, tt.budgets, ref)
			if got.Score != tt.wantScore {
				t.Fatalf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.MaxScore != healthscore.BudgetAdherenceMax {
				t.Fatalf("max score = %d, want %d", got.MaxScore, healthscore.BudgetAdherenceMax)
			}
			if got.Label != "Budget Adherence" {
				t.Fatalf("label = %q", got.Label)
			}
		})
	}
}

func TestGoalProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		goals     []*goal.Goal
		wantScore int
	}{
		{
			name:      "no goals is neutral",
			wantScore: 13,
		},
		{
			name:      "half complete",
			goals:     []*goal.Goal{savingsGoal(1000, 500)},
			wantScore: 13,
		},
		{
			name:      "quarter complete",
			goals:     []*goal.Goal{savingsGoal(1000, 250)},
			wantScore: 6,
		},
		{
			name:      "complete goal earns the ceiling",
			goals:     []*goal.Goal{savingsGoal(1000, 1000)},
			wantScore: 25,
		},
		{
			name:      "overfunded goal is capped at complete",
			goals:     []*goal.Goal{savingsGoal(1000, 2500)},
			wantScore: 25,
		},
		{
			name:      "zero target goal scores zero",
			goals:     []*goal.Goal{savingsGoal(0, 500)},
			wantScore: 0,
		},
		{
			name: "zero target goal dilutes the average",
			goals: []*goal.Goal{
				savingsGoal(1000, 1000),
				savingsGoal(0, 0),
			},
			wantScore: 13,
		},
		{
			name: "average across goals",
			goals: []*goal.Goal{
				savingsGoal(1000, 500),
				savingsGoal(1000, 1000),
			},
			wantScore: 19,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := healthscore.GoalProgress(tt.goals)
			if got.Score != tt.wantScore {
				t.Fatalf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.MaxScore != healthscore.GoalProgressMax {
				t.Fatalf("max score = %d, want %d", got.MaxScore, healthscore.GoalProgressMax)
			}
			if got.Label != "Goal Progress" {
				t.Fatalf("label = %q", got.Label)
			}
		})
	}
}

func TestBillManagement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bills     []*bill.Bill
		wantScore int
	}{
		{
			name:      "no bills earns full marks",
			wantScore: 10,
		},
		{
			name: "future bills earn full marks",
			bills: []*bill.Bill{
				dueBill(t, "2025-03-20"),
				dueBill(t, "2025-04-01"),
			},
			wantScore: 10,
		},
		{
			name: "bill due today is not overdue",
			bills: []*bill.Bill{
				dueBill(t, "2025-03-15"),
			},
			wantScore: 10,
		},
		{
			name: "one overdue bill",
			bills: []*bill.Bill{
				dueBill(t, "2025-03-14"),
			},
			wantScore: 7,
		},
		{
			name: "two overdue bills",
			bills: []*bill.Bill{
				dueBill(t, "2025-03-01"),
				dueBill(t, "2025-02-20"),
			},
			wantScore: 4,
		},
		{
			name: "three overdue bills",
			bills: []*bill.Bill{
				dueBill(t, "2025-03-01"),
				dueBill(t, "2025-02-20"),
				dueBill(t, "2025-01-05"),
			},
			wantScore: 1,
		},
		{
			name: "four overdue bills floor at zero",
			bills: []*bill.Bill{
				dueBill(t, "2025-03-01"),
				dueBill(t, "2025-02-20"),
				dueBill(t, "2025-01-05"),
				dueBill(t, "2024-12-31"),
			},
			wantScore: 0,
		},
		{
			name: "overdue and future bills mixed",
			bills: []*bill.Bill{
				dueBill(t, "2025-03-10"),
				dueBill(t, "2025-03-25"),
				dueBill(t, "2025-05-01"),
			},
			wantScore: 7,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := healthscore.BillManagement(tt.bills, ref)
			if got.Score != tt.wantScore {
				t.Fatalf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.MaxScore != healthscore.BillManagementMax {
				t.Fatalf("max score = %d, want %d", got.MaxScore, healthscore.BillManagementMax)
			}
			if got.Label != "Bill Management" {
				t.Fatalf("label = %q", got.Label)
			}
		})
	}
}

func TestRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int
		want  string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89, "Very Good"},
		{75, "Very Good"},
		{74, "Good"},
		{60, "Good"},
		{59, "Fair"},
		{45, "Fair"},
		{44, "Needs Improvement"},
		{10, "Needs Improvement"},
		{0, "Needs Improvement"},
	}

	for _, tt := range tests {
		if got := healthscore.Rating(tt.total); got != tt.want {
			t.Fatalf("Rating(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestCalculateEmptyData(t *testing.T) {
	t.Parallel()

	got := healthscore.Calculate(nil, nil, nil, nil, ref)

	want := healthscore.Breakdown{
		TotalScore:      36,
		Rating:          "Needs Improvement",
		SavingsRatio:    healthscore.SubScore{Score: 0, MaxScore: 40, Label: "Savings Ratio"},
		BudgetAdherence: healthscore.SubScore{Score: 13, MaxScore: 25, Label: "Budget Adherence"},
		GoalProgress:    healthscore.SubScore{Score: 13, MaxScore: 25, Label: "Goal Progress"},
		BillManagement:  healthscore.SubScore{Score: 10, MaxScore: 10, Label: "Bill Management"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("breakdown = %+v, want %+v", got, want)
	}
}

func TestCalculateComposedScenario(t *testing.T) {
	t.Parallel()

	transactions := []*transaction.Transaction{
		income(t, 4000, "2025-03-01"),
		expense(t, 2000, "Food", "2025-03-10"),
	}
	budgets := []*budget.Budget{
		monthBudget("Food", 4000, "2025-03"),
	}
	goals := []*goal.Goal{
		savingsGoal(1000, 500),
	}
	bills := []*bill.Bill{
		dueBill(t, "2025-04-01"),
	}

	got := healthscore.Calculate(transactions, budgets, goals, bills, ref)

	if got.SavingsRatio.Score != 40 {
		t.Fatalf("savings score = %d, want 40", got.SavingsRatio.Score)
	}
	if got.BudgetAdherence.Score != 13 {
		t.Fatalf("adherence score = %d, want 13", got.BudgetAdherence.Score)
	}
	if got.GoalProgress.Score != 13 {
		t.Fatalf("goal score = %d, want 13", got.GoalProgress.Score)
	}
	if got.BillManagement.Score != 10 {
		t.Fatalf("bill score = %d, want 10", got.BillManagement.Score)
	}
	if got.TotalScore != 76 {
		t.Fatalf("total = %d, want 76", got.TotalScore)
	}
	if got.Rating != "Very Good" {
		t.Fatalf("rating = %q, want %q", got.Rating, "Very Good")
	}

	sum := got.SavingsRatio.Score + got.BudgetAdherence.Score + got.GoalProgress.Score + got.BillManagement.Score
	if got.TotalScore != sum {
		t.Fatalf("total %d does not equal sum of parts %d", got.TotalScore, sum)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	t.Parallel()

	transactions := []*transaction.Transaction{
		income(t, 3200, "2025-03-02"),
		expense(t, 1100, "Food", "2025-03-04"),
		expense(t, 600, "Transport", "2025-03-08"),
	}
	budgets := []*budget.Budget{
		monthBudget("Food", 1500, "2025-03"),
		monthBudget("Transport", 500, "2025-03"),
	}
	goals := []*goal.Goal{savingsGoal(5000, 1250)}
	bills := []*bill.Bill{dueBill(t, "2025-03-12"), dueBill(t, "2025-03-28")}

	first := healthscore.Calculate(transactions, budgets, goals, bills, ref)
	second := healthscore.Calculate(transactions, budgets, goals, bills, ref)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different breakdowns: %+v vs %+v", first, second)
	}
}

func TestCalculateReferenceDateSelectsMonth(t *testing.T) {
	t.Parallel()

	transactions := []*transaction.Transaction{
		expense(t, 100, "Food", "2025-03-10"),
	}
	budgets := []*budget.Budget{
		monthBudget("Food", 100, "2025-03"),
	}

	march := healthscore.Calculate(transactions, budgets, nil, nil, ref)
	if march.BudgetAdherence.Score != 0 {
		t.Fatalf("march adherence = %d, want 0", march.BudgetAdherence.Score)
	}

	april := healthscore.Calculate(transactions, budgets, nil, nil, time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC))
	if april.BudgetAdherence.Score != 13 {
		t.Fatalf("april adherence = %d, want neutral 13", april.BudgetAdherence.Score)
	}
}
