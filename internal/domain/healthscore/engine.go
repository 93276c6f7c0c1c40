package healthscore

import (
	"math"
	"time"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
)

// SubScore is one weighted dimension of the health score.
type SubScore struct {
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
	Label    string `json:"label"`
}

// Breakdown is the complete result of a health score computation.
type Breakdown struct {
	TotalScore      int      `json:"totalScore"`
	Rating          string   `json:"rating"`
	SavingsRatio    SubScore `json:"savingsRatio"`
	BudgetAdherence SubScore `json:"budgetAdherence"`
	GoalProgress    SubScore `json:"goalProgress"`
	BillManagement  SubScore `json:"billManagement"`
}

// Calculate derives the composite health score from the four collections at
// the reference time ref. Callers have already validated the inputs
// (non-negative amounts, well-formed months and dates); the computation is
// pure and total over any such input, so the same inputs and ref always
// produce the same Breakdown.
func Calculate(transactions []*transaction.Transaction, budgets []*budget.Budget, goals []*goal.Goal, bills []*bill.Bill, ref time.Time) Breakdown {
	savings := SavingsRatio(transactions)
	adherence := BudgetAdherence(transactions, budgets, ref)
	progress := GoalProgress(goals)
	billMgmt := BillManagement(bills, ref)

	total := savings.Score + adherence.Score + progress.Score + billMgmt.Score

	return Breakdown{
		TotalScore:      total,
		Rating:          Rating(total),
		SavingsRatio:    savings,
		BudgetAdherence: adherence,
		GoalProgress:    progress,
		BillManagement:  billMgmt,
	}
}

// SavingsRatio scores the share of all-time income that was not spent. With
// no income at all the dimension scores zero, not neutral.
func SavingsRatio(transactions []*transaction.Transaction) SubScore {
	var income, expenses float64
	for _, t := range transactions {
		switch t.Type {
		case transaction.TypeIncome:
			income += t.Amount
		case transaction.TypeExpense:
			expenses += t.Amount
		}
	}

	if income == 0 {
		return SubScore{Score: 0, MaxScore: SavingsRatioMax, Label: savingsRatioLabel}
	}

	rate := (income - expenses) / income * 100

	score := 0
	for _, band := range savingsBands {
		if rate > 0 && rate >= band.MinRate {
			score = roundHalfUp(rate / fullMarksRate * SavingsRatioMax * band.Multiplier)
			break
		}
	}

	return SubScore{Score: clampScore(score, SavingsRatioMax), MaxScore: SavingsRatioMax, Label: savingsRatioLabel}
}

// BudgetAdherence scores how closely spending in ref's month tracked that
// month's budgets. Without any budgets for that month the dimension is
// neutral. Overspending a category is clamped at overspendCap so one blown
// budget cannot drive its term below zero times the cap.
func BudgetAdherence(transactions []*transaction.Transaction, budgets []*budget.Budget, ref time.Time) SubScore {
	neutral := SubScore{
		Score:    roundHalfUp(BudgetAdherenceMax * neutralFactor),
		MaxScore: BudgetAdherenceMax,
		Label:    budgetAdherenceLabel,
	}

	if len(budgets) == 0 {
		return neutral
	}

	month := ref.Format(monthLayout)

	var current []*budget.Budget
	for _, b := range budgets {
		if b.Month == month {
			current = append(current, b)
		}
	}
	if len(current) == 0 {
		return neutral
	}

	spending := make(map[string]float64)
	for _, t := range transactions {
		if t.Type == transaction.TypeExpense && t.Date.Format(monthLayout) == month {
			spending[t.Category] += t.Amount
		}
	}

	var sum float64
	counted := 0
	for _, b := range current {
		if b.Amount <= 0 {
			continue
		}
		adherence := 1 - math.Min(spending[b.Category]/b.Amount, overspendCap)
		sum += math.Max(0, adherence)
		counted++
	}

	avg := neutralFactor
	if counted > 0 {
		avg = sum / float64(counted)
	}

	return SubScore{
		Score:    clampScore(roundHalfUp(avg*BudgetAdherenceMax), BudgetAdherenceMax),
		MaxScore: BudgetAdherenceMax,
		Label:    budgetAdherenceLabel,
	}
}

// GoalProgress scores average completion across every goal. Only goals with a
// positive target contribute progress, but the average still divides by the
// full goal count, so an unquantified goal dilutes the score instead of
// counting as complete.
func GoalProgress(goals []*goal.Goal) SubScore {
	if len(goals) == 0 {
		return SubScore{
			Score:    roundHalfUp(GoalProgressMax * neutralFactor),
			MaxScore: GoalProgressMax,
			Label:    goalProgressLabel,
		}
	}

	var sum float64
	for _, g := range goals {
		if g.TargetAmount > 0 {
			sum += math.Min(g.CurrentAmount/g.TargetAmount, 1)
		}
	}

	avg := sum / float64(len(goals))

	return SubScore{
		Score:    clampScore(roundHalfUp(avg*GoalProgressMax), GoalProgressMax),
		MaxScore: GoalProgressMax,
		Label:    goalProgressLabel,
	}
}

// BillManagement starts at the full ceiling and deducts a fixed penalty per
// overdue bill. A bill is overdue when its due date is strictly before ref's
// calendar date; bills due today do not count.
func BillManagement(bills []*bill.Bill, ref time.Time) SubScore {
	if len(bills) == 0 {
		return SubScore{Score: BillManagementMax, MaxScore: BillManagementMax, Label: billManagementLabel}
	}

	today := dateOf(ref)
	overdue := 0
	for _, b := range bills {
		if dateOf(b.DueDate).Before(today) {
			overdue++
		}
	}

	score := BillManagementMax - overdue*overdueBillPenalty
	if score < 0 {
		score = 0
	}

	return SubScore{
		Score:    clampScore(score, BillManagementMax),
		MaxScore: BillManagementMax,
		Label:    billManagementLabel,
	}
}

// Rating maps a total score to its label.
func Rating(totalScore int) string {
	for _, t := range ratingThresholds {
		if totalScore >= t.Min {
			return t.Label
		}
	}
	return ratingFloor
}

func roundHalfUp(x float64) int {
	return int(math.Round(x))
}

func clampScore(score, max int) int {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

// dateOf truncates t to its calendar date, discarding time of day and zone
// offset so comparisons are date-granular.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
