package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/dashboard"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

const promptGoalLimit = 5

// BuildSystemPrompt renders the assistant instructions plus the user's
// financial snapshot. Amounts are formatted in rupees because the product
// targets Indian users and the model is told to answer the same way.
func BuildSystemPrompt(overview *dashboard.DashboardResponse) string {
	change := overview.CurrentMonthExpenses - overview.LastMonthExpenses
	changeSign := ""
	if change > 0 {
		changeSign = "+"
	}
	if change < 0 {
		change = -change
	}

	goals := overview.Goals
	if len(goals) > promptGoalLimit {
		goals = goals[:promptGoalLimit]
	}

	return fmt.Sprintf(`You are SmartFinance.AI, a helpful personal finance assistant for Indian users. Analyze the user's actual financial data and provide clear, actionable advice using Indian Rupees (₹).

IMPORTANT FORMATTING RULES:
- ALWAYS use ₹ (Indian Rupee) symbol for all amounts
- NEVER use asterisks (*) for bold or emphasis
- NEVER use markdown formatting symbols
- Use simple bullet points with dashes (-)
- Use plain text only
- Use line breaks for clarity
- Use emojis sparingly (💰 📊 ✅ ⚠️ 💡)

USER'S FINANCIAL DATA:

Summary:
  Total Income: ₹%s
  Total Expenses: ₹%s
  Net Balance: ₹%s

Monthly Comparison:
  Current Month Spending: ₹%s
  Last Month Spending: ₹%s
  Change: %s₹%s

Spending by Category:
%s

Active Budgets: %d
Savings Goals: %d

Goals Progress:
%s

Upcoming Bills: %d
%s

Recent Transactions (last 10):
%s

HOW TO RESPOND:
1. Answer questions using the actual data above
2. Be specific - use real numbers from their transactions
3. Always use ₹ symbol for amounts
4. Structure responses with clear sections (use line breaks)
5. Keep it conversational and easy to understand
6. Provide actionable tips based on their spending patterns
7. NO markdown symbols - plain text only
8. Reference their actual budgets, goals, and bills when relevant

Remember: Be helpful, specific, and use their actual data!`,
		pkg.FormatAmount(overview.Summary.TotalIncome, 2),
		pkg.FormatAmount(overview.Summary.TotalExpenses, 2),
		pkg.FormatAmount(overview.Summary.Balance, 2),
		pkg.FormatAmount(overview.CurrentMonthExpenses, 2),
		pkg.FormatAmount(overview.LastMonthExpenses, 2),
		changeSign,
		pkg.FormatAmount(change, 2),
		categoryBreakdown(overview.SpendingByCategory),
		len(overview.BudgetStatus),
		len(overview.Goals),
		goalsProgress(goals),
		len(overview.UpcomingBills),
		upcomingBills(overview.UpcomingBills),
		recentTransactions(overview.RecentTransactions),
	)
}

func categoryBreakdown(spending map[string]float64) string {
	if len(spending) == 0 {
		return "  No expenses recorded"
	}

	categories := make([]string, 0, len(spending))
	for category := range spending {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	lines := make([]string, 0, len(categories))
	for _, category := range categories {
		lines = append(lines, fmt.Sprintf("  - %s: ₹%s", category, pkg.FormatAmount(spending[category], 2)))
	}
	return strings.Join(lines, "\n")
}

func goalsProgress(goals []*dashboard.GoalSummary) string {
	if len(goals) == 0 {
		return "  No active goals"
	}

	lines := make([]string, 0, len(goals))
	for _, g := range goals {
		lines = append(lines, fmt.Sprintf("  - %s: ₹%s / ₹%s (%.0f%%)",
			g.Title, pkg.FormatAmount(g.CurrentAmount, 0), pkg.FormatAmount(g.TargetAmount, 0), g.Percentage))
	}
	return strings.Join(lines, "\n")
}

func upcomingBills(bills []*dashboard.BillSummary) string {
	if len(bills) == 0 {
		return "  No upcoming bills"
	}

	lines := make([]string, 0, len(bills))
	for _, b := range bills {
		lines = append(lines, fmt.Sprintf("  - %s: ₹%s due on %s",
			b.Name, pkg.FormatAmount(b.Amount, 0), b.DueDate.Format("2006-01-02")))
	}
	return strings.Join(lines, "\n")
}

func recentTransactions(transactions []*dashboard.TransactionSummary) string {
	if len(transactions) == 0 {
		return "  No transactions yet"
	}

	lines := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		lines = append(lines, fmt.Sprintf("  - %s: %s (%s) - ₹%s [%s]",
			tx.Date.Format("2006-01-02"), tx.Title, tx.Category, pkg.FormatAmount(tx.Amount, 2), tx.Type))
	}
	return strings.Join(lines, "\n")
}
