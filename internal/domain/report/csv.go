package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteTransactionsCSV streams the report as a five-column CSV ending with
// income, expense and net summary rows.
func WriteTransactionsCSV(w io.Writer, report *TransactionReport) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Date", "Title", "Category", "Type", "Amount"}); err != nil {
		return err
	}

	for _, tx := range report.Transactions {
		record := []string{
			tx.Date.Format(dateLayout),
			tx.Title,
			tx.Category,
			string(tx.Type),
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	totals := [][]string{
		{"", "", "", "Total Income:", fmt.Sprintf("%.2f", report.TotalIncome)},
		{"", "", "", "Total Expense:", fmt.Sprintf("%.2f", report.TotalExpense)},
		{"", "", "", "Net Balance:", fmt.Sprintf("%.2f", report.NetBalance)},
	}
	for _, record := range totals {
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteBudgetsCSV streams one row per budget in the window.
func WriteBudgetsCSV(w io.Writer, report *BudgetReport) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Month", "Category", "Budget Amount", "Spent", "Remaining", "Usage %"}); err != nil {
		return err
	}

	for _, row := range report.Rows {
		record := []string{
			row.Month,
			row.Category,
			fmt.Sprintf("%.2f", row.Budget),
			fmt.Sprintf("%.2f", row.Spent),
			fmt.Sprintf("%.2f", row.Remaining),
			fmt.Sprintf("%.1f%%", row.Percentage),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
