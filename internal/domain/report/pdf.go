package report

import (
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

// PDF output uses the core Helvetica font, which cannot render the rupee
// glyph, so amount columns are labeled INR instead.

func newReportPDF(title, period string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")

	if period != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 8, period, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	return pdf
}

func tableHeader(pdf *fpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(120, 120, 120)
	pdf.SetTextColor(255, 255, 255)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
}

// WriteTransactionsPDF renders the transactions table followed by bold
// income, expense and net rows.
func WriteTransactionsPDF(w io.Writer, report *TransactionReport) error {
	pdf := newReportPDF("Transactions Report", periodLabel(report.StartDate, report.EndDate))

	widths := []float64{30, 55, 35, 25, 35}
	tableHeader(pdf, []string{"Date", "Title", "Category", "Type", "Amount (INR)"}, widths)

	for _, tx := range report.Transactions {
		pdf.CellFormat(widths[0], 7, tx.Date.Format(dateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, tx.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, tx.Category, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, capitalize(string(tx.Type)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 7, pkg.FormatAmount(tx.Amount, 2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	totals := []struct {
		label  string
		amount float64
	}{
		{"Total Income:", report.TotalIncome},
		{"Total Expense:", report.TotalExpense},
		{"Net Balance:", report.NetBalance},
	}
	for _, total := range totals {
		pdf.CellFormat(widths[0]+widths[1]+widths[2], 7, "", "1", 0, "C", true, 0, "")
		pdf.CellFormat(widths[3], 7, total.label, "1", 0, "R", true, 0, "")
		pdf.CellFormat(widths[4], 7, pkg.FormatAmount(total.amount, 2), "1", 0, "R", true, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

// WriteBudgetsPDF renders the budget table with a closing TOTAL row.
func WriteBudgetsPDF(w io.Writer, report *BudgetReport) error {
	pdf := newReportPDF("Budget Report", periodLabel(report.StartDate, report.EndDate))

	widths := []float64{22, 38, 32, 32, 32, 24}
	tableHeader(pdf, []string{"Month", "Category", "Budget (INR)", "Spent (INR)", "Remaining (INR)", "Usage %"}, widths)

	var totalBudget, totalSpent float64
	for _, row := range report.Rows {
		pdf.CellFormat(widths[0], 7, row.Month, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, pkg.FormatAmount(row.Budget, 2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, pkg.FormatAmount(row.Spent, 2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, pkg.FormatAmount(row.Remaining, 2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, pkg.FormatAmount(row.Percentage, 1)+"%", "1", 0, "R", false, 0, "")
		pdf.Ln(-1)

		totalBudget += row.Budget
		totalSpent += row.Spent
	}

	var totalPercentage float64
	if totalBudget > 0 {
		totalPercentage = totalSpent / totalBudget * 100
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(widths[0], 7, "", "1", 0, "C", true, 0, "")
	pdf.CellFormat(widths[1], 7, "TOTAL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(widths[2], 7, pkg.FormatAmount(totalBudget, 2), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[3], 7, pkg.FormatAmount(totalSpent, 2), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[4], 7, pkg.FormatAmount(totalBudget-totalSpent, 2), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[5], 7, pkg.FormatAmount(totalPercentage, 1)+"%", "1", 0, "R", true, 0, "")
	pdf.Ln(-1)

	return pdf.Output(w)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
