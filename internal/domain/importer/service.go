package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/xuri/excelize/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

// MaxRowErrors bounds the error list returned to the client. Parsing still
// walks every row so the imported and skipped counts stay accurate.
const MaxRowErrors = 100

const (
	sourceCSV   = "csv"
	sourceExcel = "excel"
)

// amountCleaner drops currency symbols and thousand separators before the
// numeric parse.
var amountCleaner = regexp.MustCompile(`[^\d.-]`)

// Statement date formats seen in bank exports, tried in order. Ambiguous
// slash dates resolve month-first.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"2006-01-02 15:04:05",
	"02-Jan-2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type Result struct {
	Imported int         `json:"imported"`
	Skipped  int         `json:"skipped"`
	Errors   []*RowError `json:"errors"`
}

type Service struct {
	Transactions *transaction.Service
}

// ParseAndImport reads a CSV or XLSX statement, converts its rows to
// transactions and persists them. Rows that fail to parse are reported per
// row; duplicates (same ExternalId) count as skipped.
func (s *Service) ParseAndImport(ctx context.Context, userID ulid.ULID, filename string, file io.Reader, explicit *ColumnMapping) (*Result, error) {
	var (
		headers []string
		rows    [][]string
		source  string
		err     error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		headers, rows, err = readCSV(file)
		source = sourceCSV
	case ".xlsx":
		headers, rows, err = readXLSX(file)
		source = sourceExcel
	default:
		return nil, appErrors.ErrUnsupportedFormat.WithDetails(map[string]interface{}{
			"filename": filename,
		})
	}
	if err != nil {
		return nil, appErrors.WrapError(err, "FILE_PARSE_ERROR", "Could not read the uploaded file", http.StatusBadRequest)
	}

	if len(rows) == 0 {
		return nil, appErrors.NewValidationError("file", "No data found in file")
	}

	mapping := DetectColumns(headers).Merge(explicit)
	columns := mapping.resolve(headers)

	transactions, rowErrors := convertRows(userID, rows, columns, source)

	imported, skipped, err := s.Transactions.ImportTransactions(ctx, userID, transactions)
	if err != nil {
		return nil, err
	}

	if len(rowErrors) > MaxRowErrors {
		rowErrors = rowErrors[:MaxRowErrors]
	}

	return &Result{
		Imported: imported,
		Skipped:  skipped,
		Errors:   rowErrors,
	}, nil
}

// convertRows turns raw cells into transactions. Row numbers in errors are
// 1-based file positions, so the first data row is row 2.
func convertRows(userID ulid.ULID, rows [][]string, columns columnIndexes, source string) ([]*transaction.Transaction, []*RowError) {
	transactions := make([]*transaction.Transaction, 0, len(rows))
	rowErrors := make([]*RowError, 0)

	fail := func(row int, message string) {
		rowErrors = append(rowErrors, &RowError{Row: row, Message: message})
	}

	for i, row := range rows {
		rowNum := i + 2

		dateStr := cell(row, columns.date)
		if dateStr == "" {
			fail(rowNum, "Missing date")
			continue
		}

		date, ok := parseDate(dateStr)
		if !ok {
			fail(rowNum, fmt.Sprintf("Invalid date format: %s", dateStr))
			continue
		}

		description := cell(row, columns.description)
		if description == "" {
			fail(rowNum, "Missing description")
			continue
		}

		var amount float64
		var txType transaction.Types

		if columns.debit >= 0 && columns.credit >= 0 {
			debitStr := cell(row, columns.debit)
			creditStr := cell(row, columns.credit)

			switch {
			case debitStr != "":
				amount = parseAmountOrZero(debitStr)
				txType = transaction.TypeExpense
			case creditStr != "":
				amount = parseAmountOrZero(creditStr)
				txType = transaction.TypeIncome
			default:
				fail(rowNum, "Missing amount in debit/credit columns")
				continue
			}
		} else {
			amountStr := cell(row, columns.amount)
			if amountStr == "" {
				fail(rowNum, "Missing amount")
				continue
			}

			cleaned := amountCleaner.ReplaceAllString(amountStr, "")
			parsed, err := strconv.ParseFloat(cleaned, 64)
			if err != nil {
				fail(rowNum, fmt.Sprintf("Invalid amount: %s", cleaned))
				continue
			}

			txType = transaction.TypeIncome
			if parsed < 0 {
				txType = transaction.TypeExpense
				parsed = -parsed
			}
			amount = parsed
		}

		category := cell(row, columns.category)
		if category == "" {
			category = transaction.FallbackCategory
		}

		transactions = append(transactions, &transaction.Transaction{
			Title:      description,
			Amount:     amount,
			Category:   category,
			Type:       txType,
			Date:       date,
			ExternalId: externalID(userID, date, description, amount),
			Source:     source,
		})
	}

	return transactions, rowErrors
}

// externalID is the dedup key for re-uploaded statements. Uploading the same
// file twice produces the same ids, so the second pass skips every row.
func externalID(userID ulid.ULID, date time.Time, description string, amount float64) string {
	return fmt.Sprintf("%s_%s_%s_%s",
		userID.String(), date.Format("2006-01-02"), description, strconv.FormatFloat(amount, 'f', -1, 64))
}

func readCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

func readXLSX(file io.Reader) ([]string, [][]string, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, err
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, nil
	}

	records, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

// cell reads a column, tolerating short rows. XLSX rows drop trailing empty
// cells.
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func parseAmountOrZero(s string) float64 {
	cleaned := amountCleaner.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return amount
}
