package importer

import "strings"

// ColumnMapping names the header of each logical column. Values refer to
// headers in the uploaded file; an empty value means the column is absent.
type ColumnMapping struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

// Header keyword families, checked in order. The first family whose keyword
// appears in the header claims the column.
var columnKeywords = []struct {
	assign   func(*ColumnMapping, string)
	keywords []string
}{
	{func(m *ColumnMapping, h string) { m.Date = h }, []string{"date", "transaction date", "posted date"}},
	{func(m *ColumnMapping, h string) { m.Description = h }, []string{"description", "title", "memo", "details", "payee"}},
	{func(m *ColumnMapping, h string) { m.Amount = h }, []string{"amount", "value", "total"}},
	{func(m *ColumnMapping, h string) { m.Category = h }, []string{"category", "type"}},
	{func(m *ColumnMapping, h string) { m.Debit = h }, []string{"debit", "withdrawal"}},
	{func(m *ColumnMapping, h string) { m.Credit = h }, []string{"credit", "deposit"}},
}

// DetectColumns guesses the mapping from header names. Matching is by
// substring so "Transaction Date" and "Amount (INR)" resolve as expected.
func DetectColumns(headers []string) ColumnMapping {
	var mapping ColumnMapping

	for _, header := range headers {
		lower := strings.ToLower(strings.TrimSpace(header))
		if lower == "" {
			continue
		}

		for _, family := range columnKeywords {
			if containsAny(lower, family.keywords) {
				family.assign(&mapping, header)
				break
			}
		}
	}

	return mapping
}

// Merge overlays the explicit mapping on the detected one. Explicit entries
// always win, even when they name a header the file does not have.
func (m ColumnMapping) Merge(explicit *ColumnMapping) ColumnMapping {
	if explicit == nil {
		return m
	}

	merged := m
	if explicit.Date != "" {
		merged.Date = explicit.Date
	}
	if explicit.Description != "" {
		merged.Description = explicit.Description
	}
	if explicit.Amount != "" {
		merged.Amount = explicit.Amount
	}
	if explicit.Category != "" {
		merged.Category = explicit.Category
	}
	if explicit.Debit != "" {
		merged.Debit = explicit.Debit
	}
	if explicit.Credit != "" {
		merged.Credit = explicit.Credit
	}
	return merged
}

// columnIndexes locates each mapped header in the actual header row.
// Missing columns are -1 and read as empty cells.
type columnIndexes struct {
	date        int
	description int
	amount      int
	category    int
	debit       int
	credit      int
}

func (m ColumnMapping) resolve(headers []string) columnIndexes {
	return columnIndexes{
		date:        indexOf(headers, m.Date),
		description: indexOf(headers, m.Description),
		amount:      indexOf(headers, m.Amount),
		category:    indexOf(headers, m.Category),
		debit:       indexOf(headers, m.Debit),
		credit:      indexOf(headers, m.Credit),
	}
}

func indexOf(headers []string, name string) int {
	if name == "" {
		return -1
	}
	for i, header := range headers {
		if header == name || strings.TrimSpace(header) == strings.TrimSpace(name) {
			return i
		}
	}
	return -1
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
