package transaction

// ReceiptCategories is the compact set receipt extraction classifies into.
var ReceiptCategories = []string{
	"Food",
	"Rent",
	"Bills",
	"Transport",
	"Entertainment",
	"Other",
}

// DefaultCategories seeds new user preferences and bounds AI categorization.
var DefaultCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Personal Care",
	"Groceries",
	"Rent",
	"Insurance",
	"Other",
}

// FallbackCategory absorbs anything a classifier cannot place.
const FallbackCategory = "Other"

func IsDefaultCategory(name string) bool {
	for _, c := range DefaultCategories {
		if c == name {
			return true
		}
	}
	return false
}

func IsReceiptCategory(name string) bool {
	for _, c := range ReceiptCategories {
		if c == name {
			return true
		}
	}
	return false
}
