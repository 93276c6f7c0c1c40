package budget

import (
	"regexp"
	"time"

	"github.com/oklog/ulid/v2"
)

// MonthLayout is the canonical month key format shared with reports and the
// health score.
const MonthLayout = "2006-01"

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidMonth reports whether m is a well-formed YYYY-MM key.
func IsValidMonth(m string) bool {
	return monthPattern.MatchString(m)
}

// Budget is a spending ceiling for one category in one month.
type Budget struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId    ulid.ULID `gorm:"type:varchar(26);not null;index:idx_budgets_user" json:"userId"`
	Category  string    `gorm:"type:varchar(100);not null" json:"category"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Month     string    `gorm:"type:varchar(7);not null;index:idx_budgets_month" json:"month"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Budget) TableName() string {
	return "budgets"
}
