package bill

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Bill is a payment obligation with a due date. Bills past their due date
// count against the health score until they are deleted or rescheduled.
type Bill struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId    ulid.ULID `gorm:"type:varchar(26);not null;index:idx_bills_user" json:"userId"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category  string    `gorm:"type:varchar(100);not null" json:"category"`
	DueDate   time.Time `gorm:"type:date;not null;index:idx_bills_due" json:"dueDate"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Bill) TableName() string {
	return "bills"
}
