package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Types discriminates money in from money out.
type Types string

const (
	TypeIncome  Types = "income"
	TypeExpense Types = "expense"
)

func (t Types) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single dated money movement. Amount is always stored as a
// positive value; Type carries the direction.
type Transaction struct {
	Id         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId     ulid.ULID `gorm:"type:varchar(26);not null;index:idx_transactions_user" json:"userId"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Amount     float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category   string    `gorm:"type:varchar(100);not null" json:"category"`
	Type       Types     `gorm:"type:varchar(10);not null" json:"type"`
	Date       time.Time `gorm:"type:date;not null;index:idx_transactions_date" json:"date"`
	ExternalId string    `gorm:"type:varchar(512);index:idx_transactions_external" json:"externalId,omitempty"`
	Source     string    `gorm:"type:varchar(20)" json:"source,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}
