package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Goal is a savings target. TargetAmount may be zero for aspirational goals
// that have not been quantified yet.
type Goal struct {
	Id            ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId        ulid.ULID  `gorm:"type:varchar(26);not null;index:idx_goals_user" json:"userId"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	TargetAmount  float64    `gorm:"type:decimal(10,2);not null" json:"targetAmount"`
	CurrentAmount float64    `gorm:"type:decimal(10,2);not null;default:0" json:"currentAmount"`
	Deadline      *time.Time `gorm:"type:date" json:"deadline,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Goal) TableName() string {
	return "goals"
}

// Progress returns the completed fraction in [0, 1]. A goal without a target
// reports zero.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount
	if p > 1 {
		return 1
	}
	return p
}
