package preferences

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
)

const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

func IsValidTheme(theme string) bool {
	return theme == ThemeSystem || theme == ThemeLight || theme == ThemeDark
}

// Preference holds per-user UI settings, one row per user.
type Preference struct {
	UserId           ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"userId"`
	Theme            string    `gorm:"type:varchar(20);not null" json:"theme"`
	CustomCategories []string  `gorm:"serializer:json;type:text" json:"customCategories"`
	CreatedAt        time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Preference) TableName() string {
	return "preferences"
}

// Defaults are the preferences reported for a user who never saved any.
func Defaults(userID ulid.ULID) *Preference {
	return &Preference{
		UserId:           userID,
		Theme:            ThemeSystem,
		CustomCategories: append([]string(nil), transaction.DefaultCategories...),
	}
}
