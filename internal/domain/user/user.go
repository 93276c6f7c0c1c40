package user

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// User is an account holder. Password stays empty for accounts provisioned
// through Google sign-in or the demo flow.
type User struct {
	Id              ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null" json:"email"`
	Password        string    `gorm:"type:varchar(255)" json:"-"`
	FirstName       string    `gorm:"type:varchar(100)" json:"firstName"`
	LastName        string    `gorm:"type:varchar(100)" json:"lastName"`
	ProfileImageUrl string    `gorm:"type:text" json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
