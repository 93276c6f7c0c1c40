package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/preferences"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

var _ preferences.Repository = (*PreferenceRepository)(nil)

type preferenceDB struct {
	UserId           string    `gorm:"type:varchar(26);primaryKey;column:user_id"`
	Theme            string    `gorm:"type:varchar(20);not null"`
	CustomCategories string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (preferenceDB) TableName() string {
	return "preferences"
}

func toDomainPreference(pdb *preferenceDB) (*preferences.Preference, error) {
	userID, err := pkg.ParseULID(pdb.UserId)
	if err != nil {
		return nil, err
	}

	var categories []string
	if pdb.CustomCategories != "" {
		if err := json.Unmarshal([]byte(pdb.CustomCategories), &categories); err != nil {
			return nil, err
		}
	}

	return &preferences.Preference{
		UserId:           userID,
		Theme:            pdb.Theme,
		CustomCategories: categories,
		CreatedAt:        pdb.CreatedAt,
		UpdatedAt:        pdb.UpdatedAt,
	}, nil
}

func toDBPreference(p *preferences.Preference) (*preferenceDB, error) {
	categories, err := json.Marshal(p.CustomCategories)
	if err != nil {
		return nil, err
	}
	return &preferenceDB{
		UserId:           p.UserId.String(),
		Theme:            p.Theme,
		CustomCategories: string(categories),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}, nil
}

func (r *PreferenceRepository) Get(ctx context.Context, userID ulid.ULID) (*preferences.Preference, error) {
	var pdb preferenceDB
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID.String()).First(&pdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainPreference(&pdb)
}

func (r *PreferenceRepository) Upsert(ctx context.Context, p *preferences.Preference) error {
	pdb, err := toDBPreference(p)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(pdb).Error
}
