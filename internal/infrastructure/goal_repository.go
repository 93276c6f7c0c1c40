package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/goal"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg/query"
)

type GoalRepository struct {
	DB *gorm.DB
}

var _ goal.Repository = (*GoalRepository)(nil)

type goalDB struct {
	Id            string     `gorm:"type:varchar(26);primaryKey"`
	UserId        string     `gorm:"type:varchar(26);index;not null"`
	Title         string     `gorm:"type:varchar(255);not null"`
	TargetAmount  float64    `gorm:"type:decimal(10,2);not null"`
	CurrentAmount float64    `gorm:"type:decimal(10,2);not null;default:0"`
	Deadline      *time.Time `gorm:"type:date"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

func (goalDB) TableName() string {
	return "goals"
}

func toDomainGoal(gdb *goalDB) (*goal.Goal, error) {
	id, err := pkg.ParseULID(gdb.Id)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(gdb.UserId)
	if err != nil {
		return nil, err
	}
	return &goal.Goal{
		Id:            id,
		UserId:        userID,
		Title:         gdb.Title,
		TargetAmount:  gdb.TargetAmount,
		CurrentAmount: gdb.CurrentAmount,
		Deadline:      gdb.Deadline,
		CreatedAt:     gdb.CreatedAt,
		UpdatedAt:     gdb.UpdatedAt,
	}, nil
}

func toDBGoal(g *goal.Goal) *goalDB {
	return &goalDB{
		Id:            g.Id.String(),
		UserId:        g.UserId.String(),
		Title:         g.Title,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	return r.DB.WithContext(ctx).Create(toDBGoal(g)).Error
}

func (r *GoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	gdb := toDBGoal(g)
	return r.DB.WithContext(ctx).Where("id = ?", gdb.Id).Updates(gdb).Error
}

func (r *GoalRepository) Delete(ctx context.Context, goalID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID.String(), userID.String()).
		Delete(&goalDB{}).Error
}

func (r *GoalRepository) GetByIDAndUser(ctx context.Context, goalID, userID ulid.ULID) (*goal.Goal, error) {
	row, err := query.New[goalDB](r.DB, "goals").
		Context(ctx).
		Where("id = ? AND user_id = ?", goalID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainGoal(row)
}

func (r *GoalRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*goal.Goal, error) {
	q := query.New[goalDB](r.DB, "goals").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at ASC")
	return query.ExecuteAll(q, toDomainGoal)
}
