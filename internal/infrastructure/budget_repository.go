package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg/query"
)

type BudgetRepository struct {
	DB *gorm.DB
}

var _ budget.Repository = (*BudgetRepository)(nil)

type budgetDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	UserId    string    `gorm:"type:varchar(26);index;not null"`
	Category  string    `gorm:"type:varchar(100);not null"`
	Amount    float64   `gorm:"type:decimal(10,2);not null"`
	Month     string    `gorm:"type:varchar(7);index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (budgetDB) TableName() string {
	return "budgets"
}

func toDomainBudget(bdb *budgetDB) (*budget.Budget, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(bdb.UserId)
	if err != nil {
		return nil, err
	}
	return &budget.Budget{
		Id:        id,
		UserId:    userID,
		Category:  bdb.Category,
		Amount:    bdb.Amount,
		Month:     bdb.Month,
		CreatedAt: bdb.CreatedAt,
		UpdatedAt: bdb.UpdatedAt,
	}, nil
}

func toDBBudget(b *budget.Budget) *budgetDB {
	return &budgetDB{
		Id:        b.Id.String(),
		UserId:    b.UserId.String(),
		Category:  b.Category,
		Amount:    b.Amount,
		Month:     b.Month,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	return r.DB.WithContext(ctx).Create(toDBBudget(b)).Error
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	bdb := toDBBudget(b)
	return r.DB.WithContext(ctx).Where("id = ?", bdb.Id).Updates(bdb).Error
}

func (r *BudgetRepository) Delete(ctx context.Context, budgetID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", budgetID.String(), userID.String()).
		Delete(&budgetDB{}).Error
}

func (r *BudgetRepository) GetByIDAndUser(ctx context.Context, budgetID, userID ulid.ULID) (*budget.Budget, error) {
	row, err := query.New[budgetDB](r.DB, "budgets").
		Context(ctx).
		Where("id = ? AND user_id = ?", budgetID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainBudget(row)
}

func (r *BudgetRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*budget.Budget, error) {
	q := query.New[budgetDB](r.DB, "budgets").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("month DESC, category ASC")
	return query.ExecuteAll(q, toDomainBudget)
}

func (r *BudgetRepository) GetByUserAndMonth(ctx context.Context, userID ulid.ULID, month string) ([]*budget.Budget, error) {
	q := query.New[budgetDB](r.DB, "budgets").
		Context(ctx).
		Where("user_id = ? AND month = ?", userID.String(), month).
		Order("category ASC")
	return query.ExecuteAll(q, toDomainBudget)
}
