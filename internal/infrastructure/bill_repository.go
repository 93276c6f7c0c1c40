package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/bill"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg/query"
)

type BillRepository struct {
	DB *gorm.DB
}

var _ bill.Repository = (*BillRepository)(nil)

type billDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	UserId    string    `gorm:"type:varchar(26);index;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Amount    float64   `gorm:"type:decimal(10,2);not null"`
	Category  string    `gorm:"type:varchar(100);not null"`
	DueDate   time.Time `gorm:"type:date;index;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (billDB) TableName() string {
	return "bills"
}

func toDomainBill(bdb *billDB) (*bill.Bill, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(bdb.UserId)
	if err != nil {
		return nil, err
	}
	return &bill.Bill{
		Id:        id,
		UserId:    userID,
		Name:      bdb.Name,
		Amount:    bdb.Amount,
		Category:  bdb.Category,
		DueDate:   bdb.DueDate,
		CreatedAt: bdb.CreatedAt,
		UpdatedAt: bdb.UpdatedAt,
	}, nil
}

func toDBBill(b *bill.Bill) *billDB {
	return &billDB{
		Id:        b.Id.String(),
		UserId:    b.UserId.String(),
		Name:      b.Name,
		Amount:    b.Amount,
		Category:  b.Category,
		DueDate:   b.DueDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *BillRepository) Create(ctx context.Context, b *bill.Bill) error {
	return r.DB.WithContext(ctx).Create(toDBBill(b)).Error
}

func (r *BillRepository) Update(ctx context.Context, b *bill.Bill) error {
	bdb := toDBBill(b)
	return r.DB.WithContext(ctx).Where("id = ?", bdb.Id).Updates(bdb).Error
}

func (r *BillRepository) Delete(ctx context.Context, billID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", billID.String(), userID.String()).
		Delete(&billDB{}).Error
}

func (r *BillRepository) GetByIDAndUser(ctx context.Context, billID, userID ulid.ULID) (*bill.Bill, error) {
	row, err := query.New[billDB](r.DB, "bills").
		Context(ctx).
		Where("id = ? AND user_id = ?", billID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainBill(row)
}

func (r *BillRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*bill.Bill, error) {
	q := query.New[billDB](r.DB, "bills").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("due_date ASC")
	return query.ExecuteAll(q, toDomainBill)
}
