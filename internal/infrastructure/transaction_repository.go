package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/budget"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/transaction"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg"
	"github.com/personalfinancemanagentdashboard/babu/internal/pkg/query"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId     string    `gorm:"type:varchar(26);index;not null;column:user_id"`
	Title      string    `gorm:"type:varchar(255);not null;column:title"`
	Amount     float64   `gorm:"type:decimal(10,2);not null;column:amount"`
	Category   string    `gorm:"type:varchar(100);not null;column:category"`
	Type       string    `gorm:"type:varchar(10);not null;column:type"`
	Date       time.Time `gorm:"type:date;not null;column:date"`
	ExternalId string    `gorm:"type:varchar(512);column:external_id"`
	Source     string    `gorm:"type:varchar(20);column:source"`
	CreatedAt  time.Time `gorm:"not null;column:created_at"`
	UpdatedAt  time.Time `gorm:"not null;column:updated_at"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	uid, err := pkg.ParseULID(tdb.UserId)
	if err != nil {
		return nil, err
	}
	return &transaction.Transaction{
		Id:         id,
		UserId:     uid,
		Title:      tdb.Title,
		Amount:     tdb.Amount,
		Category:   tdb.Category,
		Type:       transaction.Types(tdb.Type),
		Date:       tdb.Date,
		ExternalId: tdb.ExternalId,
		Source:     tdb.Source,
		CreatedAt:  tdb.CreatedAt,
		UpdatedAt:  tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:         t.Id.String(),
		UserId:     t.UserId.String(),
		Title:      t.Title,
		Amount:     t.Amount,
		Category:   t.Category,
		Type:       string(t.Type),
		Date:       t.Date,
		ExternalId: t.ExternalId,
		Source:     t.Source,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// monthRange converts a YYYY-MM key into its half-open date interval.
func monthRange(month string) (time.Time, time.Time, bool) {
	start, err := time.Parse(budget.MonthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, start.AddDate(0, 1, 0), true
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return r.DB.WithContext(ctx).Create(toDBTransaction(t)).Error
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Where("id = ?", tdb.Id).Updates(tdb).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID.String(), userID.String()).
		Delete(&transactionDB{}).Error
}

func (r *TransactionRepository) GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*transaction.Transaction, error) {
	row, err := query.New[transactionDB](r.DB, "transactions").
		Context(ctx).
		Where("id = ? AND user_id = ?", transactionID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(row)
}

func (r *TransactionRepository) GetAllByUser(ctx context.Context, userID ulid.ULID) ([]*transaction.Transaction, error) {
	q := query.New[transactionDB](r.DB, "transactions").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("date DESC, created_at DESC")
	return query.ExecuteAll(q, toDomainTransaction)
}

func (r *TransactionRepository) List(ctx context.Context, userID ulid.ULID, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	q := query.New[transactionDB](r.DB, "transactions").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("date DESC, created_at DESC")

	if filters != nil {
		if filters.Month != "" {
			if start, end, ok := monthRange(filters.Month); ok {
				q = q.Where("date >= ? AND date < ?", start, end)
			}
		}
		if filters.Category != "" {
			q = q.Where("category = ?", filters.Category)
		}
		if filters.Type != "" {
			q = q.Where("type = ?", string(filters.Type))
		}
	}

	pagination = pkg.NormalizePagination(pagination)

	page, err := query.Paginate(q, query.NewPage(pagination.Page, pagination.Limit), toDomainTransaction)
	if err != nil {
		return nil, 0, err
	}
	return page.Data, page.Total, nil
}

func (r *TransactionRepository) BulkCreate(ctx context.Context, transactions []*transaction.Transaction) (int, int, error) {
	created, skipped := 0, 0

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range transactions {
			if t.ExternalId != "" {
				var existing transactionDB
				err := tx.Where("user_id = ? AND external_id = ?", t.UserId.String(), t.ExternalId).
					First(&existing).Error
				if err == nil {
					skipped++
					continue
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}
			if err := tx.Create(toDBTransaction(t)).Error; err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, skipped, nil
}
