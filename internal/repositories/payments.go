package repositories

import (
	"context"
	"time"

	"github.com/archilink/jobboard/internal/entities"
	"gorm.io/gorm"
)

type Payments struct {
	db *gorm.DB
}

func NewPaymentsRepository(db *gorm.DB) *Payments {
	return &Payments{db: db}
}

func (repo *Payments) RecordCaptured(ctx context.Context, payment entities.CapturedPayment) error {
	payment.CreatedAt = time.Now().UTC()
	return repo.db.WithContext(ctx).Create(&payment).Error
}

func (repo *Payments) GetOutstanding(ctx context.Context) ([]entities.CapturedPayment, error) {
	var payments []entities.CapturedPayment
	err := repo.db.WithContext(ctx).
		Where("reconciled = ?", false).
		Order("created_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (repo *Payments) MarkReconciled(ctx context.Context, reference string) error {
	return repo.db.WithContext(ctx).
		Model(&entities.CapturedPayment{}).
		Where("reference = ?", reference).
		Update("reconciled", true).Error
}

func (repo *Payments) RemoveReconciled(ctx context.Context, olderThan time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).
		Delete(&entities.CapturedPayment{}, "reconciled = ? AND created_at < ?", true, olderThan)
	return res.RowsAffected, res.Error
}
