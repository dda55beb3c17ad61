package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/archilink/jobboard/internal/entities"
	"github.com/stretchr/testify/assert"
)

func Test_Payments_OutstandingLifecycle(t *testing.T) {

	repo := NewPaymentsRepository(newTestDb(t).DB)

	err := repo.RecordCaptured(context.Background(), entities.CapturedPayment{
		Reference: "pay_123",
		PayerID:   "firm-1",
		JobTitle:  "Junior Architect",
		Amount:    49900,
		Currency:  "INR",
	})
	assert.NoError(t, err)

	outstanding, err := repo.GetOutstanding(context.Background())
	assert.NoError(t, err)
	assert.Len(t, outstanding, 1)
	assert.Equal(t, "pay_123", outstanding[0].Reference)
	assert.False(t, outstanding[0].CreatedAt.IsZero())

	assert.NoError(t, repo.MarkReconciled(context.Background(), "pay_123"))

	outstanding, err = repo.GetOutstanding(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, outstanding)
}

func Test_Payments_RemoveReconciledKeepsRecentAndOutstanding(t *testing.T) {

	dbCtx := newTestDb(t)
	repo := NewPaymentsRepository(dbCtx.DB)

	for _, reference := range []string{"pay_old", "pay_new", "pay_open"} {
		err := repo.RecordCaptured(context.Background(), entities.CapturedPayment{
			Reference: reference,
			Amount:    49900,
			Currency:  "INR",
		})
		assert.NoError(t, err)
	}

	assert.NoError(t, repo.MarkReconciled(context.Background(), "pay_old"))
	assert.NoError(t, repo.MarkReconciled(context.Background(), "pay_new"))

	err := dbCtx.DB.Model(&entities.CapturedPayment{}).Where("reference = ?", "pay_old").
		Update("created_at", time.Now().Add(-72*time.Hour)).Error
	assert.NoError(t, err)

	removed, err := repo.RemoveReconciled(context.Background(), time.Now().Add(-24*time.Hour))
	assert.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	var remaining int64
	assert.NoError(t, dbCtx.DB.Model(&entities.CapturedPayment{}).Count(&remaining).Error)
	assert.EqualValues(t, 2, remaining)
}
