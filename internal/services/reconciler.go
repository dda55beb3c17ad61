package services

import (
	"context"
	"time"

	"github.com/archilink/jobboard/internal/entities"
	"github.com/archilink/jobboard/internal/logger"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type capturedPaymentRepository interface {
	GetOutstanding(ctx context.Context) ([]entities.CapturedPayment, error)
	RemoveReconciled(ctx context.Context, olderThan time.Time) (int64, error)
}

// Reconciler periodically reports captured payments that never produced a
// posting, so support can act on them, and prunes records that were already
// reconciled. It never retries job creation itself.
type Reconciler struct {
	payments        capturedPaymentRepository
	cron            *cron.Cron
	retentionInDays int
}

func NewReconciler(payments capturedPaymentRepository, retentionInDays int) (*Reconciler, error) {

	if retentionInDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	r := &Reconciler{
		payments:        payments,
		cron:            cron.New(),
		retentionInDays: retentionInDays,
	}

	_, err := r.cron.AddFunc("0 * * * *", r.sweep)
	if err != nil {
		return nil, err
	}

	r.cron.Start()
	log.Infof("payment reconciler started, retention in days: %d", r.retentionInDays)
	return r, nil
}

func (r *Reconciler) Stop() {
	r.cron.Stop()
}

func (r *Reconciler) sweep() {

	outstanding, err := r.payments.GetOutstanding(context.Background())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to load outstanding payments: %v", err)
		return
	}

	for _, payment := range outstanding {
		log.Warnf("outstanding captured payment %v (%v %v) from payer %v for job %q, captured at %v",
			payment.Reference, payment.Amount, payment.Currency, payment.PayerID, payment.JobTitle, payment.CreatedAt)
	}

	cutoff := time.Now().Add(-time.Duration(r.retentionInDays) * 24 * time.Hour)
	removed, err := r.payments.RemoveReconciled(context.Background(), cutoff)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to prune reconciled payments: %v", err)
	} else if removed > 0 {
		log.Infof("pruned %v reconciled payment records", removed)
	}
}
