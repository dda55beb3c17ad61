package services

import (
	"context"
	"fmt"

	"github.com/archilink/jobboard/internal/clients/razorpay"
	"github.com/archilink/jobboard/internal/entities"
	"github.com/archilink/jobboard/internal/logger"
	"github.com/archilink/jobboard/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type postStage string

const (
	stageValidating       postStage = "validating"
	stageAwaitingPayment  postStage = "awaiting_payment"
	stagePaymentSucceeded postStage = "payment_succeeded"
	stageCreating         postStage = "creating"
	stagePosted           postStage = "posted"
)

type paymentProcessor interface {
	Charge(ctx context.Context, request razorpay.ChargeRequest) (razorpay.Outcome, error)
}

type jobCreator interface {
	CreateJob(ctx context.Context, draft entities.JobDraft, featured bool) (string, error)
	RecordApplication(ctx context.Context, id string) error
}

type capturedPaymentRecorder interface {
	RecordCaptured(ctx context.Context, payment entities.CapturedPayment) error
}

// Workflow orchestrates the two side-effecting user actions: the
// pay-then-post sequence for firms and the apply action for everyone else.
type Workflow struct {
	directory jobCreator
	processor paymentProcessor
	payments  capturedPaymentRecorder
	session   identityProvider
	feePaise  int
}

func NewWorkflow(directory jobCreator, processor paymentProcessor,
	payments capturedPaymentRecorder, session identityProvider, feePaise int) *Workflow {

	if feePaise <= 0 {
		feePaise = razorpay.JobPostingFeePaise
	}
	return &Workflow{
		directory: directory,
		processor: processor,
		payments:  payments,
		session:   session,
		feePaise:  feePaise,
	}
}

// PostJob runs the post-and-pay sequence. Payment is always attempted
// before persistence, and persistence never happens without a captured
// payment. The only partial-failure outcome is PaidButNotPostedError, which
// is recorded durably so the charge can be reconciled.
func (w *Workflow) PostJob(ctx context.Context, draft entities.JobDraft, payer entities.Payer) (string, error) {

	stage := stageValidating
	advance := func(next postStage) {
		stage = next
		log.Debugf("post-job sequence for %q entered stage %v", draft.Title, stage)
	}

	if err := draft.Validate(); err != nil {
		return "", err
	}

	user, ok := w.session.CurrentUser()
	if !ok {
		return "", entities.ErrUnauthenticated
	}
	if user.Role != entities.Firm {
		return "", entities.ErrForbidden
	}

	advance(stageAwaitingPayment)

	outcome, err := w.processor.Charge(ctx, razorpay.ChargeRequest{
		Amount:       w.feePaise,
		Currency:     razorpay.CurrencyINR,
		Description:  fmt.Sprintf("Featured job posting: %s", draft.Title),
		PayerEmail:   payer.Email,
		PayerName:    payer.Name,
		PayerContact: payer.Contact,
	})
	if err != nil {
		metrics.PaymentOutcomeCounter.WithLabelValues("error").Inc()
		log.WithField(logger.ErrorTypeField, logger.ErrorTypePayment).Errorf("payment round-trip failed: %v", err)
		return "", &entities.PaymentFailedError{Reason: err.Error()}
	}

	metrics.PaymentOutcomeCounter.WithLabelValues(string(outcome.Status)).Inc()

	switch outcome.Status {
	case razorpay.Cancelled:
		return "", entities.ErrPaymentCancelled
	case razorpay.Declined:
		return "", &entities.PaymentFailedError{Reason: outcome.Reason}
	case razorpay.Approved:
	default:
		return "", &entities.PaymentFailedError{Reason: "unknown payment outcome"}
	}

	advance(stagePaymentSucceeded)
	log.Infof("payment %v captured for job %q", outcome.Reference, draft.Title)

	advance(stageCreating)
	jobID, err := w.directory.CreateJob(ctx, draft, true)
	if err != nil {
		w.recordCapturedPayment(ctx, outcome.Reference, user.UserID, draft.Title)
		return "", &entities.PaidButNotPostedError{Reference: outcome.Reference, Err: err}
	}

	advance(stagePosted)
	log.Infof("job %v posted by firm %v", jobID, user.UserID)
	return jobID, nil
}

// recordCapturedPayment is best-effort: if even this write fails the
// payment reference still reaches the operator through the error log.
func (w *Workflow) recordCapturedPayment(ctx context.Context, reference, payerID, title string) {
	err := w.payments.RecordCaptured(ctx, entities.CapturedPayment{
		Reference: reference,
		PayerID:   payerID,
		JobTitle:  title,
		Amount:    w.feePaise,
		Currency:  razorpay.CurrencyINR,
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("payment %v captured but job not posted AND reconciliation record failed: %v", reference, err)
	} else {
		log.Warnf("payment %v captured but job not posted, reconciliation record saved", reference)
	}
}

// ApplyToJob is the single entry point for application-count mutation.
func (w *Workflow) ApplyToJob(ctx context.Context, jobID string) error {

	if _, ok := w.session.CurrentUser(); !ok {
		return entities.ErrUnauthenticated
	}

	return w.directory.RecordApplication(ctx, jobID)
}
