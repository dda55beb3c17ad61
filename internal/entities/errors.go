package entities

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnauthenticated  = errors.New("caller is not authenticated")
	ErrForbidden        = errors.New("caller role is not allowed to perform this operation")
	ErrJobNotFound      = errors.New("job does not exist")
	ErrPaymentCancelled = errors.New("payment was cancelled by the user")
	ErrStoreUnavailable = errors.New("job store is unavailable")
)

// ValidationError points at the first draft field that failed validation.
// It is returned before any external call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

// PaymentFailedError carries the processor's decline reason. No job was
// created and the charge was not captured.
type PaymentFailedError struct {
	Reason string
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

// PaidButNotPostedError is the one partial-failure outcome of the
// post-and-pay sequence: the charge was captured but the posting was not
// persisted. Callers must surface it distinctly so the payer can be told
// their money is safe and reconciliation is possible via Reference.
type PaidButNotPostedError struct {
	Reference string
	Err       error
}

func (e *PaidButNotPostedError) Error() string {
	return fmt.Sprintf("payment %s captured but job was not posted: %v", e.Reference, e.Err)
}

func (e *PaidButNotPostedError) Unwrap() error {
	return e.Err
}
