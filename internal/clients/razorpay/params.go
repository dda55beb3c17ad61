package razorpay

import (
	"github.com/pkg/errors"
)

// Razorpay expresses amounts in the currency's smallest unit, so the
// standard featured-posting fee of 499 INR is 49900 paise.
const (
	JobPostingFeePaise = 49900
	CurrencyINR        = "INR"
)

const ErrorCodeCancelled = "payment_cancelled"

type OutcomeStatus string

const (
	Approved  OutcomeStatus = "approved"
	Cancelled OutcomeStatus = "cancelled"
	Declined  OutcomeStatus = "declined"
)

// Outcome is the terminal result of one checkout round-trip. Reference is
// set only for approved charges; Reason only for declined ones.
type Outcome struct {
	Status    OutcomeStatus
	Reference string
	Reason    string
}

type ChargeRequest struct {
	Amount       int
	Currency     string
	Description  string
	PayerEmail   string
	PayerName    string
	PayerContact string
}

func (r ChargeRequest) Validate() error {

	if r.Amount <= 0 {
		return errors.New("amount must be positive")
	}

	if r.Currency == "" {
		return errors.New("currency is required")
	}

	if r.PayerEmail == "" {
		return errors.New("payer email is required")
	}

	return nil
}

type wireRequest struct {
	Key         string      `json:"key"`
	Amount      int         `json:"amount"`
	Currency    string      `json:"currency"`
	Description string      `json:"description"`
	Prefill     wirePrefill `json:"prefill"`
}

type wirePrefill struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func (r ChargeRequest) toWire(keyID string) wireRequest {
	return wireRequest{
		Key:         keyID,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Description: r.Description,
		Prefill: wirePrefill{
			Email:   r.PayerEmail,
			Name:    r.PayerName,
			Contact: r.PayerContact,
		},
	}
}
