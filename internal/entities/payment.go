package entities

import "time"

// CapturedPayment records a payment that was captured but whose job posting
// failed to persist afterwards. It exists so support can reconcile the
// charge; nothing retries automatically.
type CapturedPayment struct {
	Reference  string `gorm:"primaryKey"`
	PayerID    string
	JobTitle   string
	Amount     int
	Currency   string
	Reconciled bool
	CreatedAt  time.Time
}
