package model

import (
	"time"
)

type Payment struct {
	ID             int64             `json:"id"`
	ReservationID  int64             `json:"reservation_id"`
	AccountID      string            `json:"account_id"`
	Amount         float64           `json:"amount"`
	Currency       string            `json:"currency"`
	Method         string            `json:"method"`
	Metadata       *CurrencyMetadata `json:"metadata,omitempty"`
	Conversion     *ConversionLog    `json:"conversion,omitempty"`
	IdempotencyKey string            `json:"idempotency_key"`
	CreatedAt      time.Time         `json:"created_at"`

	StayWorkflowID string `json:"-"`
}

func (p *Payment) SetStayWorkflowID(id string) {
	p.StayWorkflowID = id
}

// PaymentState is the state of a single payment-recording attempt:
// Draft → Validating → {Rejected | Recording → {Recorded | Failed}}.
type PaymentState string

const (
	PaymentStateDraft      PaymentState = "draft"
	PaymentStateValidating PaymentState = "validating"
	PaymentStateRejected   PaymentState = "rejected"
	PaymentStateRecording  PaymentState = "recording"
	PaymentStateRecorded   PaymentState = "recorded"
	PaymentStateFailed     PaymentState = "failed"
)

// ConversionLog is the audit row describing the currency conversion applied
// to a payment recorded in a currency other than the reservation's.
type ConversionLog struct {
	ID              int64     `json:"id"`
	PaymentID       int64     `json:"payment_id"`
	FromCurrency    string    `json:"from_currency"`
	ToCurrency      string    `json:"to_currency"`
	ExchangeRate    float64   `json:"exchange_rate"`
	OriginalAmount  float64   `json:"original_amount"`
	ConvertedAmount float64   `json:"converted_amount"`
	CreatedAt       time.Time `json:"created_at"`
}
