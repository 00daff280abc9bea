package model

import (
	"time"
)

type ChargeKind string

const (
	ChargeKindRoom    ChargeKind = "room"
	ChargeKindService ChargeKind = "service"
)

// ChargeStatusPending marks a charge as unpaid and added to the bill. Any
// other status value is the payment method the charge was settled with, in
// which case it does not increase the balance due.
const ChargeStatusPending = "pending"

type Charge struct {
	ID             int64             `json:"id"`
	ReservationID  int64             `json:"reservation_id"`
	Kind           ChargeKind        `json:"kind"`
	Amount         float64           `json:"amount"`
	Currency       string            `json:"currency"`
	Status         string            `json:"status"`
	Description    string            `json:"description"`
	Metadata       *CurrencyMetadata `json:"metadata,omitempty"`
	IdempotencyKey string            `json:"idempotency_key"`
	CreatedAt      time.Time         `json:"created_at"`

	StayWorkflowID string `json:"-"`
}

func (c *Charge) SetStayWorkflowID(id string) {
	c.StayWorkflowID = id
}

// Pending reports whether the charge is still owed by the guest.
func (c *Charge) Pending() bool {
	return c.Status == ChargeStatusPending
}
