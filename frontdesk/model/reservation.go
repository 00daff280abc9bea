package model

import (
	"time"
)

type Reservation struct {
	ID             int64             `json:"id"`
	TenantID       int64             `json:"tenant_id"`
	LocationID     int64             `json:"location_id"`
	RoomID         int64             `json:"room_id"`
	GuestName      string            `json:"guest_name"`
	Currency       string            `json:"currency"`
	Status         ReservationStatus `json:"status"`
	RoomAmount     float64           `json:"room_amount"`
	TotalAmount    float64           `json:"total_amount"`
	PaidAmount     float64           `json:"paid_amount"`
	BalanceAmount  float64           `json:"balance_amount"`
	CheckInDate    time.Time         `json:"check_in_date"`
	CheckOutDate   time.Time         `json:"check_out_date"`
	ErrorMessage   *string           `json:"error_message,omitempty"`
	WorkflowID     *string           `json:"workflow_id,omitempty"`
	IdempotencyKey string            `json:"idempotency_key"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type ReservationStatus string

const (
	ReservationStatusConfirmed         ReservationStatus = "confirmed"
	ReservationStatusCheckedIn         ReservationStatus = "checked_in"
	ReservationStatusCheckedOut        ReservationStatus = "checked_out"
	ReservationStatusCancelled         ReservationStatus = "cancelled"
	ReservationStatusAttentionRequired ReservationStatus = "attention_required"
)

// StayNights is the number of nights between check-in and check-out. The
// occupied interval is half-open, so the check-out day itself is not a night.
func StayNights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// BalanceSnapshot is a reservation's financial position expressed in one
// display currency. BalanceDue is deliberately never clamped at zero: an
// overpayment recorded in error shows up as a negative balance so operators
// can see and correct it.
type BalanceSnapshot struct {
	DisplayCurrency      string   `json:"display_currency"`
	TotalAmount          float64  `json:"total_amount"`
	PaidAmount           float64  `json:"paid_amount"`
	PendingServiceAmount float64  `json:"pending_service_amount"`
	BalanceDue           float64  `json:"balance_due"`
	RateWarnings         []string `json:"rate_warnings,omitempty"`
}

const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
