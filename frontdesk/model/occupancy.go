package model

import (
	"time"
)

type OccupancySource string

const (
	OccupancySourceReservation OccupancySource = "reservation"
	OccupancySourceChannel     OccupancySource = "channel"
)

// Occupancy is the unified availability view over reservations and
// external-channel bookings. RoomID is nil for channel bookings that have
// not been mapped to a room yet. The occupied interval is half-open,
// [CheckInDate, CheckOutDate), so the check-out day is free for a new
// check-in.
type Occupancy struct {
	ID           int64           `json:"id"`
	RoomID       *int64          `json:"room_id,omitempty"`
	CheckInDate  time.Time       `json:"check_in_date"`
	CheckOutDate time.Time       `json:"check_out_date"`
	Status       string          `json:"status"`
	Source       OccupancySource `json:"source"`
}

// CalendarEntry is one occupancy positioned inside a calendar window.
type CalendarEntry struct {
	OccupancyID int64           `json:"occupancy_id"`
	RoomID      *int64          `json:"room_id,omitempty"`
	Source      OccupancySource `json:"source"`
	Span        BookingSpan     `json:"span"`
}

// BookingSpan positions an occupancy inside a visible calendar window.
// SpanDays is at least 1 for any visible occupancy so it always occupies a
// cell.
type BookingSpan struct {
	StartIndex int  `json:"start_index"`
	SpanDays   int  `json:"span_days"`
	IsVisible  bool `json:"is_visible"`
}
