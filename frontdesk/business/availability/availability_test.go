package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"encore.app/frontdesk/model"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func occupancy(roomID int64, checkIn, checkOut string) model.Occupancy {
	return model.Occupancy{
		ID:           1,
		RoomID:       &roomID,
		CheckInDate:  day(checkIn),
		CheckOutDate: day(checkOut),
		Status:       "confirmed",
		Source:       model.OccupancySourceReservation,
	}
}

func TestDateAvailable(t *testing.T) {
	occs := []model.Occupancy{occupancy(7, "2026-03-10", "2026-03-13")}

	testCases := []struct {
		name     string
		date     string
		roomID   int64
		expected bool
	}{
		{name: "day_before_check_in", date: "2026-03-09", roomID: 7, expected: true},
		{name: "check_in_day_occupied", date: "2026-03-10", roomID: 7, expected: false},
		{name: "mid_stay_occupied", date: "2026-03-11", roomID: 7, expected: false},
		{name: "last_night_occupied", date: "2026-03-12", roomID: 7, expected: false},
		{name: "check_out_day_free", date: "2026-03-13", roomID: 7, expected: true},
		{name: "other_room_unaffected", date: "2026-03-11", roomID: 8, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DateAvailable(day(tc.date), tc.roomID, occs))
		})
	}
}

func TestRangeAvailable(t *testing.T) {
	occs := []model.Occupancy{occupancy(7, "2026-03-10", "2026-03-13")}

	testCases := []struct {
		name     string
		checkIn  string
		checkOut string
		expected bool
	}{
		{name: "fully_before", checkIn: "2026-03-05", checkOut: "2026-03-08", expected: true},
		{name: "back_to_back_ending_at_check_in", checkIn: "2026-03-08", checkOut: "2026-03-10", expected: true},
		{name: "back_to_back_starting_at_check_out", checkIn: "2026-03-13", checkOut: "2026-03-15", expected: true},
		{name: "overlaps_start", checkIn: "2026-03-09", checkOut: "2026-03-11", expected: false},
		{name: "contained_within", checkIn: "2026-03-11", checkOut: "2026-03-12", expected: false},
		{name: "spans_entire_stay", checkIn: "2026-03-08", checkOut: "2026-03-15", expected: false},
		{name: "overlaps_end", checkIn: "2026-03-12", checkOut: "2026-03-14", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RangeAvailable(day(tc.checkIn), day(tc.checkOut), 7, occs))
		})
	}
}

func TestUnavailableDates(t *testing.T) {
	occs := []model.Occupancy{
		occupancy(7, "2026-03-10", "2026-03-12"),
		occupancy(7, "2026-03-15", "2026-03-16"),
	}

	dates := UnavailableDates(day("2026-03-09"), day("2026-03-16"), 7, occs)

	expected := []time.Time{
		day("2026-03-10"),
		day("2026-03-11"),
		day("2026-03-15"),
	}
	assert.Equal(t, expected, dates)
}

func TestUnavailableDates_EmptyForFreeRoom(t *testing.T) {
	dates := UnavailableDates(day("2026-03-09"), day("2026-03-16"), 7, nil)
	assert.Empty(t, dates)
}

func TestCalculateBookingSpan(t *testing.T) {
	window := []time.Time{
		day("2026-03-10"),
		day("2026-03-11"),
		day("2026-03-12"),
		day("2026-03-13"),
		day("2026-03-14"),
	}

	testCases := []struct {
		name     string
		checkIn  string
		checkOut string
		expected model.BookingSpan
	}{
		{
			name:     "fully_inside_window",
			checkIn:  "2026-03-11",
			checkOut: "2026-03-13",
			expected: model.BookingSpan{StartIndex: 1, SpanDays: 2, IsVisible: true},
		},
		{
			name:     "clipped_at_window_start",
			checkIn:  "2026-03-08",
			checkOut: "2026-03-12",
			expected: model.BookingSpan{StartIndex: 0, SpanDays: 2, IsVisible: true},
		},
		{
			name:     "clipped_at_window_end",
			checkIn:  "2026-03-13",
			checkOut: "2026-03-20",
			expected: model.BookingSpan{StartIndex: 3, SpanDays: 2, IsVisible: true},
		},
		{
			name:     "spans_whole_window",
			checkIn:  "2026-03-01",
			checkOut: "2026-04-01",
			expected: model.BookingSpan{StartIndex: 0, SpanDays: 5, IsVisible: true},
		},
		{
			name:     "ends_before_window",
			checkIn:  "2026-03-05",
			checkOut: "2026-03-10",
			expected: model.BookingSpan{IsVisible: false},
		},
		{
			name:     "starts_after_window",
			checkIn:  "2026-03-15",
			checkOut: "2026-03-18",
			expected: model.BookingSpan{IsVisible: false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			span := CalculateBookingSpan(occupancy(7, tc.checkIn, tc.checkOut), window)
			assert.Equal(t, tc.expected, span)
		})
	}
}

func TestCalculateBookingSpan_EmptyWindow(t *testing.T) {
	span := CalculateBookingSpan(occupancy(7, "2026-03-10", "2026-03-12"), nil)
	assert.False(t, span.IsVisible)
}
