package availability

import (
	"time"

	"encore.app/frontdesk/model"
)

// Pure interval logic over a caller-supplied set of occupancies. A room's
// occupied interval is half-open, [check_in, check_out): the check-out day
// itself is free for a new check-in.

// truncateDay drops the time-of-day component.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func occupiesRoom(occ model.Occupancy, roomID int64) bool {
	return occ.RoomID != nil && *occ.RoomID == roomID
}

// DateAvailable reports whether the room is free on the given date.
func DateAvailable(date time.Time, roomID int64, occs []model.Occupancy) bool {
	day := truncateDay(date)
	for _, occ := range occs {
		if !occupiesRoom(occ, roomID) {
			continue
		}
		if !day.Before(truncateDay(occ.CheckInDate)) && day.Before(truncateDay(occ.CheckOutDate)) {
			return false
		}
	}
	return true
}

// RangeAvailable reports whether the room is free for the whole candidate
// range. Boundary-touching ranges are not an overlap, so back-to-back
// bookings are allowed.
func RangeAvailable(checkIn, checkOut time.Time, roomID int64, occs []model.Occupancy) bool {
	in := truncateDay(checkIn)
	out := truncateDay(checkOut)
	for _, occ := range occs {
		if !occupiesRoom(occ, roomID) {
			continue
		}
		if in.Before(truncateDay(occ.CheckOutDate)) && out.After(truncateDay(occ.CheckInDate)) {
			return false
		}
	}
	return true
}

// UnavailableDates enumerates the occupied dates within the range,
// inclusive of both endpoints.
func UnavailableDates(rangeStart, rangeEnd time.Time, roomID int64, occs []model.Occupancy) []time.Time {
	var dates []time.Time
	end := truncateDay(rangeEnd)
	for day := truncateDay(rangeStart); !day.After(end); day = day.AddDate(0, 0, 1) {
		if !DateAvailable(day, roomID, occs) {
			dates = append(dates, day)
		}
	}
	return dates
}

// CalculateBookingSpan clips an occupancy's stay to the visible window for
// calendar rendering. The window is an ordered sequence of consecutive
// dates. A visible occupancy spans at least one cell.
func CalculateBookingSpan(occ model.Occupancy, window []time.Time) model.BookingSpan {
	if len(window) == 0 {
		return model.BookingSpan{IsVisible: false}
	}

	windowStart := truncateDay(window[0])
	windowEnd := truncateDay(window[len(window)-1]).AddDate(0, 0, 1)

	checkIn := truncateDay(occ.CheckInDate)
	checkOut := truncateDay(occ.CheckOutDate)

	if !checkIn.Before(windowEnd) || !checkOut.After(windowStart) {
		return model.BookingSpan{IsVisible: false}
	}

	clippedStart := checkIn
	if clippedStart.Before(windowStart) {
		clippedStart = windowStart
	}
	clippedEnd := checkOut
	if clippedEnd.After(windowEnd) {
		clippedEnd = windowEnd
	}

	spanDays := int(clippedEnd.Sub(clippedStart).Hours() / 24)
	if spanDays < 1 {
		spanDays = 1
	}

	return model.BookingSpan{
		StartIndex: int(clippedStart.Sub(windowStart).Hours() / 24),
		SpanDays:   spanDays,
		IsVisible:  true,
	}
}
