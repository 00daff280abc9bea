package availability

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/occupancies"
)

// CalendarSpans positions every visible occupancy of a location inside the
// given window of consecutive dates. An occupancy with an unparseable date
// is dropped from the calendar rather than failing the whole screen.
func (b *business) CalendarSpans(ctx context.Context, tenantID, locationID int64, window []time.Time) ([]model.CalendarEntry, error) {
	if len(window) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "calendar window is empty"}
	}

	dbOccs, err := b.occupancyRepo.ListActiveByLocation(ctx, occupancies.ListActiveByLocationParams{
		TenantID:   tenantID,
		LocationID: locationID,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to fetch bookings"}
	}

	entries := make([]model.CalendarEntry, 0, len(dbOccs))
	for _, dbOcc := range dbOccs {
		occ, err := convertDBOccupancyToModel(dbOcc)
		if err != nil {
			rlog.Warn("dropping booking with invalid dates from calendar", "occupancy_id", dbOcc.ID, "error", err)
			continue
		}

		span := CalculateBookingSpan(*occ, window)
		if !span.IsVisible {
			continue
		}

		entries = append(entries, model.CalendarEntry{
			OccupancyID: occ.ID,
			RoomID:      occ.RoomID,
			Source:      occ.Source,
			Span:        span,
		})
	}

	return entries, nil
}
