package availability

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/occupancies"
)

// CheckRange reports whether the room is free for the candidate range
// against every non-cancelled booking of the room.
func (b *business) CheckRange(ctx context.Context, tenantID, locationID, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, &errs.Error{Code: errs.InvalidArgument, Message: "check_out_date must be after check_in_date"}
	}

	occs, err := b.fetchRoomOccupancies(ctx, tenantID, locationID, roomID)
	if err != nil {
		return false, err
	}

	return RangeAvailable(checkIn, checkOut, roomID, occs), nil
}

// ListUnavailableDates enumerates occupied dates for the room within the
// range, inclusive of both endpoints.
func (b *business) ListUnavailableDates(ctx context.Context, tenantID, locationID, roomID int64, rangeStart, rangeEnd time.Time) ([]time.Time, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "range end must not be before range start"}
	}

	occs, err := b.fetchRoomOccupancies(ctx, tenantID, locationID, roomID)
	if err != nil {
		return nil, err
	}

	return UnavailableDates(rangeStart, rangeEnd, roomID, occs), nil
}

func (b *business) fetchRoomOccupancies(ctx context.Context, tenantID, locationID, roomID int64) ([]model.Occupancy, error) {
	dbOccs, err := b.occupancyRepo.ListActiveByRoom(ctx, occupancies.ListActiveByRoomParams{
		TenantID:   tenantID,
		LocationID: locationID,
		RoomID:     pgtype.Int8{Int64: roomID, Valid: true},
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to fetch bookings"}
	}

	occs := make([]model.Occupancy, 0, len(dbOccs))
	for _, dbOcc := range dbOccs {
		occ, err := convertDBOccupancyToModel(dbOcc)
		if err != nil {
			// an unparseable booking makes the answer unknowable
			return nil, err
		}
		occs = append(occs, *occ)
	}
	return occs, nil
}
