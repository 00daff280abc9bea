package availability

import (
	"context"
	"time"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/occupancies"
)

type Business interface {
	CheckRange(ctx context.Context, tenantID, locationID, roomID int64, checkIn, checkOut time.Time) (bool, error)
	ListUnavailableDates(ctx context.Context, tenantID, locationID, roomID int64, rangeStart, rangeEnd time.Time) ([]time.Time, error)
	CalendarSpans(ctx context.Context, tenantID, locationID int64, window []time.Time) ([]model.CalendarEntry, error)
}

type business struct {
	occupancyRepo occupancies.Querier
}

func NewAvailabilityBusiness(occupancyRepo occupancies.Querier) Business {
	return &business{
		occupancyRepo: occupancyRepo,
	}
}

// convertDBOccupancyToModel converts a database RoomOccupancy to a domain
// model Occupancy. An occupancy whose dates did not parse is a hard error;
// callers decide whether to drop the row or fail the request.
func convertDBOccupancyToModel(dbOcc occupancies.RoomOccupancy) (*model.Occupancy, error) {
	if !dbOcc.CheckInDate.Valid || !dbOcc.CheckOutDate.Valid {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid date on booking"}
	}

	occ := &model.Occupancy{
		ID:           dbOcc.ID,
		CheckInDate:  dbOcc.CheckInDate.Time,
		CheckOutDate: dbOcc.CheckOutDate.Time,
		Status:       dbOcc.Status,
		Source:       model.OccupancySource(dbOcc.Source),
	}
	if dbOcc.RoomID.Valid {
		roomID := dbOcc.RoomID.Int64
		occ.RoomID = &roomID
	}
	return occ, nil
}
