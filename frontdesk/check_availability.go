package frontdesk

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/model"
)

type CheckAvailabilityRequest struct {
	TenantID   int64  `query:"tenant_id"`
	LocationID int64  `query:"location_id"`
	CheckIn    string `query:"check_in"`
	CheckOut   string `query:"check_out"`
}

type CheckAvailabilityResponse struct {
	Available bool `json:"available"`
}

//encore:api public path=/v1/rooms/:id/availability method=GET
func (s *Service) CheckAvailability(ctx context.Context, id int64, req *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid room ID"}
	}

	checkIn, err := model.ParseDate(req.CheckIn)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid check_in date"}
	}
	checkOut, err := model.ParseDate(req.CheckOut)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid check_out date"}
	}

	available, err := s.availability.CheckRange(ctx, req.TenantID, req.LocationID, id, checkIn, checkOut)
	if err != nil {
		rlog.Error("failed to check availability", "error", err, "room_id", id)
		return nil, err
	}

	return &CheckAvailabilityResponse{
		Available: available,
	}, nil
}
