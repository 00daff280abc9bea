package frontdesk

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type GetReservationRequest struct {
	TenantID   int64 `query:"tenant_id"`
	LocationID int64 `query:"location_id"`
}

//encore:api public path=/v1/reservations/:id method=GET
func (s *Service) GetReservation(ctx context.Context, id int64, req *GetReservationRequest) (*ReservationResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid reservation ID"}
	}

	result, err := s.reservation.GetReservation(ctx, req.TenantID, req.LocationID, id)
	if err != nil {
		rlog.Error("failed to get reservation", "error", err, "id", id)
		return nil, err
	}

	return &ReservationResponse{
		Reservation: *result,
	}, nil
}
