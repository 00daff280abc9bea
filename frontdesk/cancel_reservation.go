package frontdesk

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type CancelReservationRequest struct {
	TenantID   int64 `json:"tenant_id" validate:"required"`
	LocationID int64 `json:"location_id" validate:"required"`
}

//encore:api public path=/v1/reservations/:id/cancel method=POST
func (s *Service) CancelReservation(ctx context.Context, id int64, req *CancelReservationRequest) (*ReservationResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid reservation ID"}
	}

	if err := s.reservation.CancelReservation(ctx, req.TenantID, req.LocationID, id); err != nil {
		rlog.Error("failed to cancel reservation", "error", err, "id", id)
		return nil, err
	}

	result, err := s.reservation.GetReservation(ctx, req.TenantID, req.LocationID, id)
	if err != nil {
		rlog.Error("failed to get cancelled reservation", "error", err, "id", id)
		return nil, err
	}

	return &ReservationResponse{
		Reservation: *result,
	}, nil
}

// Validate implements validation for CancelReservationRequest
func (r *CancelReservationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
