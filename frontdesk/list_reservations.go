package frontdesk

import (
	"context"

	"encore.dev/rlog"

	"encore.app/frontdesk/model"
)

type ListReservationsRequest struct {
	TenantID   int64 `query:"tenant_id"`
	LocationID int64 `query:"location_id"`
	Limit      int   `query:"limit"`
	Offset     int   `query:"offset"`
}

type ListReservationsResponse struct {
	Reservations []model.Reservation `json:"reservations"`
	TotalCount   int64               `json:"total_count"`
	Limit        int                 `json:"limit"`
	Offset       int                 `json:"offset"`
}

//encore:api public path=/v1/reservations method=GET
func (s *Service) ListReservations(ctx context.Context, req *ListReservationsRequest) (*ListReservationsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	reservations, totalCount, err := s.reservation.ListReservations(ctx, req.TenantID, req.LocationID, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list reservations", "error", err)
		return nil, err
	}

	response := &ListReservationsResponse{
		Reservations: make([]model.Reservation, len(reservations)),
		TotalCount:   totalCount,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}

	for i, res := range reservations {
		response.Reservations[i] = *res
	}

	return response, nil
}
