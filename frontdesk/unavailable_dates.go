package frontdesk

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/model"
)

type UnavailableDatesRequest struct {
	TenantID   int64  `query:"tenant_id"`
	LocationID int64  `query:"location_id"`
	RangeStart string `query:"range_start"`
	RangeEnd   string `query:"range_end"`
}

type UnavailableDatesResponse struct {
	Dates []string `json:"dates"`
}

//encore:api public path=/v1/rooms/:id/unavailable-dates method=GET
func (s *Service) UnavailableDates(ctx context.Context, id int64, req *UnavailableDatesRequest) (*UnavailableDatesResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid room ID"}
	}

	rangeStart, err := model.ParseDate(req.RangeStart)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid range_start date"}
	}
	rangeEnd, err := model.ParseDate(req.RangeEnd)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid range_end date"}
	}

	dates, err := s.availability.ListUnavailableDates(ctx, req.TenantID, req.LocationID, id, rangeStart, rangeEnd)
	if err != nil {
		rlog.Error("failed to list unavailable dates", "error", err, "room_id", id)
		return nil, err
	}

	response := &UnavailableDatesResponse{
		Dates: make([]string, len(dates)),
	}
	for i, d := range dates {
		response.Dates[i] = d.Format(model.DateLayout)
	}

	return response, nil
}
