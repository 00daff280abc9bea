package frontdesk

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/model"
)

const maxCalendarDays = 92

type CalendarRequest struct {
	TenantID    int64  `query:"tenant_id"`
	LocationID  int64  `query:"location_id"`
	WindowStart string `query:"window_start"`
	Days        int    `query:"days"`
}

type CalendarResponse struct {
	WindowStart string                `json:"window_start"`
	Days        int                   `json:"days"`
	Entries     []model.CalendarEntry `json:"entries"`
}

//encore:api public path=/v1/calendar method=GET
func (s *Service) Calendar(ctx context.Context, req *CalendarRequest) (*CalendarResponse, error) {
	windowStart, err := model.ParseDate(req.WindowStart)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid window_start date"}
	}
	if req.Days <= 0 {
		req.Days = 31
	}
	if req.Days > maxCalendarDays {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "calendar window is too large"}
	}

	window := make([]time.Time, req.Days)
	for i := range window {
		window[i] = windowStart.AddDate(0, 0, i)
	}

	entries, err := s.availability.CalendarSpans(ctx, req.TenantID, req.LocationID, window)
	if err != nil {
		rlog.Error("failed to build calendar", "error", err)
		return nil, err
	}

	return &CalendarResponse{
		WindowStart: req.WindowStart,
		Days:        req.Days,
		Entries:     entries,
	}, nil
}
