package frontdesk

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/frontdesk/business/reservation"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/workflow"
)

type CreateReservationRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	TenantID     int64   `json:"tenant_id" validate:"required"`
	LocationID   int64   `json:"location_id" validate:"required"`
	RoomID       int64   `json:"room_id" validate:"required"`
	GuestName    string  `json:"guest_name" validate:"required,max=255"`
	Currency     string  `json:"currency" validate:"required,len=3,alpha"`
	NightlyRate  float64 `json:"nightly_rate" validate:"required,gt=0"`
	CheckInDate  string  `json:"check_in_date" validate:"required"`
	CheckOutDate string  `json:"check_out_date" validate:"required"`
}

type ReservationResponse struct {
	Reservation model.Reservation `json:"reservation"`
}

//encore:api public path=/v1/reservations method=POST tag:idempotency
func (s *Service) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*ReservationResponse, error) {
	checkIn, err := model.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid check_in_date"}
	}
	checkOut, err := model.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid check_out_date"}
	}

	result, err := s.reservation.CreateReservation(ctx, reservation.CreateReservationParams{
		TenantID:       req.TenantID,
		LocationID:     req.LocationID,
		RoomID:         req.RoomID,
		GuestName:      req.GuestName,
		Currency:       req.Currency,
		NightlyRate:    req.NightlyRate,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to create reservation", "error", err)
		return nil, err
	}

	// Start the stay workflow for lifecycle management
	if wfErr := s.startStayWorkflow(ctx, result); wfErr != nil {
		// the reservation itself stands; emit structured context instead
		rlog.Error("workflow start issue", "reservation_id", result.ID, "workflow_id", fmt.Sprintf("stay-%s", result.IdempotencyKey), "error", wfErr)
	}

	return &ReservationResponse{
		Reservation: *result,
	}, nil
}

// Validate implements validation for CreateReservationRequest using go-playground/validator
func (r *CreateReservationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// startStayWorkflow starts a Temporal workflow for the reservation's stay
func (s *Service) startStayWorkflow(ctx context.Context, res *model.Reservation) error {
	workflowID := fmt.Sprintf("stay-%s", res.IdempotencyKey)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.StayPeriodWorkflowParams{
		ReservationID: res.ID,
		CheckIn:       res.CheckInDate,
		CheckOut:      res.CheckOutDate,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.StayPeriod, params)
	if err != nil {
		// AlreadyStarted is benign: the idempotency key was reused
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "reservation_id", res.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
