package frontdesk

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/business/reservation"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/workflow"
)

type AddServiceChargeRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	TenantID    int64   `json:"tenant_id" validate:"required"`
	LocationID  int64   `json:"location_id" validate:"required"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Currency    string  `json:"currency" validate:"required,len=3,alpha"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending settled"`
	Description string  `json:"description" validate:"max=255"`
}

type ChargeResponse struct {
	Charge model.Charge `json:"charge"`
}

//encore:api public path=/v1/reservations/:id/charges method=POST tag:idempotency
func (s *Service) AddServiceCharge(ctx context.Context, id int64, req *AddServiceChargeRequest) (*ChargeResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid reservation ID"}
	}

	result, err := s.reservation.AddServiceCharge(ctx, reservation.AddServiceChargeParams{
		TenantID:       req.TenantID,
		LocationID:     req.LocationID,
		ReservationID:  id,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Status:         req.Status,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to add service charge", "error", err, "reservation_id", id)
		return nil, err
	}

	s.signalAddCharge(result)

	return &ChargeResponse{
		Charge: *result,
	}, nil
}

// signalAddCharge notifies the stay workflow so it recalculates the
// reservation totals. The charge row is already committed, so a missed
// signal only delays the recalculation until check-out.
func (s *Service) signalAddCharge(charge *model.Charge) {
	workflowID := charge.StayWorkflowID
	if workflowID == "" {
		rlog.Warn("charge has no stay workflow, skipping signal", "charge_id", charge.ID)
		return
	}

	runAsync("signal-add-charge", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.AddChargeSignalName, workflow.AddChargeSignal{
			ChargeID: charge.ID,
		})
	})
}

// Validate implements validation for AddServiceChargeRequest
func (r *AddServiceChargeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
