package frontdesk

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/business/payment"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/workflow"
)

type RecordPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	TenantID   int64   `json:"tenant_id" validate:"required"`
	LocationID int64   `json:"location_id" validate:"required"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency" validate:"required,len=3,alpha"`
	AccountID  string  `json:"account_id"`
	Method     string  `json:"method" validate:"required,max=50"`
}

type PaymentResponse struct {
	Payment model.Payment `json:"payment"`
}

//encore:api public path=/v1/reservations/:id/payments method=POST tag:idempotency
func (s *Service) RecordPayment(ctx context.Context, id int64, req *RecordPaymentRequest) (*PaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid reservation ID"}
	}

	result, err := s.payment.RecordPayment(ctx, payment.RecordPaymentParams{
		TenantID:       req.TenantID,
		LocationID:     req.LocationID,
		ReservationID:  id,
		Amount:         req.Amount,
		Currency:       req.Currency,
		AccountID:      req.AccountID,
		Method:         req.Method,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to record payment", "error", err, "reservation_id", id)
		return nil, err
	}

	s.signalPaymentRecorded(result)

	return &PaymentResponse{
		Payment: *result,
	}, nil
}

// signalPaymentRecorded nudges the stay workflow to refresh the
// reservation totals. The paid and balance columns were already updated
// by the datastore trigger, so a missed signal is harmless.
func (s *Service) signalPaymentRecorded(p *model.Payment) {
	workflowID := p.StayWorkflowID
	if workflowID == "" {
		rlog.Warn("payment has no stay workflow, skipping signal", "payment_id", p.ID)
		return
	}

	runAsync("signal-payment-recorded", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.PaymentRecordedSignalName, workflow.PaymentRecordedSignal{
			PaymentID: p.ID,
		})
	})
}

// Validate implements validation for RecordPaymentRequest. Amount and
// account checks stay in the business layer so the rejection taxonomy
// lives in one place.
func (r *RecordPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
