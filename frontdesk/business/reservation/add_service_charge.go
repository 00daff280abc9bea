package reservation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/domain"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/charges"
	"encore.app/frontdesk/repository/reservations"
)

type AddServiceChargeParams struct {
	TenantID       int64
	LocationID     int64
	ReservationID  int64
	Amount         float64
	Currency       string
	Status         string
	Description    string
	IdempotencyKey string
}

// AddServiceCharge adds an ad-hoc charge to a guest's bill with the
// reservation row locked, so it cannot race a concurrent check-out. A
// charge with status "pending" raises the balance due; one carrying a
// payment method is already settled. The reservation totals are
// recalculated by the stay workflow after the insert.
func (b *business) AddServiceCharge(ctx context.Context, params AddServiceChargeParams) (*model.Charge, error) {
	if params.Amount <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than zero"}
	}
	if params.Status == "" {
		params.Status = model.ChargeStatusPending
	}

	var result *model.Charge
	var resultErr error

	err := b.stateMachine.GetReservationWithLock(ctx, params.ReservationID, func(current reservations.Reservation, tx domain.TxQueriers) error {
		switch current.Status {
		case string(model.ReservationStatusConfirmed), string(model.ReservationStatusCheckedIn):
			result, resultErr = b.createCharge(ctx, params, current, tx.Charges)
			return resultErr

		case string(model.ReservationStatusCheckedOut):
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "reservation is checked out, cannot add charges",
			}

		case string(model.ReservationStatusCancelled):
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "reservation is cancelled, cannot add charges",
			}

		default:
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "reservation is not in valid state for charges",
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// createCharge converts the amount into the reservation currency and
// inserts the charge row. Runs within the reservation's row lock.
func (b *business) createCharge(ctx context.Context, params AddServiceChargeParams, current reservations.Reservation, chargeRepo charges.Querier) (*model.Charge, error) {
	conversion, err := b.currencyService.ConvertAmount(ctx, params.TenantID, params.LocationID, params.Currency, current.Currency, params.Amount)
	if err != nil {
		return nil, err
	}

	var metadataJSON []byte
	if conversion.Metadata != nil {
		metadataJSON, err = json.Marshal(conversion.Metadata)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to marshal metadata"}
		}
	}

	dbCharge, err := chargeRepo.CreateCharge(ctx, charges.CreateChargeParams{
		ReservationID:  params.ReservationID,
		Kind:           string(model.ChargeKindService),
		Amount:         numericFromAmount(conversion.ConvertedAmount),
		Currency:       current.Currency,
		Status:         params.Status,
		Description:    pgtype.Text{String: params.Description, Valid: true},
		Metadata:       metadataJSON,
		IdempotencyKey: params.IdempotencyKey,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "charge already exists"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create charge"}
	}

	result := convertDBChargeToModel(dbCharge)
	result.SetStayWorkflowID(current.WorkflowID.String)

	return result, nil
}
