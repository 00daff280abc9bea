package reservation

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/domain"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/reservations"
)

// CancelReservation cancels a reservation that has not checked out.
// Cancelled rows drop out of availability and ledger consideration.
func (b *business) CancelReservation(ctx context.Context, tenantID, locationID, id int64) error {
	// scope check before mutating; the state machine locks by primary key
	if _, err := b.GetReservation(ctx, tenantID, locationID, id); err != nil {
		return err
	}
	return b.stateMachine.TransitionToCancelledTx(ctx, id)
}

// CheckInReservation transitions a confirmed reservation into checked_in.
// Driven by the stay workflow when the check-in date arrives.
func (b *business) CheckInReservation(ctx context.Context, id int64) error {
	return b.stateMachine.TransitionToCheckedInTx(ctx, id)
}

// CheckOutReservation closes out a stay: final totals are recalculated and
// the reservation moves to checked_out, all within one locked transaction.
// A failed recalculation parks the reservation in attention_required.
func (b *business) CheckOutReservation(ctx context.Context, id int64) error {
	var recalcErr error

	err := b.stateMachine.GetReservationWithLock(ctx, id, func(current reservations.Reservation, tx domain.TxQueriers) error {
		switch current.Status {
		case string(model.ReservationStatusCheckedOut):
			// already checked out - idempotent operation
			return nil

		case string(model.ReservationStatusCheckedIn):
			if e := tx.Reservations.RecalculateReservationTotal(ctx, id); e != nil {
				recalcErr = e
				return &errs.Error{Code: errs.Internal, Message: "failed to calculate final reservation total: " + e.Error()}
			}

			_, err := tx.Reservations.UpdateReservationStatus(ctx, reservations.UpdateReservationStatusParams{
				ID:     id,
				Status: string(model.ReservationStatusCheckedOut),
			})
			return err

		default:
			return &errs.Error{Code: errs.InvalidArgument, Message: "reservation must be checked in to check out"}
		}
	})

	// The failed transaction has rolled back; park the reservation in its
	// own transaction so the attention status survives for operators.
	if recalcErr != nil {
		errorMsg := "failed to calculate final reservation total: " + recalcErr.Error()
		if failureErr := b.stateMachine.TransitionToAttentionTx(ctx, id, errorMsg); failureErr != nil {
			return failureErr
		}
	}

	return err
}

// RecalculateTotal re-derives the reservation's total/paid/balance columns
// from its charge and payment rows. Used by the stay workflow after a
// charge is added.
func (b *business) RecalculateTotal(ctx context.Context, id int64) error {
	return b.stateMachine.GetReservationWithLock(ctx, id, func(current reservations.Reservation, tx domain.TxQueriers) error {
		return tx.Reservations.RecalculateReservationTotal(ctx, id)
	})
}
