package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/charges"
	"encore.app/frontdesk/repository/reservations"
)

// TxQueriers bundles the repositories bound to one transition's transaction.
// They are handed to the locked callback and must not outlive it.
type TxQueriers struct {
	Reservations reservations.Querier
	Charges      charges.Querier
}

// StateMachine defines the interface for reservation lifecycle transitions
// and transaction management
type StateMachine interface {
	// GetReservationWithLock locks the reservation row and runs the business
	// logic against the current row state with transaction-scoped repositories
	GetReservationWithLock(ctx context.Context, reservationID int64, businessLogic func(current reservations.Reservation, tx TxQueriers) error) error

	// State transition methods
	TransitionToCheckedInTx(ctx context.Context, id int64) error
	TransitionToCheckedOutTx(ctx context.Context, id int64) error
	TransitionToCancelledTx(ctx context.Context, id int64) error
	TransitionToAttentionTx(ctx context.Context, id int64, errorMessage string) error
}

// StayStateMachine handles all reservation state transitions and complex
// domain operations. Owns transaction boundaries and repository access.
type StayStateMachine struct {
	db              *pgxpool.Pool
	reservationRepo reservations.Querier
	chargeRepo      charges.Querier
}

var _ StateMachine = (*StayStateMachine)(nil)

// NewStayStateMachine creates a new stay state machine with database and repository access
func NewStayStateMachine(db *pgxpool.Pool, reservationRepo reservations.Querier, chargeRepo charges.Querier) *StayStateMachine {
	return &StayStateMachine{
		db:              db,
		reservationRepo: reservationRepo,
		chargeRepo:      chargeRepo,
	}
}

// GetReservationWithLock locks the reservation row, runs the business logic
// against the current row state, and commits if it succeeds.
func (sm *StayStateMachine) GetReservationWithLock(ctx context.Context, reservationID int64, businessLogic func(reservations.Reservation, TxQueriers) error) error {
	return sm.transitionWithLock(ctx, reservationID, businessLogic)
}

// transitionWithLock performs a state transition with proper row-level
// locking. The tx-scoped queriers live on the stack of this call, never on
// the machine itself, so concurrent transitions cannot observe each
// other's transaction.
func (sm *StayStateMachine) transitionWithLock(ctx context.Context, id int64, transitionFunc func(reservations.Reservation, TxQueriers) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	txQueriers := TxQueriers{
		Reservations: sm.reservationRepo.(*reservations.Queries).WithTx(tx),
		Charges:      sm.chargeRepo.(*charges.Queries).WithTx(tx),
	}

	currentReservation, err := txQueriers.Reservations.GetReservationForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "reservation not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock reservation for state transition"}
	}

	err = transitionFunc(currentReservation, txQueriers)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"}
	}

	return nil
}

// TransitionToCheckedInTx moves a confirmed reservation into checked_in with row locking
func (sm *StayStateMachine) TransitionToCheckedInTx(ctx context.Context, id int64) error {
	return sm.transitionWithLock(ctx, id, func(current reservations.Reservation, tx TxQueriers) error {
		if current.Status != string(model.ReservationStatusConfirmed) {
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "reservation must be confirmed to check in",
			}
		}

		_, err := tx.Reservations.UpdateReservationStatus(ctx, reservations.UpdateReservationStatusParams{
			ID:     id,
			Status: string(model.ReservationStatusCheckedIn),
		})
		return err
	})
}

// TransitionToCheckedOutTx moves a checked-in reservation into checked_out with row locking
func (sm *StayStateMachine) TransitionToCheckedOutTx(ctx context.Context, id int64) error {
	return sm.transitionWithLock(ctx, id, func(current reservations.Reservation, tx TxQueriers) error {
		if current.Status != string(model.ReservationStatusCheckedIn) {
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "reservation must be checked in to check out",
			}
		}

		_, err := tx.Reservations.UpdateReservationStatus(ctx, reservations.UpdateReservationStatusParams{
			ID:     id,
			Status: string(model.ReservationStatusCheckedOut),
		})
		return err
	})
}

// TransitionToCancelledTx cancels a reservation that has not checked out yet
func (sm *StayStateMachine) TransitionToCancelledTx(ctx context.Context, id int64) error {
	return sm.transitionWithLock(ctx, id, func(current reservations.Reservation, tx TxQueriers) error {
		switch current.Status {
		case string(model.ReservationStatusCancelled):
			// already cancelled - idempotent operation
			return nil
		case string(model.ReservationStatusCheckedOut):
			return &errs.Error{
				Code:    errs.InvalidArgument,
				Message: "reservation already checked out, cannot cancel",
			}
		}

		_, err := tx.Reservations.UpdateReservationStatus(ctx, reservations.UpdateReservationStatusParams{
			ID:     id,
			Status: string(model.ReservationStatusCancelled),
		})
		return err
	})
}

// TransitionToAttentionTx parks the reservation in attention_required with
// an error message. Runs in its own transaction: callers invoke it after a
// failed transition has rolled back, so the parked status survives.
func (sm *StayStateMachine) TransitionToAttentionTx(ctx context.Context, id int64, errorMessage string) error {
	return sm.transitionWithLock(ctx, id, func(current reservations.Reservation, tx TxQueriers) error {
		_, err := tx.Reservations.UpdateReservationFailure(ctx, reservations.UpdateReservationFailureParams{
			ID:           id,
			Status:       string(model.ReservationStatusAttentionRequired),
			ErrorMessage: pgtype.Text{String: errorMessage, Valid: true},
		})
		return err
	})
}
