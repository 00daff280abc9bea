package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/reservations"
)

type CreateReservationParams struct {
	TenantID       int64
	LocationID     int64
	RoomID         int64
	GuestName      string
	Currency       string
	NightlyRate    float64
	CheckInDate    time.Time
	CheckOutDate   time.Time
	IdempotencyKey string
}

// CreateReservation checks availability for the requested range, fixes the
// room charge at nights × nightly rate, and inserts the reservation.
func (b *business) CreateReservation(ctx context.Context, params CreateReservationParams) (*model.Reservation, error) {
	if !params.CheckOutDate.After(params.CheckInDate) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "check_out_date must be after check_in_date"}
	}
	if params.NightlyRate <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "nightly rate must be positive"}
	}

	// the reservation currency must have a conversion pivot configured
	if _, err := b.currencyService.GetRate(ctx, params.TenantID, params.LocationID, params.Currency); err != nil {
		return nil, err
	}

	available, err := b.availabilityService.CheckRange(ctx, params.TenantID, params.LocationID, params.RoomID, params.CheckInDate, params.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "room is not available for the requested dates"}
	}

	nights := model.StayNights(params.CheckInDate, params.CheckOutDate)
	roomAmount := model.Round2(float64(nights) * params.NightlyRate)

	workflowID := fmt.Sprintf("stay-%s", params.IdempotencyKey)

	dbReservation, err := b.reservationRepo.CreateReservation(ctx, reservations.CreateReservationParams{
		TenantID:       params.TenantID,
		LocationID:     params.LocationID,
		RoomID:         params.RoomID,
		GuestName:      params.GuestName,
		Currency:       params.Currency,
		Status:         string(model.ReservationStatusConfirmed),
		RoomAmount:     numericFromAmount(roomAmount),
		CheckInDate:    pgtype.Date{Time: params.CheckInDate, Valid: true},
		CheckOutDate:   pgtype.Date{Time: params.CheckOutDate, Valid: true},
		WorkflowID:     pgtype.Text{String: workflowID, Valid: true},
		IdempotencyKey: params.IdempotencyKey,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "reservation is duplicated"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create reservation"}
	}

	return convertDBReservationToModel(dbReservation), nil
}
