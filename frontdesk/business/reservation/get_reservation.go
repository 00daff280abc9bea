package reservation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/reservations"
)

func (b *business) GetReservation(ctx context.Context, tenantID, locationID, id int64) (*model.Reservation, error) {
	dbReservation, err := b.reservationRepo.GetReservation(ctx, reservations.GetReservationParams{
		ID:         id,
		TenantID:   tenantID,
		LocationID: locationID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "reservation not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to fetch reservation"}
	}

	return convertDBReservationToModel(dbReservation), nil
}

func (b *business) ListReservations(ctx context.Context, tenantID, locationID int64, limit, offset int32) ([]*model.Reservation, int64, error) {
	dbReservations, err := b.reservationRepo.ListReservations(ctx, reservations.ListReservationsParams{
		TenantID:   tenantID,
		LocationID: locationID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list reservations"}
	}

	totalCount, err := b.reservationRepo.CountReservations(ctx, reservations.CountReservationsParams{
		TenantID:   tenantID,
		LocationID: locationID,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count reservations"}
	}

	result := make([]*model.Reservation, len(dbReservations))
	for i, dbReservation := range dbReservations {
		result[i] = convertDBReservationToModel(dbReservation)
	}

	return result, totalCount, nil
}
