package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/frontdesk/business/reservation"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	ReservationBusiness reservation.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(reservationBusiness reservation.Business) {
	activityDeps = &ActivityDependencies{
		ReservationBusiness: reservationBusiness,
	}
}

// CheckInReservationActivity transitions a reservation to checked_in when the stay begins
func CheckInReservationActivity(ctx context.Context, reservationID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing check-in activity", "reservationID", reservationID)

	if activityDeps == nil || activityDeps.ReservationBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.ReservationBusiness.CheckInReservation(ctx, reservationID)
	if err != nil {
		logger.Error("Failed to check in reservation", "reservationID", reservationID, "error", err)
		return err
	}

	logger.Info("Successfully checked in reservation", "reservationID", reservationID)
	return nil
}

// CheckOutReservationActivity finalizes totals and transitions the reservation to checked_out
func CheckOutReservationActivity(ctx context.Context, reservationID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing check-out activity", "reservationID", reservationID)

	if activityDeps == nil || activityDeps.ReservationBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.ReservationBusiness.CheckOutReservation(ctx, reservationID)
	if err != nil {
		logger.Error("Failed to check out reservation", "reservationID", reservationID, "error", err)
		return err
	}

	logger.Info("Successfully checked out reservation", "reservationID", reservationID)
	return nil
}

// RecalculateTotalActivity re-derives the reservation totals after a charge is added
func RecalculateTotalActivity(ctx context.Context, reservationID int64) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing recalculate total activity", "reservationID", reservationID)

	if activityDeps == nil || activityDeps.ReservationBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	err := activityDeps.ReservationBusiness.RecalculateTotal(ctx, reservationID)
	if err != nil {
		logger.Error("Failed to recalculate reservation total", "reservationID", reservationID, "error", err)
		return temporal.NewNonRetryableApplicationError("failed to recalculate reservation total", "RESERVATION_TOTAL_UPDATE_FAILED", err)
	}

	logger.Info("Successfully recalculated reservation total", "reservationID", reservationID)
	return nil
}
