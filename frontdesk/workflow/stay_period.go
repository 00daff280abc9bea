package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// StayPeriodWorkflowParams contains parameters for starting the stay workflow
type StayPeriodWorkflowParams struct {
	ReservationID int64     `json:"reservation_id"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
}

// StayPeriod manages the lifecycle of one reservation's stay: it waits for
// the check-in date, keeps totals current while charges arrive, and checks
// the guest out at the end of the stay or on a manual signal.
func StayPeriod(ctx workflow.Context, params StayPeriodWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting stay period workflow", "reservationID", params.ReservationID, "checkIn", params.CheckIn, "checkOut", params.CheckOut)

	checkIn := params.CheckIn
	now := workflow.Now(ctx)
	if checkIn.After(now) {
		waitDuration := checkIn.Sub(now)
		logger.Info("Waiting for check-in date", "reservationID", params.ReservationID, "waitDuration", waitDuration)
		err := workflow.Sleep(ctx, waitDuration)
		if err != nil {
			return err
		}
		logger.Info("Check-in date reached", "reservationID", params.ReservationID)
	}

	stayDuration := params.CheckOut.Sub(params.CheckIn)
	if stayDuration <= 0 {
		logger.Warn("Check-out is not after check-in, checking out immediately", "reservationID", params.ReservationID)
		return checkOutReservation(ctx, params.ReservationID)
	}

	timer := workflow.NewTimer(ctx, stayDuration)

	addChargeCh := workflow.GetSignalChannel(ctx, AddChargeSignalName)
	paymentCh := workflow.GetSignalChannel(ctx, PaymentRecordedSignalName)
	checkOutCh := workflow.GetSignalChannel(ctx, CheckOutSignalName)

	err := checkInReservation(ctx, params.ReservationID)
	if err != nil {
		logger.Error("Failed to check in reservation", "reservationID", params.ReservationID, "error", err)
		return err
	}

	checkedOut := false

	logger.Info("Entering active stay period", "reservationID", params.ReservationID, "duration", stayDuration)

	for !checkedOut {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(addChargeCh, func(c workflow.ReceiveChannel, more bool) {
			var signal AddChargeSignal
			c.Receive(ctx, &signal)
			logger.Info("Tracking charge addition", "reservationID", params.ReservationID, "chargeID", signal.ChargeID)
			err := recalculateTotal(ctx, params.ReservationID)
			if err != nil {
				logger.Error("Failed to recalculate reservation total after charge addition", "reservationID", params.ReservationID, "chargeID", signal.ChargeID, "error", err)
			} else {
				logger.Info("Successfully recalculated reservation total after charge addition", "reservationID", params.ReservationID, "chargeID", signal.ChargeID)
			}
		})

		selector.AddReceive(paymentCh, func(c workflow.ReceiveChannel, more bool) {
			var signal PaymentRecordedSignal
			c.Receive(ctx, &signal)
			logger.Info("Tracking recorded payment", "reservationID", params.ReservationID, "paymentID", signal.PaymentID)
			err := recalculateTotal(ctx, params.ReservationID)
			if err != nil {
				logger.Error("Failed to recalculate reservation total after payment", "reservationID", params.ReservationID, "paymentID", signal.PaymentID, "error", err)
			} else {
				logger.Info("Successfully recalculated reservation total after payment", "reservationID", params.ReservationID, "paymentID", signal.PaymentID)
			}
		})

		selector.AddReceive(checkOutCh, func(c workflow.ReceiveChannel, more bool) {
			var signal CheckOutSignal
			c.Receive(ctx, &signal)
			logger.Info("Received manual check-out signal", "reservationID", params.ReservationID, "requestedBy", signal.RequestedBy)

			err := checkOutReservation(ctx, params.ReservationID)
			if err != nil {
				logger.Error("Failed to check out reservation manually", "error", err)
			} else {
				logger.Info("Successfully checked out reservation manually", "reservationID", params.ReservationID)
				checkedOut = true
			}
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Auto check-out due to end of stay", "reservationID", params.ReservationID)

			err := checkOutReservation(ctx, params.ReservationID)
			if err != nil {
				logger.Error("Failed to auto check out reservation", "error", err)
			} else {
				logger.Info("Successfully auto checked out reservation", "reservationID", params.ReservationID)
				checkedOut = true
			}
		})

		selector.Select(ctx)
	}

	logger.Info("Stay period workflow completed", "reservationID", params.ReservationID)
	return nil
}

// checkOutReservation executes the CheckOutReservation activity
func checkOutReservation(ctx workflow.Context, reservationID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, CheckOutReservationActivity, reservationID).Get(ctx, nil)
}

// checkInReservation executes the CheckInReservation activity
func checkInReservation(ctx workflow.Context, reservationID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    1 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, CheckInReservationActivity, reservationID).Get(ctx, nil)
}

// recalculateTotal executes the RecalculateTotal activity to refresh totals
func recalculateTotal(ctx workflow.Context, reservationID int64) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, RecalculateTotalActivity, reservationID).Get(ctx, nil)
}
