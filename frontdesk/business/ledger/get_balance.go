package ledger

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/reservations"
)

// GetBalance produces the reservation's balance snapshot in the requested
// display currency. When the display currency matches the reservation's,
// the trigger-maintained total/paid columns are authoritative and only the
// pending-service split is derived locally; otherwise the snapshot is
// computed from the raw charge and payment rows.
func (b *business) GetBalance(ctx context.Context, tenantID, locationID, reservationID int64, displayCurrency string) (*model.BalanceSnapshot, error) {
	dbReservation, err := b.reservationRepo.GetReservation(ctx, reservations.GetReservationParams{
		ID:         reservationID,
		TenantID:   tenantID,
		LocationID: locationID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "reservation not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to fetch reservation"}
	}
	reservation := convertDBReservationToModel(dbReservation)

	if displayCurrency == "" {
		displayCurrency = reservation.Currency
	}

	dbCharges, err := b.chargeRepo.ListChargesByReservation(ctx, reservationID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to fetch charges"}
	}
	chargeLines := make([]model.Charge, len(dbCharges))
	for i, dbCharge := range dbCharges {
		chargeLines[i] = *convertDBChargeToModel(dbCharge)
	}

	dbPayments, err := b.paymentRepo.ListPaymentsByReservation(ctx, reservationID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to fetch payments"}
	}
	paymentLines := make([]model.Payment, len(dbPayments))
	for i, dbPayment := range dbPayments {
		paymentLines[i] = *convertDBPaymentToModel(dbPayment)
	}

	convert := func(ctx context.Context, fromCurrency, toCurrency string, amount float64) (float64, error) {
		result, err := b.currencyService.ConvertAmount(ctx, tenantID, locationID, fromCurrency, toCurrency, amount)
		if err != nil {
			rlog.Warn("conversion failed, falling back to original amount",
				"from", fromCurrency, "to", toCurrency, "reservation_id", reservationID, "error", err)
			return 0, err
		}
		return result.ConvertedAmount, nil
	}

	if displayCurrency == reservation.Currency {
		// The datastore trigger keeps total/paid authoritative in the
		// reservation's own currency; only the pending split is derived here.
		var pendingServices float64
		for _, charge := range chargeLines {
			if charge.Kind == model.ChargeKindService && charge.Pending() {
				pendingServices += charge.Amount
			}
		}
		return &model.BalanceSnapshot{
			DisplayCurrency:      displayCurrency,
			TotalAmount:          model.Round2(reservation.TotalAmount),
			PaidAmount:           model.Round2(reservation.PaidAmount),
			PendingServiceAmount: model.Round2(pendingServices),
			BalanceDue:           model.Round2(reservation.TotalAmount - reservation.PaidAmount),
		}, nil
	}

	return ComputeSnapshot(ctx, reservation, chargeLines, paymentLines, displayCurrency, convert), nil
}
