package ledger

import (
	"context"

	"encore.app/frontdesk/model"
)

// ConvertFunc converts an amount from one currency into another. The ledger
// takes it as a parameter so the snapshot stays a pure function of its
// inputs and works against any rate source, including in-memory fakes.
type ConvertFunc func(ctx context.Context, fromCurrency, toCurrency string, amount float64) (float64, error)

// ComputeSnapshot aggregates a reservation's charges and payments into one
// display currency. Given the same rows and rate table it is deterministic.
// A line whose conversion fails falls back to its original amount and adds
// a warning; display must never be blocked by a missing rate.
//
// BalanceDue is not clamped at zero: an overpayment shows as a negative
// balance so operators can see and correct it.
func ComputeSnapshot(ctx context.Context, reservation *model.Reservation, chargeLines []model.Charge, paymentLines []model.Payment, displayCurrency string, convert ConvertFunc) *model.BalanceSnapshot {
	snapshot := &model.BalanceSnapshot{DisplayCurrency: displayCurrency}

	toDisplay := func(amount float64, currencyCode string) float64 {
		if currencyCode == displayCurrency {
			return amount
		}
		converted, err := convert(ctx, currencyCode, displayCurrency, amount)
		if err != nil {
			snapshot.RateWarnings = append(snapshot.RateWarnings, currencyCode+": shown unconverted, "+err.Error())
			return amount
		}
		return converted
	}

	roomCharge := toDisplay(reservation.RoomAmount, reservation.Currency)

	var pendingServices, paidServices float64
	for _, charge := range chargeLines {
		if charge.Kind != model.ChargeKindService {
			continue
		}
		amount := toDisplay(charge.Amount, charge.Currency)
		if charge.Pending() {
			pendingServices += amount
		} else {
			paidServices += amount
		}
	}

	var paymentsTotal float64
	for _, payment := range paymentLines {
		paymentsTotal += toDisplay(payment.Amount, payment.Currency)
	}

	snapshot.TotalAmount = model.Round2(roomCharge + pendingServices + paidServices)
	snapshot.PaidAmount = model.Round2(paymentsTotal + paidServices)
	snapshot.PendingServiceAmount = model.Round2(pendingServices)
	snapshot.BalanceDue = model.Round2(snapshot.TotalAmount - snapshot.PaidAmount)

	return snapshot
}
