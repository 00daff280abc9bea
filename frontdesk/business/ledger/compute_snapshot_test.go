package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/frontdesk/model"
)

// identityConvert is a rate table where every currency trades 1:1.
func identityConvert(_ context.Context, _, _ string, amount float64) (float64, error) {
	return amount, nil
}

func usdLkrConvert(_ context.Context, from, to string, amount float64) (float64, error) {
	switch {
	case from == "LKR" && to == "USD":
		return model.Round2(amount / 300.0), nil
	case from == "USD" && to == "LKR":
		return model.Round2(amount * 300.0), nil
	}
	return 0, errors.New("exchange rate not found for " + from)
}

func testReservation(currency string, roomAmount float64) *model.Reservation {
	return &model.Reservation{
		ID:         1,
		TenantID:   1,
		LocationID: 1,
		RoomID:     7,
		Currency:   currency,
		Status:     model.ReservationStatusCheckedIn,
		RoomAmount: roomAmount,
	}
}

func serviceCharge(amount float64, currency, status string) model.Charge {
	return model.Charge{
		ReservationID: 1,
		Kind:          model.ChargeKindService,
		Amount:        amount,
		Currency:      currency,
		Status:        status,
	}
}

func paymentLine(amount float64, currency string) model.Payment {
	return model.Payment{
		ReservationID: 1,
		Amount:        amount,
		Currency:      currency,
	}
}

func TestComputeSnapshot(t *testing.T) {
	reservation := testReservation("USD", 300)
	charges := []model.Charge{serviceCharge(50, "USD", model.ChargeStatusPending)}
	payments := []model.Payment{paymentLine(200, "USD")}

	snapshot := ComputeSnapshot(context.Background(), reservation, charges, payments, "USD", identityConvert)

	assert.Equal(t, "USD", snapshot.DisplayCurrency)
	assert.Equal(t, float64(350), snapshot.TotalAmount)
	assert.Equal(t, float64(200), snapshot.PaidAmount)
	assert.Equal(t, float64(50), snapshot.PendingServiceAmount)
	assert.Equal(t, float64(150), snapshot.BalanceDue)
	assert.Empty(t, snapshot.RateWarnings)
}

func TestComputeSnapshot_Deterministic(t *testing.T) {
	reservation := testReservation("USD", 300)
	charges := []model.Charge{
		serviceCharge(50, "USD", model.ChargeStatusPending),
		serviceCharge(25, "USD", "card"),
	}
	payments := []model.Payment{paymentLine(100, "USD"), paymentLine(75.5, "USD")}

	first := ComputeSnapshot(context.Background(), reservation, charges, payments, "USD", identityConvert)
	second := ComputeSnapshot(context.Background(), reservation, charges, payments, "USD", identityConvert)

	assert.Equal(t, first, second)
}

func TestComputeSnapshot_SettledChargeCountsAsPaid(t *testing.T) {
	reservation := testReservation("USD", 300)
	// settled at point of sale, so it raises total and paid together
	charges := []model.Charge{serviceCharge(40, "USD", "card")}

	snapshot := ComputeSnapshot(context.Background(), reservation, charges, nil, "USD", identityConvert)

	assert.Equal(t, float64(340), snapshot.TotalAmount)
	assert.Equal(t, float64(40), snapshot.PaidAmount)
	assert.Equal(t, float64(0), snapshot.PendingServiceAmount)
	assert.Equal(t, float64(300), snapshot.BalanceDue)
}

func TestComputeSnapshot_OverpaymentStaysNegative(t *testing.T) {
	reservation := testReservation("USD", 100)
	payments := []model.Payment{paymentLine(130, "USD")}

	snapshot := ComputeSnapshot(context.Background(), reservation, nil, payments, "USD", identityConvert)

	assert.Equal(t, float64(-30), snapshot.BalanceDue)
}

func TestComputeSnapshot_ConvertsIntoDisplayCurrency(t *testing.T) {
	reservation := testReservation("USD", 100)
	charges := []model.Charge{serviceCharge(3000, "LKR", model.ChargeStatusPending)}
	payments := []model.Payment{paymentLine(50, "USD")}

	snapshot := ComputeSnapshot(context.Background(), reservation, charges, payments, "USD", usdLkrConvert)

	assert.Equal(t, float64(110), snapshot.TotalAmount)
	assert.Equal(t, float64(50), snapshot.PaidAmount)
	assert.Equal(t, float64(10), snapshot.PendingServiceAmount)
	assert.Equal(t, float64(60), snapshot.BalanceDue)
	assert.Empty(t, snapshot.RateWarnings)
}

func TestComputeSnapshot_MissingRateFallsBackWithWarning(t *testing.T) {
	reservation := testReservation("USD", 100)
	charges := []model.Charge{serviceCharge(500, "XXX", model.ChargeStatusPending)}

	snapshot := ComputeSnapshot(context.Background(), reservation, charges, nil, "USD", usdLkrConvert)

	// the unconvertible line is included at face value rather than dropped
	assert.Equal(t, float64(600), snapshot.TotalAmount)
	assert.Len(t, snapshot.RateWarnings, 1)
	assert.Contains(t, snapshot.RateWarnings[0], "XXX")
}

func TestComputeSnapshot_IgnoresRoomKindCharges(t *testing.T) {
	reservation := testReservation("USD", 300)
	charges := []model.Charge{
		{ReservationID: 1, Kind: model.ChargeKindRoom, Amount: 300, Currency: "USD", Status: model.ChargeStatusPending},
	}

	snapshot := ComputeSnapshot(context.Background(), reservation, charges, nil, "USD", identityConvert)

	// room kind rows mirror RoomAmount and must not double count
	assert.Equal(t, float64(300), snapshot.TotalAmount)
}
