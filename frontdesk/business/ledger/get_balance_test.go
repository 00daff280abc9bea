package ledger

import (
	"context"
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/frontdesk/mocks/business/currency_business"
	"encore.app/frontdesk/mocks/repository/charges_repo"
	"encore.app/frontdesk/mocks/repository/payments_repo"
	"encore.app/frontdesk/mocks/repository/reservations_repo"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/charges"
	"encore.app/frontdesk/repository/payments"
	"encore.app/frontdesk/repository/reservations"
)

func amountNumeric(amount float64) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(int64(amount * 100)),
		Exp:   -2,
		Valid: true,
	}
}

func reservationRow(currency string, total, paid float64) reservations.Reservation {
	return reservations.Reservation{
		ID:            1,
		TenantID:      1,
		LocationID:    1,
		RoomID:        7,
		GuestName:     "Amara Perera",
		Currency:      currency,
		Status:        "checked_in",
		RoomAmount:    amountNumeric(300),
		TotalAmount:   amountNumeric(total),
		PaidAmount:    amountNumeric(paid),
		BalanceAmount: amountNumeric(total - paid),
	}
}

func newLedgerBusiness(ctrl *gomock.Controller) (*business, *reservations_repo.MockQuerier, *charges_repo.MockQuerier, *payments_repo.MockQuerier, *currency_business.MockBusiness) {
	mockReservationRepo := reservations_repo.NewMockQuerier(ctrl)
	mockChargeRepo := charges_repo.NewMockQuerier(ctrl)
	mockPaymentRepo := payments_repo.NewMockQuerier(ctrl)
	mockCurrency := currency_business.NewMockBusiness(ctrl)

	b := &business{
		reservationRepo: mockReservationRepo,
		chargeRepo:      mockChargeRepo,
		paymentRepo:     mockPaymentRepo,
		currencyService: mockCurrency,
	}
	return b, mockReservationRepo, mockChargeRepo, mockPaymentRepo, mockCurrency
}

func TestGetBalance_SameCurrencyUsesStoredTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockReservationRepo, mockChargeRepo, mockPaymentRepo, mockCurrency := newLedgerBusiness(ctrl)

	mockReservationRepo.EXPECT().GetReservation(gomock.Any(), reservations.GetReservationParams{
		ID: 1, TenantID: 1, LocationID: 1,
	}).Return(reservationRow("USD", 350, 200), nil)
	mockChargeRepo.EXPECT().ListChargesByReservation(gomock.Any(), int64(1)).Return([]charges.ReservationCharge{
		{
			ID:            10,
			ReservationID: 1,
			Kind:          "service",
			Amount:        amountNumeric(50),
			Currency:      "USD",
			Status:        "pending",
		},
	}, nil)
	mockPaymentRepo.EXPECT().ListPaymentsByReservation(gomock.Any(), int64(1)).Return([]payments.ReservationPayment{
		{
			ID:            20,
			ReservationID: 1,
			AccountID:     "acct-1",
			Amount:        amountNumeric(200),
			Currency:      "USD",
			Method:        "card",
		},
	}, nil)
	// same currency: no conversion calls expected
	mockCurrency.EXPECT().ConvertAmount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	snapshot, err := b.GetBalance(context.Background(), 1, 1, 1, "")

	assert.NoError(t, err)
	assert.Equal(t, "USD", snapshot.DisplayCurrency)
	assert.Equal(t, float64(350), snapshot.TotalAmount)
	assert.Equal(t, float64(200), snapshot.PaidAmount)
	assert.Equal(t, float64(50), snapshot.PendingServiceAmount)
	assert.Equal(t, float64(150), snapshot.BalanceDue)
}

func TestGetBalance_CrossCurrencyComputesFromRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockReservationRepo, mockChargeRepo, mockPaymentRepo, mockCurrency := newLedgerBusiness(ctrl)

	mockReservationRepo.EXPECT().GetReservation(gomock.Any(), gomock.Any()).Return(reservationRow("USD", 300, 0), nil)
	mockChargeRepo.EXPECT().ListChargesByReservation(gomock.Any(), int64(1)).Return(nil, nil)
	mockPaymentRepo.EXPECT().ListPaymentsByReservation(gomock.Any(), int64(1)).Return(nil, nil)

	mockCurrency.EXPECT().ConvertAmount(gomock.Any(), int64(1), int64(1), "USD", "LKR", float64(300)).
		Return(&model.ConversionResult{ConvertedAmount: 90000}, nil)

	snapshot, err := b.GetBalance(context.Background(), 1, 1, 1, "LKR")

	assert.NoError(t, err)
	assert.Equal(t, "LKR", snapshot.DisplayCurrency)
	assert.Equal(t, float64(90000), snapshot.TotalAmount)
	assert.Equal(t, float64(0), snapshot.PaidAmount)
	assert.Equal(t, float64(90000), snapshot.BalanceDue)
}

func TestGetBalance_ReservationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockReservationRepo, _, _, _ := newLedgerBusiness(ctrl)

	mockReservationRepo.EXPECT().GetReservation(gomock.Any(), gomock.Any()).Return(reservations.Reservation{}, pgx.ErrNoRows)

	snapshot, err := b.GetBalance(context.Background(), 1, 1, 1, "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reservation not found")
	assert.Nil(t, snapshot)
}
