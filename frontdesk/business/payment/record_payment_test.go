package payment

import (
	"context"
	"math/big"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/frontdesk/mocks/business/currency_business"
	"encore.app/frontdesk/mocks/repository/payments_repo"
	"encore.app/frontdesk/mocks/repository/reservations_repo"
	"encore.app/frontdesk/model"
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

func usdReservation(total, paid float64) reservations.Reservation {
	return reservations.Reservation{
		ID:          1,
		TenantID:    1,
		LocationID:  1,
		RoomID:      7,
		GuestName:   "Amara Perera",
		Currency:    "USD",
		Status:      "checked_in",
		TotalAmount: amountNumeric(total),
		PaidAmount:  amountNumeric(paid),
		WorkflowID:  pgtype.Text{String: "stay-key-1", Valid: true},
	}
}

func validParams(amount float64, currency string) RecordPaymentParams {
	return RecordPaymentParams{
		TenantID:       1,
		LocationID:     1,
		ReservationID:  1,
		Amount:         amount,
		Currency:       currency,
		AccountID:      "acct-1",
		Method:         "card",
		IdempotencyKey: "pay-key-1",
	}
}

func newPaymentBusiness(ctrl *gomock.Controller) (*business, *reservations_repo.MockQuerier, *payments_repo.MockQuerier, *currency_business.MockBusiness) {
	mockReservationRepo := reservations_repo.NewMockQuerier(ctrl)
	mockPaymentRepo := payments_repo.NewMockQuerier(ctrl)
	mockCurrency := currency_business.NewMockBusiness(ctrl)

	b := &business{
		reservationRepo: mockReservationRepo,
		paymentRepo:     mockPaymentRepo,
		currencyService: mockCurrency,
	}
	return b, mockReservationRepo, mockPaymentRepo, mockCurrency
}

func TestRecordPayment_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		params        RecordPaymentParams
		expectedError string
	}{
		{
			name: "zero_amount",
			params: RecordPaymentParams{
				TenantID: 1, LocationID: 1, ReservationID: 1,
				Amount: 0, Currency: "USD", AccountID: "acct-1", Method: "card",
			},
			expectedError: "amount must be greater than zero",
		},
		{
			name: "negative_amount",
			params: RecordPaymentParams{
				TenantID: 1, LocationID: 1, ReservationID: 1,
				Amount: -10, Currency: "USD", AccountID: "acct-1", Method: "card",
			},
			expectedError: "amount must be greater than zero",
		},
		{
			name: "missing_account",
			params: RecordPaymentParams{
				TenantID: 1, LocationID: 1, ReservationID: 1,
				Amount: 10, Currency: "USD", Method: "card",
			},
			expectedError: "account is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, _, _, _ := newPaymentBusiness(ctrl)

			result, err := b.RecordPayment(context.Background(), tc.params)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Nil(t, result)
		})
	}
}

func TestRecordPayment_ReservationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockReservationRepo, _, _ := newPaymentBusiness(ctrl)
	mockReservationRepo.EXPECT().GetReservation(gomock.Any(), gomock.Any()).Return(reservations.Reservation{}, pgx.ErrNoRows)

	result, err := b.RecordPayment(context.Background(), validParams(10, "USD"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reservation not found")
	assert.Nil(t, result)
}

func TestRecordPayment_ConversionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockReservationRepo, _, mockCurrency := newPaymentBusiness(ctrl)
	mockReservationRepo.EXPECT().GetReservation(gomock.Any(), gomock.Any()).Return(usdReservation(100, 0), nil)
	mockCurrency.EXPECT().ConvertAmount(gomock.Any(), int64(1), int64(1), "XXX", "USD", float64(10)).
		Return(nil, assert.AnError)

	result, err := b.RecordPayment(context.Background(), validParams(10, "XXX"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unable to convert payment into reservation currency")
	assert.Nil(t, result)
}

func TestRecordPayment_ForeignCurrencyAtExactBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockReservationRepo, mockPaymentRepo, mockCurrency := newPaymentBusiness(ctrl)

	// 30000 LKR at 300 LKR/USD lands exactly on the 100 USD balance
	mockReservationRepo.EXPECT().GetReservation(gomock.Any(), gomock.Any()).Return(usdReservation(100, 0), nil)
	mockCurrency.EXPECT().ConvertAmount(gomock.Any(), int64(1), int64(1), "LKR", "USD", float64(30000)).
		Return(&model.ConversionResult{
			ConvertedAmount: 100,
			Metadata: &model.CurrencyMetadata{
				OriginalAmount:   30000,
				OriginalCurrency: "LKR",
				ExchangeRate:     1.0 / 300.0,
			},
		}, nil)
	mockPaymentRepo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg payments.CreatePaymentParams) (payments.ReservationPayment, error) {
			assert.Equal(t, "USD", arg.Currency)
			assert.Equal(t, amountNumeric(100), arg.Amount)
			assert.Equal(t, "pay-key-1", arg.IdempotencyKey)
			return payments.ReservationPayment{
				ID:             20,
				ReservationID:  1,
				AccountID:      arg.AccountID,
				Amount:         arg.Amount,
				Currency:       arg.Currency,
				Method:         arg.Method,
				IdempotencyKey: arg.IdempotencyKey,
			}, nil
		})
	mockPaymentRepo.EXPECT().CreateConversionLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg payments.CreateConversionLogParams) (payments.ConversionLog, error) {
			assert.Equal(t, int64(20), arg.PaymentID)
			assert.Equal(t, "LKR", arg.FromCurrency)
			assert.Equal(t, "USD", arg.ToCurrency)
			return payments.ConversionLog{
				ID:              30,
				PaymentID:       20,
				FromCurrency:    arg.FromCurrency,
				ToCurrency:      arg.ToCurrency,
				ExchangeRate:    arg.ExchangeRate,
				OriginalAmount:  arg.OriginalAmount,
				ConvertedAmount: arg.ConvertedAmount,
			}, nil
		})

	result, err := b.RecordPayment(context.Background(), validParams(30000, "LKR"))

	assert.NoError(t, err)
	assert.Equal(t, float64(100), result.Amount)
	assert.Equal(t, "USD", result.Currency)
	assert.Equal(t, "stay-key-1", result.StayWorkflowID)

	// the audit record travels back with the payment
	assert.NotNil(t, result.Conversion)
	assert.Equal(t, int64(30), result.Conversion.ID)
	assert.Equal(t, "LKR", result.Conversion.FromCurrency)
	assert.Equal(t, float64(30000), result.Conversion.OriginalAmount)
	assert.Equal(t, float64(100), result.Conversion.ConvertedAmount)
}

func TestRecordPayment_ForeignCurrencyExceedsBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockReservationRepo, _, mockCurrency := newPaymentBusiness(ctrl)

	// 30300 LKR converts to 101 USD against a 100 USD balance
	mockReservationRepo.EXPECT().GetReservation(gomock.Any(), gomock.Any()).Return(usdReservation(100, 0), nil)
	mockCurrency.EXPECT().ConvertAmount(gomock.Any(), int64(1), int64(1), "LKR", "USD", float64(30300)).
		Return(&model.ConversionResult{
			ConvertedAmount: 101,
			Metadata: &model.CurrencyMetadata{
				OriginalAmount:   30300,
				OriginalCurrency: "LKR",
				ExchangeRate:     1.0 / 300.0,
			},
		}, nil)

	result, err := b.RecordPayment(context.Background(), validParams(30300, "LKR"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payment exceeds balance due")
	assert.Nil(t, result)
}

func TestRecordPayment_DatastoreRejectionSurfaces(t *testing.T) {
	testCases := []struct {
		name          string
		dbError       error
		expectedError string
	}{
		{
			name:          "duplicate_idempotency_key",
			dbError:       &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectedError: "payment already recorded",
		},
		{
			name:          "trigger_guard_fires",
			dbError:       &pgconn.PgError{Code: pgerrcode.RaiseException, Message: "payment of 60 exceeds remaining balance on reservation 1"},
			expectedError: "payment rejected by datastore: payment of 60 exceeds remaining balance on reservation 1",
		},
		{
			name:          "check_constraint_fires",
			dbError:       &pgconn.PgError{Code: pgerrcode.CheckViolation, Message: "violates check constraint"},
			expectedError: "payment rejected by datastore",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, mockReservationRepo, mockPaymentRepo, mockCurrency := newPaymentBusiness(ctrl)

			mockReservationRepo.EXPECT().GetReservation(gomock.Any(), gomock.Any()).Return(usdReservation(100, 40), nil)
			mockCurrency.EXPECT().ConvertAmount(gomock.Any(), gomock.Any(), gomock.Any(), "USD", "USD", float64(60)).
				Return(&model.ConversionResult{ConvertedAmount: 60}, nil)
			mockPaymentRepo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payments.ReservationPayment{}, tc.dbError)

			result, err := b.RecordPayment(context.Background(), validParams(60, "USD"))

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Nil(t, result)
		})
	}
}

func TestRecordPayment_AuditFailureDoesNotFailPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockReservationRepo, mockPaymentRepo, mockCurrency := newPaymentBusiness(ctrl)

	mockReservationRepo.EXPECT().GetReservation(gomock.Any(), gomock.Any()).Return(usdReservation(100, 0), nil)
	mockCurrency.EXPECT().ConvertAmount(gomock.Any(), gomock.Any(), gomock.Any(), "LKR", "USD", float64(3000)).
		Return(&model.ConversionResult{
			ConvertedAmount: 10,
			Metadata: &model.CurrencyMetadata{
				OriginalAmount:   3000,
				OriginalCurrency: "LKR",
				ExchangeRate:     1.0 / 300.0,
			},
		}, nil)
	mockPaymentRepo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payments.ReservationPayment{
		ID: 21, ReservationID: 1, AccountID: "acct-1", Amount: amountNumeric(10), Currency: "USD", Method: "card",
	}, nil)
	mockPaymentRepo.EXPECT().CreateConversionLog(gomock.Any(), gomock.Any()).Return(payments.ConversionLog{}, assert.AnError)

	result, err := b.RecordPayment(context.Background(), validParams(3000, "LKR"))

	assert.NoError(t, err)
	assert.Equal(t, float64(10), result.Amount)
	assert.Nil(t, result.Conversion)
}

func TestRecordPayment_SameCurrencySkipsAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, mockReservationRepo, mockPaymentRepo, mockCurrency := newPaymentBusiness(ctrl)

	mockReservationRepo.EXPECT().GetReservation(gomock.Any(), gomock.Any()).Return(usdReservation(100, 0), nil)
	mockCurrency.EXPECT().ConvertAmount(gomock.Any(), gomock.Any(), gomock.Any(), "USD", "USD", float64(40)).
		Return(&model.ConversionResult{ConvertedAmount: 40, Metadata: nil}, nil)
	mockPaymentRepo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(payments.ReservationPayment{
		ID: 22, ReservationID: 1, AccountID: "acct-1", Amount: amountNumeric(40), Currency: "USD", Method: "card",
	}, nil)
	// no conversion metadata, so no audit row

	result, err := b.RecordPayment(context.Background(), validParams(40, "USD"))

	assert.NoError(t, err)
	assert.Nil(t, result.Metadata)
	assert.Nil(t, result.Conversion)
}

func TestNumericFromRate_RoundsRatherThanTruncates(t *testing.T) {
	// 1.001 * 1e6 is 1000999.99... in binary floating point; truncation
	// would persist the rate off by 1e-6
	got := numericFromRate(1.001)
	assert.Equal(t, pgtype.Numeric{Int: big.NewInt(1001000), Exp: -6, Valid: true}, got)
}
