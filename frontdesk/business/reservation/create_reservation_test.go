package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/frontdesk/domain"
	"encore.app/frontdesk/mocks/business/availability_business"
	"encore.app/frontdesk/mocks/business/currency_business"
	"encore.app/frontdesk/mocks/domain/state_machine"
	"encore.app/frontdesk/mocks/repository/charges_repo"
	"encore.app/frontdesk/mocks/repository/reservations_repo"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/reservations"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

type reservationMocks struct {
	reservationRepo *reservations_repo.MockQuerier
	chargeRepo      *charges_repo.MockQuerier
	availability    *availability_business.MockBusiness
	currency        *currency_business.MockBusiness
	stateMachine    *state_machine.MockStateMachine
}

func newReservationBusiness(ctrl *gomock.Controller) (*business, reservationMocks) {
	m := reservationMocks{
		reservationRepo: reservations_repo.NewMockQuerier(ctrl),
		chargeRepo:      charges_repo.NewMockQuerier(ctrl),
		availability:    availability_business.NewMockBusiness(ctrl),
		currency:        currency_business.NewMockBusiness(ctrl),
		stateMachine:    state_machine.NewMockStateMachine(ctrl),
	}
	b := &business{
		reservationRepo:     m.reservationRepo,
		chargeRepo:          m.chargeRepo,
		availabilityService: m.availability,
		currencyService:     m.currency,
		stateMachine:        m.stateMachine,
	}
	return b, m
}

func validCreateParams() CreateReservationParams {
	return CreateReservationParams{
		TenantID:       1,
		LocationID:     1,
		RoomID:         7,
		GuestName:      "Amara Perera",
		Currency:       "USD",
		NightlyRate:    100,
		CheckInDate:    day("2026-03-10"),
		CheckOutDate:   day("2026-03-13"),
		IdempotencyKey: "key-1",
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("creates_confirmed_reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, m := newReservationBusiness(ctrl)

		m.currency.EXPECT().GetRate(gomock.Any(), int64(1), int64(1), "USD").Return(&model.CurrencyRate{Code: "USD", UsdRate: 1}, nil)
		m.availability.EXPECT().CheckRange(gomock.Any(), int64(1), int64(1), int64(7), day("2026-03-10"), day("2026-03-13")).Return(true, nil)
		m.reservationRepo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg reservations.CreateReservationParams) (reservations.Reservation, error) {
				// 3 nights at 100
				assert.Equal(t, numericFromAmount(300), arg.RoomAmount)
				assert.Equal(t, "confirmed", arg.Status)
				assert.Equal(t, "stay-key-1", arg.WorkflowID.String)
				return reservations.Reservation{
					ID:             1,
					TenantID:       arg.TenantID,
					LocationID:     arg.LocationID,
					RoomID:         arg.RoomID,
					GuestName:      arg.GuestName,
					Currency:       arg.Currency,
					Status:         arg.Status,
					RoomAmount:     arg.RoomAmount,
					TotalAmount:    arg.RoomAmount,
					PaidAmount:     numericFromAmount(0),
					BalanceAmount:  arg.RoomAmount,
					CheckInDate:    arg.CheckInDate,
					CheckOutDate:   arg.CheckOutDate,
					WorkflowID:     arg.WorkflowID,
					IdempotencyKey: arg.IdempotencyKey,
				}, nil
			})

		result, err := b.CreateReservation(context.Background(), validCreateParams())

		assert.NoError(t, err)
		assert.Equal(t, model.ReservationStatusConfirmed, result.Status)
		assert.Equal(t, float64(300), result.RoomAmount)
		assert.Equal(t, float64(300), result.BalanceAmount)
		assert.Equal(t, "stay-key-1", *result.WorkflowID)
	})

	t.Run("rejects_inverted_dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, _ := newReservationBusiness(ctrl)

		params := validCreateParams()
		params.CheckOutDate = params.CheckInDate

		result, err := b.CreateReservation(context.Background(), params)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "check_out_date must be after check_in_date")
		assert.Nil(t, result)
	})

	t.Run("rejects_non_positive_rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, _ := newReservationBusiness(ctrl)

		params := validCreateParams()
		params.NightlyRate = 0

		_, err := b.CreateReservation(context.Background(), params)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "nightly rate must be positive")
	})

	t.Run("rejects_unknown_currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, m := newReservationBusiness(ctrl)

		m.currency.EXPECT().GetRate(gomock.Any(), int64(1), int64(1), "USD").Return(nil, assert.AnError)

		_, err := b.CreateReservation(context.Background(), validCreateParams())

		assert.Error(t, err)
	})

	t.Run("rejects_unavailable_room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, m := newReservationBusiness(ctrl)

		m.currency.EXPECT().GetRate(gomock.Any(), gomock.Any(), gomock.Any(), "USD").Return(&model.CurrencyRate{Code: "USD", UsdRate: 1}, nil)
		m.availability.EXPECT().CheckRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := b.CreateReservation(context.Background(), validCreateParams())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "room is not available for the requested dates")
	})

	t.Run("duplicate_key_reports_already_exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, m := newReservationBusiness(ctrl)

		m.currency.EXPECT().GetRate(gomock.Any(), gomock.Any(), gomock.Any(), "USD").Return(&model.CurrencyRate{Code: "USD", UsdRate: 1}, nil)
		m.availability.EXPECT().CheckRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		m.reservationRepo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(reservations.Reservation{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := b.CreateReservation(context.Background(), validCreateParams())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reservation is duplicated")
	})
}

func TestCancelReservation_ScopeCheckedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m := newReservationBusiness(ctrl)

	m.reservationRepo.EXPECT().GetReservation(gomock.Any(), reservations.GetReservationParams{
		ID: 1, TenantID: 1, LocationID: 1,
	}).Return(reservations.Reservation{
		ID: 1, TenantID: 1, LocationID: 1, RoomID: 7,
		Currency: "USD", Status: "confirmed",
		CheckInDate:  pgtype.Date{Time: day("2026-03-10"), Valid: true},
		CheckOutDate: pgtype.Date{Time: day("2026-03-13"), Valid: true},
	}, nil)
	m.stateMachine.EXPECT().TransitionToCancelledTx(gomock.Any(), int64(1)).Return(nil)

	err := b.CancelReservation(context.Background(), 1, 1, 1)

	assert.NoError(t, err)
}

func TestCheckOutReservation(t *testing.T) {
	lockedRow := func(status string) reservations.Reservation {
		return reservations.Reservation{
			ID: 1, TenantID: 1, LocationID: 1, RoomID: 7,
			Currency: "USD", Status: status,
		}
	}

	t.Run("recalculates_then_checks_out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, m := newReservationBusiness(ctrl)
		txRepo := reservations_repo.NewMockQuerier(ctrl)

		m.stateMachine.EXPECT().GetReservationWithLock(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, fn func(reservations.Reservation, domain.TxQueriers) error) error {
				return fn(lockedRow("checked_in"), domain.TxQueriers{Reservations: txRepo})
			})
		txRepo.EXPECT().RecalculateReservationTotal(gomock.Any(), int64(1)).Return(nil)
		txRepo.EXPECT().UpdateReservationStatus(gomock.Any(), reservations.UpdateReservationStatusParams{
			ID:     1,
			Status: "checked_out",
		}).Return(lockedRow("checked_out"), nil)

		err := b.CheckOutReservation(context.Background(), 1)

		assert.NoError(t, err)
	})

	t.Run("already_checked_out_is_idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, m := newReservationBusiness(ctrl)

		m.stateMachine.EXPECT().GetReservationWithLock(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, fn func(reservations.Reservation, domain.TxQueriers) error) error {
				return fn(lockedRow("checked_out"), domain.TxQueriers{})
			})

		err := b.CheckOutReservation(context.Background(), 1)

		assert.NoError(t, err)
	})

	t.Run("recalculation_failure_parks_in_attention", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, m := newReservationBusiness(ctrl)
		txRepo := reservations_repo.NewMockQuerier(ctrl)

		m.stateMachine.EXPECT().GetReservationWithLock(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, fn func(reservations.Reservation, domain.TxQueriers) error) error {
				return fn(lockedRow("checked_in"), domain.TxQueriers{Reservations: txRepo})
			})
		txRepo.EXPECT().RecalculateReservationTotal(gomock.Any(), int64(1)).Return(assert.AnError)
		m.stateMachine.EXPECT().TransitionToAttentionTx(gomock.Any(), int64(1), gomock.Any()).Return(nil)

		err := b.CheckOutReservation(context.Background(), 1)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to calculate final reservation total")
	})

	t.Run("confirmed_reservation_cannot_check_out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b, m := newReservationBusiness(ctrl)

		m.stateMachine.EXPECT().GetReservationWithLock(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, fn func(reservations.Reservation, domain.TxQueriers) error) error {
				return fn(lockedRow("confirmed"), domain.TxQueriers{})
			})

		err := b.CheckOutReservation(context.Background(), 1)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reservation must be checked in to check out")
	})
}
