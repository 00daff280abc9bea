package ledger

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/frontdesk/business/currency"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/charges"
	"encore.app/frontdesk/repository/payments"
	"encore.app/frontdesk/repository/reservations"
)

type Business interface {
	GetBalance(ctx context.Context, tenantID, locationID, reservationID int64, displayCurrency string) (*model.BalanceSnapshot, error)
}

type business struct {
	reservationRepo reservations.Querier
	chargeRepo      charges.Querier
	paymentRepo     payments.Querier
	currencyService currency.Business
}

func NewLedgerBusiness(
	reservationRepo reservations.Querier,
	chargeRepo charges.Querier,
	paymentRepo payments.Querier,
	currencyService currency.Business,
) Business {
	return &business{
		reservationRepo: reservationRepo,
		chargeRepo:      chargeRepo,
		paymentRepo:     paymentRepo,
		currencyService: currencyService,
	}
}

func parseNumeric(n pgtype.Numeric) float64 {
	if !n.Valid || n.Int == nil {
		return 0
	}
	f, err := n.Float64Value()
	if err != nil {
		return 0
	}
	return f.Float64
}

func convertDBChargeToModel(dbCharge charges.ReservationCharge) *model.Charge {
	charge := &model.Charge{
		ID:             dbCharge.ID,
		ReservationID:  dbCharge.ReservationID,
		Kind:           model.ChargeKind(dbCharge.Kind),
		Amount:         parseNumeric(dbCharge.Amount),
		Currency:       dbCharge.Currency,
		Status:         dbCharge.Status,
		IdempotencyKey: dbCharge.IdempotencyKey,
		CreatedAt:      dbCharge.CreatedAt.Time,
	}

	if dbCharge.Description.Valid {
		charge.Description = dbCharge.Description.String
	}

	if len(dbCharge.Metadata) > 0 {
		var metadata model.CurrencyMetadata
		if err := json.Unmarshal(dbCharge.Metadata, &metadata); err == nil {
			charge.Metadata = &metadata
		}
	}

	return charge
}

func convertDBPaymentToModel(dbPayment payments.ReservationPayment) *model.Payment {
	payment := &model.Payment{
		ID:             dbPayment.ID,
		ReservationID:  dbPayment.ReservationID,
		AccountID:      dbPayment.AccountID,
		Amount:         parseNumeric(dbPayment.Amount),
		Currency:       dbPayment.Currency,
		Method:         dbPayment.Method,
		IdempotencyKey: dbPayment.IdempotencyKey,
		CreatedAt:      dbPayment.CreatedAt.Time,
	}

	if len(dbPayment.Metadata) > 0 {
		var metadata model.CurrencyMetadata
		if err := json.Unmarshal(dbPayment.Metadata, &metadata); err == nil {
			payment.Metadata = &metadata
		}
	}

	return payment
}

func convertDBReservationToModel(dbReservation reservations.Reservation) *model.Reservation {
	reservation := &model.Reservation{
		ID:             dbReservation.ID,
		TenantID:       dbReservation.TenantID,
		LocationID:     dbReservation.LocationID,
		RoomID:         dbReservation.RoomID,
		GuestName:      dbReservation.GuestName,
		Currency:       dbReservation.Currency,
		Status:         model.ReservationStatus(dbReservation.Status),
		RoomAmount:     parseNumeric(dbReservation.RoomAmount),
		TotalAmount:    parseNumeric(dbReservation.TotalAmount),
		PaidAmount:     parseNumeric(dbReservation.PaidAmount),
		BalanceAmount:  parseNumeric(dbReservation.BalanceAmount),
		CheckInDate:    dbReservation.CheckInDate.Time,
		CheckOutDate:   dbReservation.CheckOutDate.Time,
		IdempotencyKey: dbReservation.IdempotencyKey,
		CreatedAt:      dbReservation.CreatedAt.Time,
		UpdatedAt:      dbReservation.UpdatedAt.Time,
	}

	if dbReservation.ErrorMessage.Valid {
		reservation.ErrorMessage = &dbReservation.ErrorMessage.String
	}

	if dbReservation.WorkflowID.Valid {
		reservation.WorkflowID = &dbReservation.WorkflowID.String
	}

	return reservation
}
