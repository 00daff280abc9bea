package reservation

import (
	"context"
	"encoding/json"
	"math"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/frontdesk/business/availability"
	"encore.app/frontdesk/business/currency"
	"encore.app/frontdesk/domain"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/charges"
	"encore.app/frontdesk/repository/reservations"
)

type Business interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*model.Reservation, error)
	GetReservation(ctx context.Context, tenantID, locationID, id int64) (*model.Reservation, error)
	ListReservations(ctx context.Context, tenantID, locationID int64, limit, offset int32) ([]*model.Reservation, int64, error)
	CancelReservation(ctx context.Context, tenantID, locationID, id int64) error
	AddServiceCharge(ctx context.Context, params AddServiceChargeParams) (*model.Charge, error)
	CheckInReservation(ctx context.Context, id int64) error
	CheckOutReservation(ctx context.Context, id int64) error
	RecalculateTotal(ctx context.Context, id int64) error
}

// business handles reservation lifecycle and charge logic
type business struct {
	reservationRepo     reservations.Querier
	chargeRepo          charges.Querier
	availabilityService availability.Business
	currencyService     currency.Business
	stateMachine        domain.StateMachine
}

func NewReservationBusiness(
	reservationRepo reservations.Querier,
	chargeRepo charges.Querier,
	availabilityService availability.Business,
	currencyService currency.Business,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		reservationRepo:     reservationRepo,
		chargeRepo:          chargeRepo,
		availabilityService: availabilityService,
		currencyService:     currencyService,
		stateMachine:        stateMachine,
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

// numericFromAmount builds a pgtype.Numeric with two decimal places.
func numericFromAmount(amount float64) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(int64(math.Round(amount * 100))),
		Exp:   -2,
		Valid: true,
	}
}

// convertDBReservationToModel converts a database Reservation to a domain model Reservation
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
