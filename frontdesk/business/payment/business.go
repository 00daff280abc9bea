package payment

import (
	"context"
	"math"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/frontdesk/business/currency"
	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/payments"
	"encore.app/frontdesk/repository/reservations"
)

type Business interface {
	RecordPayment(ctx context.Context, params RecordPaymentParams) (*model.Payment, error)
}

type business struct {
	reservationRepo reservations.Querier
	paymentRepo     payments.Querier
	currencyService currency.Business
}

func NewPaymentBusiness(
	reservationRepo reservations.Querier,
	paymentRepo payments.Querier,
	currencyService currency.Business,
) Business {
	return &business{
		reservationRepo: reservationRepo,
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

// numericFromAmount builds a pgtype.Numeric with two decimal places.
func numericFromAmount(amount float64) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(int64(math.Round(amount * 100))),
		Exp:   -2,
		Valid: true,
	}
}

// numericFromRate builds a pgtype.Numeric with six decimal places. Rounds
// rather than truncates so rates like 1.001 survive the float conversion.
func numericFromRate(rate float64) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(int64(math.Round(rate * 1000000))),
		Exp:   -6,
		Valid: true,
	}
}
