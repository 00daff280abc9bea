package currency

import (
	"context"
	"math"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/rates"
)

type Business interface {
	GetRate(ctx context.Context, tenantID, locationID int64, code string) (*model.CurrencyRate, error)
	ListRates(ctx context.Context, tenantID, locationID int64) ([]model.CurrencyRate, error)
	ConvertAmount(ctx context.Context, tenantID, locationID int64, fromCurrency, toCurrency string, amount float64) (*model.ConversionResult, error)
	UpsertRate(ctx context.Context, tenantID, locationID int64, code string, usdRate float64, isCustom bool) (*model.CurrencyRate, error)
	DeleteRate(ctx context.Context, tenantID, locationID int64, code string) error
}

type business struct {
	rateRepo rates.Querier
}

func NewCurrencyBusiness(rateRepo rates.Querier) Business {
	return &business{
		rateRepo: rateRepo,
	}
}

// parseNumeric converts a pgtype.Numeric into a float64 rate
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

// numericFromRate builds a pgtype.Numeric with six decimal places,
// enough precision for stored exchange rates. Rounding matters: plain
// truncation stores 1.001 as 1.000999.
func numericFromRate(rate float64) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(int64(math.Round(rate * 1000000))),
		Exp:   -6,
		Valid: true,
	}
}

func convertDBRateToModel(dbRate rates.CurrencyRate) *model.CurrencyRate {
	return &model.CurrencyRate{
		ID:         dbRate.ID,
		TenantID:   dbRate.TenantID,
		LocationID: dbRate.LocationID,
		Code:       dbRate.CurrencyCode,
		UsdRate:    parseNumeric(dbRate.UsdRate),
		IsCustom:   dbRate.IsCustom,
		CreatedAt:  dbRate.CreatedAt.Time,
		UpdatedAt:  dbRate.UpdatedAt.Time,
	}
}
