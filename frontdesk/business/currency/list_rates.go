package currency

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/rates"
)

// ListRates returns every exchange rate for a (tenant, location) pair.
// The first read for a pair that lacks a USD row bootstraps one, pinned at
// rate 1, so conversions always have a pivot.
func (b *business) ListRates(ctx context.Context, tenantID, locationID int64) ([]model.CurrencyRate, error) {
	dbRates, err := b.rateRepo.ListRates(ctx, rates.ListRatesParams{
		TenantID:   tenantID,
		LocationID: locationID,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list exchange rates"}
	}

	hasUSD := false
	result := make([]model.CurrencyRate, 0, len(dbRates))
	for _, dbRate := range dbRates {
		if dbRate.CurrencyCode == string(model.USD) {
			hasUSD = true
		}
		result = append(result, *convertDBRateToModel(dbRate))
	}

	if !hasUSD {
		usdRow, err := b.rateRepo.CreateRate(ctx, rates.CreateRateParams{
			TenantID:     tenantID,
			LocationID:   locationID,
			CurrencyCode: string(model.USD),
			UsdRate:      numericFromRate(1),
			IsCustom:     false,
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				// another screen bootstrapped it first
				rlog.Debug("USD rate already bootstrapped", "tenant_id", tenantID, "location_id", locationID)
				return result, nil
			}
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to bootstrap USD rate"}
		}
		result = append(result, *convertDBRateToModel(usdRow))
	}

	return result, nil
}
