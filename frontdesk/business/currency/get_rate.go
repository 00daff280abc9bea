package currency

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/rates"
)

// GetRate returns the exchange rate for one currency code. The first read
// for a (tenant, location) pair that lacks a USD row bootstraps one, pinned
// at rate 1, so conversions always have a pivot.
func (b *business) GetRate(ctx context.Context, tenantID, locationID int64, code string) (*model.CurrencyRate, error) {
	params := rates.GetRateParams{
		TenantID:     tenantID,
		LocationID:   locationID,
		CurrencyCode: code,
	}

	dbRate, err := b.rateRepo.GetRate(ctx, params)
	if err == nil {
		return convertDBRateToModel(dbRate), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to fetch exchange rate"}
	}
	if code != string(model.USD) {
		return nil, &errs.Error{Code: errs.NotFound, Message: "exchange rate not found for " + code}
	}

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
			// another request bootstrapped it first
			dbRate, err = b.rateRepo.GetRate(ctx, params)
			if err != nil {
				return nil, &errs.Error{Code: errs.Internal, Message: "failed to fetch exchange rate"}
			}
			return convertDBRateToModel(dbRate), nil
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to bootstrap USD rate"}
	}

	return convertDBRateToModel(usdRow), nil
}
