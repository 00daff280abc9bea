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

// UpsertRate creates or updates the exchange rate for a currency code.
// The USD row is pinned at rate 1 and rejects any mutation. Updating an
// existing row keeps its is_custom flag: editing a system-seeded rate must
// not reclassify it as custom and thereby make it deletable. The isCustom
// parameter applies only when the row is created.
func (b *business) UpsertRate(ctx context.Context, tenantID, locationID int64, code string, usdRate float64, isCustom bool) (*model.CurrencyRate, error) {
	if code == string(model.USD) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "USD rate is fixed at 1 and cannot be modified"}
	}
	if usdRate <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "usd_rate must be positive"}
	}

	existing, err := b.rateRepo.GetRate(ctx, rates.GetRateParams{
		TenantID:     tenantID,
		LocationID:   locationID,
		CurrencyCode: code,
	})
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to fetch exchange rate"}
	}

	if err == nil {
		dbRate, updateErr := b.rateRepo.UpdateRate(ctx, rates.UpdateRateParams{
			TenantID:     tenantID,
			LocationID:   locationID,
			CurrencyCode: code,
			UsdRate:      numericFromRate(usdRate),
			IsCustom:     existing.IsCustom,
		})
		if updateErr == nil {
			return convertDBRateToModel(dbRate), nil
		}
		if !errors.Is(updateErr, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to update exchange rate"}
		}
		// row deleted between read and update; create it fresh
	}

	dbRate, err := b.rateRepo.CreateRate(ctx, rates.CreateRateParams{
		TenantID:     tenantID,
		LocationID:   locationID,
		CurrencyCode: code,
		UsdRate:      numericFromRate(usdRate),
		IsCustom:     isCustom,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "exchange rate was modified concurrently"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create exchange rate"}
	}

	return convertDBRateToModel(dbRate), nil
}
