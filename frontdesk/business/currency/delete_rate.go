package currency

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/model"
	"encore.app/frontdesk/repository/rates"
)

// DeleteRate removes a custom exchange rate. USD and system-seeded rates
// are not deletable.
func (b *business) DeleteRate(ctx context.Context, tenantID, locationID int64, code string) error {
	if code == string(model.USD) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "USD rate cannot be deleted"}
	}

	rate, err := b.GetRate(ctx, tenantID, locationID, code)
	if err != nil {
		return err
	}
	if !rate.IsCustom {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "system currency rates cannot be deleted"}
	}

	affected, err := b.rateRepo.DeleteRate(ctx, rates.DeleteRateParams{
		TenantID:     tenantID,
		LocationID:   locationID,
		CurrencyCode: code,
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to delete exchange rate"}
	}
	if affected == 0 {
		return &errs.Error{Code: errs.NotFound, Message: "exchange rate not found for " + code}
	}

	return nil
}
