package currency

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/frontdesk/model"
)

// ConvertAmount converts an amount between two currency codes through the
// USD pivot: amount / usd_rate(from) gives the USD value, multiplied by
// usd_rate(to) gives the target value. Rounding to two decimals happens
// once at the end, never between the two hops.
func (b *business) ConvertAmount(ctx context.Context, tenantID, locationID int64, fromCurrency, toCurrency string, amount float64) (*model.ConversionResult, error) {
	if fromCurrency == toCurrency {
		return &model.ConversionResult{
			ConvertedAmount: amount,
			Metadata:        nil,
		}, nil
	}

	fromRate, err := b.GetRate(ctx, tenantID, locationID, fromCurrency)
	if err != nil {
		return nil, err
	}

	toRate, err := b.GetRate(ctx, tenantID, locationID, toCurrency)
	if err != nil {
		return nil, err
	}

	if fromRate.UsdRate <= 0 || toRate.UsdRate <= 0 {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "exchange rate must be positive"}
	}

	// usd_rate is units of currency per 1 USD
	exchangeRate := toRate.UsdRate / fromRate.UsdRate
	convertedAmount := model.Round2(amount * exchangeRate)

	return &model.ConversionResult{
		ConvertedAmount: convertedAmount,
		Metadata: &model.CurrencyMetadata{
			OriginalAmount:   amount,
			OriginalCurrency: fromCurrency,
			ExchangeRate:     exchangeRate,
		},
	}, nil
}
