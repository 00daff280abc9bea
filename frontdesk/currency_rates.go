package frontdesk

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/frontdesk/model"
)

type ListCurrencyRatesRequest struct {
	TenantID   int64 `query:"tenant_id"`
	LocationID int64 `query:"location_id"`
}

// RateWithMeta pairs a stored rate with its display metadata so clients
// can render amounts without a second lookup.
type RateWithMeta struct {
	Rate model.CurrencyRate `json:"rate"`
	Meta model.CurrencyMeta `json:"meta"`
}

type ListCurrencyRatesResponse struct {
	Rates []RateWithMeta `json:"rates"`
}

//encore:api public path=/v1/currency-rates method=GET
func (s *Service) ListCurrencyRates(ctx context.Context, req *ListCurrencyRatesRequest) (*ListCurrencyRatesResponse, error) {
	result, err := s.currency.ListRates(ctx, req.TenantID, req.LocationID)
	if err != nil {
		rlog.Error("failed to list currency rates", "error", err)
		return nil, err
	}

	response := &ListCurrencyRatesResponse{
		Rates: make([]RateWithMeta, len(result)),
	}
	for i, rate := range result {
		response.Rates[i] = RateWithMeta{
			Rate: rate,
			Meta: model.MetaForCurrency(rate.Code),
		}
	}

	return response, nil
}

type UpsertCurrencyRateRequest struct {
	TenantID   int64   `json:"tenant_id" validate:"required"`
	LocationID int64   `json:"location_id" validate:"required"`
	UsdRate    float64 `json:"usd_rate" validate:"gt=0"`
}

type CurrencyRateResponse struct {
	Rate model.CurrencyRate `json:"rate"`
}

//encore:api public path=/v1/currency-rates/:code method=PUT
func (s *Service) UpsertCurrencyRate(ctx context.Context, code string, req *UpsertCurrencyRateRequest) (*CurrencyRateResponse, error) {
	code = strings.ToUpper(code)
	if len(code) != 3 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid currency code"}
	}

	// new rates entered through the API are custom; updates to existing
	// rows keep their stored is_custom flag
	result, err := s.currency.UpsertRate(ctx, req.TenantID, req.LocationID, code, req.UsdRate, true)
	if err != nil {
		rlog.Error("failed to upsert currency rate", "error", err, "code", code)
		return nil, err
	}

	return &CurrencyRateResponse{
		Rate: *result,
	}, nil
}

type DeleteCurrencyRateRequest struct {
	TenantID   int64 `query:"tenant_id"`
	LocationID int64 `query:"location_id"`
}

//encore:api public path=/v1/currency-rates/:code method=DELETE
func (s *Service) DeleteCurrencyRate(ctx context.Context, code string, req *DeleteCurrencyRateRequest) error {
	code = strings.ToUpper(code)
	if len(code) != 3 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid currency code"}
	}

	if err := s.currency.DeleteRate(ctx, req.TenantID, req.LocationID, code); err != nil {
		rlog.Error("failed to delete currency rate", "error", err, "code", code)
		return err
	}

	return nil
}

// Validate implements validation for UpsertCurrencyRateRequest
func (r *UpsertCurrencyRateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
