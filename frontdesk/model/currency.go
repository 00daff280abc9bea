package model

import (
	"math"
	"time"
)

type Currency string

const (
	USD Currency = "USD"
	LKR Currency = "LKR"
)

// CurrencyRate is the per-tenant, per-location exchange rate against USD.
// UsdRate is the number of units of the currency per 1 USD, so the USD row
// itself is pinned at 1.
type CurrencyRate struct {
	ID         int64     `json:"id"`
	TenantID   int64     `json:"tenant_id"`
	LocationID int64     `json:"location_id"`
	Code       string    `json:"code"`
	UsdRate    float64   `json:"usd_rate"`
	IsCustom   bool      `json:"is_custom"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ConversionResult struct {
	ConvertedAmount float64           `json:"converted_amount"`
	Metadata        *CurrencyMetadata `json:"metadata,omitempty"`
}

type CurrencyMetadata struct {
	OriginalAmount   float64 `json:"original_amount"`
	OriginalCurrency string  `json:"original_currency"`
	ExchangeRate     float64 `json:"exchange_rate"`
}

// CurrencyMeta is display metadata for a currency code. All components read
// from this single registry instead of keeping per-screen literals.
type CurrencyMeta struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var currencyMeta = map[string]CurrencyMeta{
	"USD": {Symbol: "$", Name: "US Dollar"},
	"EUR": {Symbol: "€", Name: "Euro"},
	"GBP": {Symbol: "£", Name: "British Pound"},
	"LKR": {Symbol: "Rs", Name: "Sri Lankan Rupee"},
	"INR": {Symbol: "₹", Name: "Indian Rupee"},
	"AUD": {Symbol: "A$", Name: "Australian Dollar"},
	"JPY": {Symbol: "¥", Name: "Japanese Yen"},
	"CNY": {Symbol: "¥", Name: "Chinese Yuan"},
	"AED": {Symbol: "د.إ", Name: "UAE Dirham"},
	"GEL": {Symbol: "₾", Name: "Georgian Lari"},
}

// MetaForCurrency returns display metadata for a currency code. Unknown
// codes get the code itself as symbol so custom currencies still render.
func MetaForCurrency(code string) CurrencyMeta {
	if meta, ok := currencyMeta[code]; ok {
		return meta
	}
	return CurrencyMeta{Symbol: code, Name: code}
}

// Round2 rounds a monetary amount to two decimal places. Conversions apply
// it once at the edge, never between pivot hops.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
