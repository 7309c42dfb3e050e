package dto

import (
	"github.com/shopspring/decimal"
)

// ConvertRequest asks for a display conversion between two currencies.
type ConvertRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3"`
}

// ConvertResponse is a display-only conversion quote. Adjusted marks the
// minimum-floor correction; Converted false means no usable rate existed
// and the client should surface a warning instead of the unchanged amount.
type ConvertResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	FromAmount       decimal.Decimal `json:"fromAmount"`
	ToAmount         decimal.Decimal `json:"toAmount"`
	Adjusted         bool            `json:"adjusted"`
	Converted        bool            `json:"converted"`
}
