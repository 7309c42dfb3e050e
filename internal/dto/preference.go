package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/core/domain"
)

// PreferenceResponse is the user's primary-currency preference.
type PreferenceResponse struct {
	ActualCurrency   string    `json:"actualCurrency"`
	PreviousCurrency string    `json:"previousCurrency,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ToPreferenceResponse maps a domain CurrencyPreference to its response DTO.
func ToPreferenceResponse(pref *domain.CurrencyPreference) PreferenceResponse {
	return PreferenceResponse{
		ActualCurrency:   pref.ActualCurrency,
		PreviousCurrency: pref.PreviousCurrency,
		UpdatedAt:        pref.UpdatedAt,
	}
}

// SwitchCurrencyRequest asks to change the user's primary currency. The
// current primary currency is read from the stored preference server-side.
type SwitchCurrencyRequest struct {
	ToCurrencyCode string `json:"toCurrencyCode" binding:"required,len=3"`
}

// SwitchCurrencyResponse summarizes a completed reconciliation run.
type SwitchCurrencyResponse struct {
	FromCurrency   string          `json:"fromCurrency"`
	ToCurrency     string          `json:"toCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	ConvertedCount int             `json:"convertedCount"`
	SkippedCount   int             `json:"skippedCount"`
	PerKind        map[string]int  `json:"perKind"`
}

// ToSwitchCurrencyResponse maps a domain SwitchResult to its response DTO.
func ToSwitchCurrencyResponse(result *domain.SwitchResult) SwitchCurrencyResponse {
	perKind := make(map[string]int, len(result.PerKind))
	for kind, count := range result.PerKind {
		perKind[string(kind)] = count
	}
	return SwitchCurrencyResponse{
		FromCurrency:   result.FromCurrency,
		ToCurrency:     result.ToCurrency,
		Rate:           result.Rate,
		ConvertedCount: result.ConvertedCount,
		SkippedCount:   result.SkippedCount,
		PerKind:        perKind,
	}
}
