package dto

import (
	"github.com/spendio/spendio_backend/internal/core/domain"
)

// CurrencyResponse is one entry of the supported-currency catalog.
type CurrencyResponse struct {
	CurrencyCode string   `json:"currencyCode"`
	Name         string   `json:"name"`
	Symbol       string   `json:"symbol,omitempty"`
	Countries    []string `json:"countries,omitempty"`
}

// ToCurrencyResponse maps a domain Currency to its response DTO.
func ToCurrencyResponse(currency domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: currency.CurrencyCode,
		Name:         currency.Name,
		Symbol:       currency.Symbol,
		Countries:    currency.Countries,
	}
}

// ToCurrencyResponses maps a catalog slice to response DTOs.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i, currency := range currencies {
		responses[i] = ToCurrencyResponse(currency)
	}
	return responses
}

// SavedCurrenciesRequest replaces the user's saved/favorite currency codes.
type SavedCurrenciesRequest struct {
	Currencies []string `json:"currencies" binding:"required,dive,len=3"`
}

// SavedCurrenciesResponse lists the user's saved currency codes.
type SavedCurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}
