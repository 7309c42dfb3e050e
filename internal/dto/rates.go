package dto

import (
	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/core/domain"
)

// RatesResponse is a rate table expressed relative to Base.
type RatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// ToRatesResponse maps a domain RateTable to its response DTO.
func ToRatesResponse(base string, table domain.RateTable) RatesResponse {
	return RatesResponse{
		Base:  base,
		Rates: table,
	}
}
