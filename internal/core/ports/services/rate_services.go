package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/core/domain"
)

// RateReaderSvc defines read operations for exchange rate data
type RateReaderSvc interface {
	// FetchRates returns the rate table for base, serving from cache while
	// the cached snapshot is within its TTL. A cache miss with a failed
	// fetch propagates the error; stale data is never silently substituted.
	FetchRates(ctx context.Context, base string) (domain.RateTable, error)

	// FetchSupportedCurrencies returns the supported-currency catalog,
	// cached with its own (longer) TTL.
	FetchSupportedCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetRate returns the single conversion rate from one currency to
	// another. It fails with apperrors.ErrRateUnavailable when the service
	// has no positive rate for the pair.
	GetRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
}
