package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/spendio/spendio_backend/internal/core/domain"
	portsclients "github.com/spendio/spendio_backend/internal/core/ports/clients"
)

// RateService provides exchange rates and the supported-currency catalog,
// consulting its caches before reaching the external rate service.
type RateService struct {
	client  portsclients.RateSourceClient
	rates   *rateCache
	catalog *catalogCache
}

// RateServiceOption configures a RateService.
type RateServiceOption func(*rateServiceOptions)

type rateServiceOptions struct {
	now func() time.Time
}

// WithRateClock overrides the clock used for cache TTL checks. Tests inject
// a fixed clock through this.
func WithRateClock(now func() time.Time) RateServiceOption {
	return func(o *rateServiceOptions) {
		o.now = now
	}
}

// NewRateService creates a new RateService. ratesTTL bounds how long a rate
// table snapshot is served from cache; catalogTTL does the same for the
// supported-currency catalog.
func NewRateService(client portsclients.RateSourceClient, ratesTTL, catalogTTL time.Duration, opts ...RateServiceOption) *RateService {
	options := rateServiceOptions{now: time.Now}
	for _, opt := range opts {
		opt(&options)
	}
	return &RateService{
		client:  client,
		rates:   newRateCache(ratesTTL, options.now),
		catalog: newCatalogCache(catalogTTL, options.now),
	}
}

// FetchRates returns the rate table expressed relative to base. On a cache
// miss it fetches from the external service and stores the result; a failed
// fetch propagates the error and leaves the cache unchanged.
func (s *RateService) FetchRates(ctx context.Context, base string) (domain.RateTable, error) {
	base = strings.ToUpper(base)
	if !domain.IsValidCurrencyCode(base) {
		return nil, fmt.Errorf("%w: invalid base currency code %q", apperrors.ErrValidation, base)
	}

	if table, ok := s.rates.get(base); ok {
		return table, nil
	}

	table, err := s.client.LatestRates(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates for %s: %w", base, err)
	}

	s.rates.put(base, table)
	return table, nil
}

// FetchSupportedCurrencies returns the supported-currency catalog, cached
// with the (longer) catalog TTL.
func (s *RateService) FetchSupportedCurrencies(ctx context.Context) ([]domain.Currency, error) {
	if entries, ok := s.catalog.get(); ok {
		return entries, nil
	}

	entries, err := s.client.SupportedCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch supported currencies: %w", err)
	}

	s.catalog.put(entries)
	return entries, nil
}

// GetRate returns the conversion rate from fromCode to toCode. Unlike the
// display calculator, a missing or non-positive rate is an error here:
// reconciliation must never proceed with an unknown rate.
func (s *RateService) GetRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)

	if fromCode == toCode {
		return decimal.NewFromInt(1), nil
	}

	table, err := s.FetchRates(ctx, fromCode)
	if err != nil {
		return decimal.Zero, err
	}

	rate, ok := table.Rate(toCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s to %s", apperrors.ErrRateUnavailable, fromCode, toCode)
	}
	return rate, nil
}
