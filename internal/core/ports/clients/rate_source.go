package clients

import (
	"context"

	"github.com/spendio/spendio_backend/internal/core/domain"
)

// RateSourceClient talks to the external exchange-rate service. The rate
// service layer consults its cache before reaching for this client, so
// implementations never cache themselves.
type RateSourceClient interface {
	// LatestRates fetches the conversion rate table expressed relative to base.
	LatestRates(ctx context.Context, base string) (domain.RateTable, error)

	// SupportedCurrencies fetches the supported-currency catalog.
	SupportedCurrencies(ctx context.Context) ([]domain.Currency, error)
}
