package scheduler

import (
	"context"
	"time"

	portssvc "github.com/spendio/spendio_backend/internal/core/ports/services"
)

// RateWarmJob refreshes the rate table for the default currency and the
// supported-currency catalog so interactive conversions and currency
// switches rarely pay the external fetch.
type RateWarmJob struct {
	rateSvc portssvc.RateSvcFacade
	base    string
	timeout time.Duration
}

// NewRateWarmJob creates the cache warm job for the given base currency.
func NewRateWarmJob(rateSvc portssvc.RateSvcFacade, base string) *RateWarmJob {
	return &RateWarmJob{
		rateSvc: rateSvc,
		base:    base,
		timeout: 30 * time.Second,
	}
}

func (j *RateWarmJob) Name() string {
	return "rate-cache-warm"
}

func (j *RateWarmJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if _, err := j.rateSvc.FetchRates(ctx, j.base); err != nil {
		return err
	}
	_, err := j.rateSvc.FetchSupportedCurrencies(ctx)
	return err
}
