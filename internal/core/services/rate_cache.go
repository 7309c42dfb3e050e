package services

import (
	"sync"
	"time"

	"github.com/spendio/spendio_backend/internal/core/domain"
)

// cachedRates is one rate-table snapshot. Snapshots are created on fetch,
// superseded by the next successful fetch after expiry, and never mutated
// in place.
type cachedRates struct {
	base      string
	rates     domain.RateTable
	fetchedAt time.Time
}

// rateCache stores rate-table snapshots per base currency with a TTL.
// There is no eviction beyond per-key overwrite on refresh: growth is
// bounded by the number of distinct base currencies users exercise.
type rateCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cachedRates
}

func newRateCache(ttl time.Duration, now func() time.Time) *rateCache {
	return &rateCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cachedRates),
	}
}

// get returns the cached table for base, or misses when no entry exists or
// the snapshot has outlived the TTL.
func (c *rateCache) get(base string) (domain.RateTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[base]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, false
	}
	return entry.rates, true
}

func (c *rateCache) put(base string, rates domain.RateTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[base] = cachedRates{
		base:      base,
		rates:     rates,
		fetchedAt: c.now(),
	}
}

// catalogCache holds the single supported-currency catalog snapshot with
// its own (longer) TTL.
type catalogCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	entries   []domain.Currency
	fetchedAt time.Time
}

func newCatalogCache(ttl time.Duration, now func() time.Time) *catalogCache {
	return &catalogCache{ttl: ttl, now: now}
}

func (c *catalogCache) get() ([]domain.Currency, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.entries == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.entries, true
}

func (c *catalogCache) put(entries []domain.Currency) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = entries
	c.fetchedAt = c.now()
}
