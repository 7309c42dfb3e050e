package repositories

import "context"

// Keys stored in the local mirror. Values are plain strings; the saved
// currencies key holds a JSON array of currency codes.
const (
	MirrorKeyPreferredCurrency = "user_preferred_currency"
	MirrorKeySavedCurrencies   = "user_saved_currencies"
)

// LocalMirror is a small key-value persistence layer caching the last-known
// preferred currency and saved currency codes so reads survive a backend
// outage. Get returns apperrors.ErrNotFound on a missing key.
type LocalMirror interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
