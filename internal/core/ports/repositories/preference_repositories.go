package repositories

import (
	"context"

	"github.com/spendio/spendio_backend/internal/core/domain"
)

// PreferenceReader defines read operations for currency preferences
type PreferenceReader interface {
	// FindPreferenceByUserID retrieves the user's live preference row.
	// Returns apperrors.ErrNotFound when the user has never set one.
	FindPreferenceByUserID(ctx context.Context, userID string) (*domain.CurrencyPreference, error)
}

// PreferenceWriter defines write operations for currency preferences
type PreferenceWriter interface {
	// UpsertPreference replaces the user's preference row. The store must
	// guarantee exactly one live row per user, however it implements that.
	UpsertPreference(ctx context.Context, pref domain.CurrencyPreference) error
}

// PreferenceRepositoryFacade combines all preference-related repository interfaces
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}
