package services

import (
	"context"

	"github.com/spendio/spendio_backend/internal/core/domain"
)

// PreferenceReaderSvc defines read operations for currency preferences
type PreferenceReaderSvc interface {
	// GetPreference returns the user's currency preference. A user who has
	// never set one, or whose preference cannot currently be read, gets the
	// default currency back instead of an error: display code must keep
	// working when the preference store is unreachable.
	GetPreference(ctx context.Context, userID string) (*domain.CurrencyPreference, error)

	// ListSavedCurrencies returns the user's saved/favorite currency codes.
	ListSavedCurrencies(ctx context.Context, userID string) ([]string, error)
}

// PreferenceWriterSvc defines write operations for currency preferences
type PreferenceWriterSvc interface {
	// SavePreference replaces the user's preference pair and mirrors the
	// new actual currency for offline reads.
	SavePreference(ctx context.Context, userID, actualCurrency, previousCurrency string) error

	// SaveCurrencies replaces the user's saved currency codes.
	SaveCurrencies(ctx context.Context, userID string, codes []string) error
}

// PreferenceSvcFacade combines all preference-related service interfaces
type PreferenceSvcFacade interface {
	PreferenceReaderSvc
	PreferenceWriterSvc
}
