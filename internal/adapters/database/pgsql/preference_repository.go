package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/spendio/spendio_backend/internal/core/domain"
	portsrepo "github.com/spendio/spendio_backend/internal/core/ports/repositories"
)

type PgxPreferenceRepository struct {
	pool PgxPool
}

// NewPgxPreferenceRepository creates a new repository for currency preferences.
func NewPgxPreferenceRepository(pool PgxPool) portsrepo.PreferenceRepositoryFacade {
	return &PgxPreferenceRepository{pool: pool}
}

// UpsertPreference replaces the user's preference row. The source system
// used delete-then-insert because its store lacked an upsert; ON CONFLICT
// keeps the same observable invariant of exactly one live row per user.
func (r *PgxPreferenceRepository) UpsertPreference(ctx context.Context, pref domain.CurrencyPreference) error {
	query := `
		INSERT INTO currency_preferences (user_id, actual_currency, previous_currency, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			actual_currency = EXCLUDED.actual_currency,
			previous_currency = EXCLUDED.previous_currency,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.pool.Exec(ctx, query,
		pref.UserID,
		pref.ActualCurrency,
		pref.PreviousCurrency,
		pref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert preference for user %s: %w", pref.UserID, err)
	}
	return nil
}

// FindPreferenceByUserID retrieves the user's live preference row.
func (r *PgxPreferenceRepository) FindPreferenceByUserID(ctx context.Context, userID string) (*domain.CurrencyPreference, error) {
	query := `
		SELECT user_id, actual_currency, previous_currency, updated_at
		FROM currency_preferences
		WHERE user_id = $1;
	`

	var pref domain.CurrencyPreference
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&pref.UserID,
		&pref.ActualCurrency,
		&pref.PreviousCurrency,
		&pref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preference for user %s: %w", userID, err)
	}

	return &pref, nil
}
