package pgsql_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/spendio/spendio_backend/internal/adapters/database/pgsql"
	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/spendio/spendio_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertPreference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	pref := domain.CurrencyPreference{
		UserID:           "user-1",
		ActualCurrency:   "USD",
		PreviousCurrency: "EUR",
		UpdatedAt:        now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO currency_preferences")).
		WithArgs("user-1", "USD", "EUR", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := pgsql.NewPgxPreferenceRepository(mock)
	err = repo.UpsertPreference(context.Background(), pref)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertPreference_ExecError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO currency_preferences")).
		WithArgs("user-1", "USD", "EUR", pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	repo := pgsql.NewPgxPreferenceRepository(mock)
	err = repo.UpsertPreference(context.Background(), domain.CurrencyPreference{
		UserID:           "user-1",
		ActualCurrency:   "USD",
		PreviousCurrency: "EUR",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestFindPreferenceByUserID_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, actual_currency, previous_currency")).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "actual_currency", "previous_currency", "updated_at"}).
			AddRow("user-1", "USD", "EUR", now))

	repo := pgsql.NewPgxPreferenceRepository(mock)
	pref, err := repo.FindPreferenceByUserID(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "USD", pref.ActualCurrency)
	assert.Equal(t, "EUR", pref.PreviousCurrency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindPreferenceByUserID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, actual_currency, previous_currency")).
		WithArgs("nobody").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "actual_currency", "previous_currency", "updated_at"}))

	repo := pgsql.NewPgxPreferenceRepository(mock)
	_, err = repo.FindPreferenceByUserID(context.Background(), "nobody")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
