package pgsql_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/adapters/database/pgsql"
	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/spendio/spendio_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{
	"record_id", "user_id", "kind", "description", "category",
	"amount", "original_amount", "last_converted_currency", "created_at", "last_updated_at",
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestListRecordsByUser_ScansRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT record_id, user_id, kind")).
		WithArgs("user-1", "EXPENSE").
		WillReturnRows(pgxmock.NewRows(recordColumns).
			AddRow("rec-1", "user-1", "EXPENSE", "groceries", "food",
				dec("54.00"), decimal.NewNullDecimal(dec("50")), sql.NullString{String: "USD", Valid: true}, now, now).
			AddRow("rec-2", "user-1", "EXPENSE", "rent", "housing",
				dec("900"), decimal.NullDecimal{}, sql.NullString{}, now, now))

	repo := pgsql.NewPgxRecordRepository(mock)
	records, err := repo.ListRecordsByUser(context.Background(), "user-1", domain.RecordKindExpense)

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "rec-1", records[0].RecordID)
	assert.Equal(t, domain.RecordKindExpense, records[0].Kind)
	assert.Equal(t, "USD", records[0].LastConvertedCurrency)
	require.True(t, records[0].OriginalAmount.Valid)
	assert.True(t, dec("50").Equal(records[0].OriginalAmount.Decimal))

	// Never-converted record: no original, no currency stamp.
	assert.Empty(t, records[1].LastConvertedCurrency)
	assert.False(t, records[1].OriginalAmount.Valid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecordsByUser_EmptyResult(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT record_id, user_id, kind")).
		WithArgs("user-1", "INCOME").
		WillReturnRows(pgxmock.NewRows(recordColumns))

	repo := pgsql.NewPgxRecordRepository(mock)
	records, err := repo.ListRecordsByUser(context.Background(), "user-1", domain.RecordKindIncome)

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecordsByUser_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT record_id, user_id, kind")).
		WithArgs("user-1", "INCOME").
		WillReturnError(errors.New("connection reset"))

	repo := pgsql.NewPgxRecordRepository(mock)
	_, err = repo.ListRecordsByUser(context.Background(), "user-1", domain.RecordKindIncome)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestSaveRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	record := domain.FinancialRecord{
		RecordID:    "rec-1",
		UserID:      "user-1",
		Kind:        domain.RecordKindIncome,
		Description: "salary",
		Category:    "work",
		Amount:      dec("2500"),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO financial_records")).
		WithArgs("rec-1", "user-1", "INCOME", "salary", "work", record.Amount,
			pgxmock.AnyArg(), pgxmock.AnyArg(), record.CreatedAt, record.LastUpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := pgsql.NewPgxRecordRepository(mock)
	err = repo.SaveRecord(context.Background(), record)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRecordConversion_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE financial_records")).
		WithArgs("rec-1", dec("54.00"), dec("50"), "USD").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := pgsql.NewPgxRecordRepository(mock)
	err = repo.UpdateRecordConversion(context.Background(), "rec-1", dec("54.00"), dec("50"), "USD")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRecordConversion_MissingRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE financial_records")).
		WithArgs("ghost", pgxmock.AnyArg(), pgxmock.AnyArg(), "USD").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := pgsql.NewPgxRecordRepository(mock)
	err = repo.UpdateRecordConversion(context.Background(), "ghost", dec("1"), dec("1"), "USD")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
