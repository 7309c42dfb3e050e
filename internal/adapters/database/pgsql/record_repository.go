package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/spendio/spendio_backend/internal/core/domain"
	portsrepo "github.com/spendio/spendio_backend/internal/core/ports/repositories"
)

type PgxRecordRepository struct {
	pool PgxPool
}

// NewPgxRecordRepository creates a new repository for financial records.
func NewPgxRecordRepository(pool PgxPool) portsrepo.RecordRepositoryFacade {
	return &PgxRecordRepository{pool: pool}
}

// SaveRecord persists a new financial record. Records enter the store with
// no original amount and no currency stamp; only the reconciliation engine
// sets those.
func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record domain.FinancialRecord) error {
	query := `
		INSERT INTO financial_records (record_id, user_id, kind, description, category, amount, original_amount, last_converted_currency, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	var original *decimal.Decimal
	if record.OriginalAmount.Valid {
		original = &record.OriginalAmount.Decimal
	}
	var lastConverted *string
	if record.LastConvertedCurrency != "" {
		lastConverted = &record.LastConvertedCurrency
	}

	_, err := r.pool.Exec(ctx, query,
		record.RecordID,
		record.UserID,
		string(record.Kind),
		record.Description,
		record.Category,
		record.Amount,
		original,
		lastConverted,
		record.CreatedAt,
		record.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.RecordID, err)
	}
	return nil
}

// ListRecordsByUser retrieves every record of the given kind owned by the user.
func (r *PgxRecordRepository) ListRecordsByUser(ctx context.Context, userID string, kind domain.RecordKind) ([]domain.FinancialRecord, error) {
	query := `
		SELECT record_id, user_id, kind, description, category, amount, original_amount, last_converted_currency, created_at, last_updated_at
		FROM financial_records
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at;
	`

	rows, err := r.pool.Query(ctx, query, userID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s records for user %s: %w", kind, userID, err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FinancialRecord, error) {
		var record domain.FinancialRecord
		var kindRaw string
		var lastConverted sql.NullString
		err := row.Scan(
			&record.RecordID,
			&record.UserID,
			&kindRaw,
			&record.Description,
			&record.Category,
			&record.Amount,
			&record.OriginalAmount,
			&lastConverted,
			&record.CreatedAt,
			&record.LastUpdatedAt,
		)
		record.Kind = domain.RecordKind(kindRaw)
		if lastConverted.Valid {
			record.LastConvertedCurrency = lastConverted.String
		}
		return record, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s records: %w", kind, err)
	}

	if records == nil {
		return []domain.FinancialRecord{}, nil
	}
	return records, nil
}

// UpdateRecordConversion rewrites the conversion-owned fields of a record.
// original_amount uses COALESCE so a value captured by an earlier
// conversion is never overwritten, even under concurrent sweeps.
func (r *PgxRecordRepository) UpdateRecordConversion(ctx context.Context, recordID string, amount decimal.Decimal, originalAmount decimal.Decimal, lastConvertedCurrency string) error {
	query := `
		UPDATE financial_records
		SET amount = $2,
			original_amount = COALESCE(original_amount, $3),
			last_converted_currency = $4,
			last_updated_at = NOW()
		WHERE record_id = $1;
	`

	tag, err := r.pool.Exec(ctx, query, recordID, amount, originalAmount, lastConvertedCurrency)
	if err != nil {
		return fmt.Errorf("failed to update conversion for record %s: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %s: %w", recordID, apperrors.ErrNotFound)
	}
	return nil
}
