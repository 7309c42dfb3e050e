package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/core/domain"
)

// RecordReader defines read operations for financial records
type RecordReader interface {
	// ListRecordsByUser retrieves every record of the given kind owned by the user.
	ListRecordsByUser(ctx context.Context, userID string, kind domain.RecordKind) ([]domain.FinancialRecord, error)
}

// RecordWriter defines write operations for financial records
type RecordWriter interface {
	// SaveRecord persists a new financial record.
	SaveRecord(ctx context.Context, record domain.FinancialRecord) error

	// UpdateRecordConversion rewrites the conversion-owned fields of a record:
	// the amount expressed in the new currency, the once-captured original
	// amount, and the currency stamp.
	UpdateRecordConversion(ctx context.Context, recordID string, amount decimal.Decimal, originalAmount decimal.Decimal, lastConvertedCurrency string) error
}

// RecordRepositoryFacade combines all record-related repository interfaces
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}
