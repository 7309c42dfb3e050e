package services

import (
	"context"

	"github.com/spendio/spendio_backend/internal/core/domain"
)

// ReconciliationSvcFacade re-expresses a user's financial records and
// preference row from one primary currency to another.
type ReconciliationSvcFacade interface {
	// SwitchCurrency converts every income and expense record owned by the
	// user from fromCode to toCode and replaces the currency preference.
	// Equal codes short-circuit as a no-op success. Partial completion is
	// reported via *apperrors.PartialReconciliationError; a converted set
	// with a failed preference write wraps apperrors.ErrPreferenceWrite.
	SwitchCurrency(ctx context.Context, userID, fromCode, toCode string) (*domain.SwitchResult, error)
}
