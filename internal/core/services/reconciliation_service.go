package services

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/spendio/spendio_backend/internal/core/domain"
	portsrepo "github.com/spendio/spendio_backend/internal/core/ports/repositories"
	portssvc "github.com/spendio/spendio_backend/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// defaultUpdateConcurrency bounds how many record updates a reconciliation
// sweep issues at once. Records are independent rows, so ordering between
// updates is insignificant.
const defaultUpdateConcurrency = 8

// ReconciliationService rewrites a user's financial records and preference
// row from one primary currency to another. It is not a transactional
// ledger: partial writes are reported, never rolled back, and repeated
// A->B->A switches restore values only approximately because each run uses
// live market rates rather than the inverse of a stored rate.
type ReconciliationService struct {
	rateSvc     portssvc.RateSvcFacade
	recordRepo  portsrepo.RecordRepositoryFacade
	prefRepo    portsrepo.PreferenceRepositoryFacade
	mirror      portsrepo.LocalMirror
	concurrency int
	now         func() time.Time
}

// ReconciliationOption configures a ReconciliationService.
type ReconciliationOption func(*ReconciliationService)

// WithUpdateConcurrency overrides the per-sweep record update parallelism.
func WithUpdateConcurrency(n int) ReconciliationOption {
	return func(s *ReconciliationService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithReconciliationClock overrides the clock stamped onto the preference row.
func WithReconciliationClock(now func() time.Time) ReconciliationOption {
	return func(s *ReconciliationService) {
		s.now = now
	}
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(rateSvc portssvc.RateSvcFacade, repos portsrepo.RepositoryProvider, opts ...ReconciliationOption) *ReconciliationService {
	s := &ReconciliationService{
		rateSvc:     rateSvc,
		recordRepo:  repos.RecordRepo,
		prefRepo:    repos.PreferenceRepo,
		mirror:      repos.Mirror,
		concurrency: defaultUpdateConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SwitchCurrency converts every income and expense record owned by userID
// from fromCode to toCode, then replaces the currency preference row.
//
// The rate is obtained up front and a missing rate aborts before any record
// is touched. Each record's conversion basis is derived from the record's
// own currency stamp rather than the fromCode parameter alone, so a retry
// after a partial failure converts only the records still expressed in the
// old currency.
func (s *ReconciliationService) SwitchCurrency(ctx context.Context, userID, fromCode, toCode string) (*domain.SwitchResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}

	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if !domain.IsValidCurrencyCode(fromCode) || !domain.IsValidCurrencyCode(toCode) {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	result := &domain.SwitchResult{
		FromCurrency: fromCode,
		ToCurrency:   toCode,
		Rate:         decimal.NewFromInt(1),
		PerKind:      make(map[domain.RecordKind]int, len(domain.RecordKinds)),
	}

	// Equal currencies short-circuit as a no-op success.
	if fromCode == toCode {
		return result, nil
	}

	rate, err := s.rateSvc.GetRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}
	result.Rate = rate

	var failedKinds []string
	causes := make(map[string]error)

	for _, kind := range domain.RecordKinds {
		converted, skipped, err := s.convertCollection(ctx, userID, kind, fromCode, toCode, rate)
		result.PerKind[kind] = converted
		result.ConvertedCount += converted
		result.SkippedCount += skipped
		if err != nil {
			failedKinds = append(failedKinds, string(kind))
			causes[string(kind)] = err
		}
	}

	if len(failedKinds) > 0 {
		return nil, &apperrors.PartialReconciliationError{
			FailedKinds: failedKinds,
			Causes:      causes,
		}
	}

	pref := domain.CurrencyPreference{
		UserID:           userID,
		ActualCurrency:   toCode,
		PreviousCurrency: fromCode,
		UpdatedAt:        s.now().UTC(),
	}
	if err := s.prefRepo.UpsertPreference(ctx, pref); err != nil {
		// Records are already converted: the caller must retry this write,
		// not ignore it, or the visible currency disagrees with the stored
		// amounts until it succeeds.
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPreferenceWrite, err)
	}

	// Best effort; the mirror only serves offline reads.
	_ = s.mirror.Put(ctx, mirrorPreferenceKey(userID), toCode)

	return result, nil
}

// convertCollection sweeps one record kind. Per-record updates run
// concurrently under a bounded errgroup; a failing update fails the kind
// but already-issued updates complete.
func (s *ReconciliationService) convertCollection(ctx context.Context, userID string, kind domain.RecordKind, fromCode, toCode string, rate decimal.Decimal) (int, int, error) {
	records, err := s.recordRepo.ListRecordsByUser(ctx, userID, kind)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list %s records: %w", strings.ToLower(string(kind)), err)
	}

	var converted, skipped atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, record := range records {
		// Already expressed in the target currency, typically from an
		// interrupted earlier run. Converting again would compound error.
		if record.LastConvertedCurrency == toCode {
			skipped.Add(1)
			continue
		}

		record := record // per-iteration copy; required while go.mod targets go < 1.22
		g.Go(func() error {
			basis := conversionBasis(record, fromCode)
			newAmount := basis.Mul(rate).Round(amountPrecision)

			// The original is captured once, on first conversion, and never
			// overwritten thereafter.
			original := record.Amount
			if record.OriginalAmount.Valid {
				original = record.OriginalAmount.Decimal
			}

			if err := s.recordRepo.UpdateRecordConversion(gctx, record.RecordID, newAmount, original, toCode); err != nil {
				return fmt.Errorf("record %s: %w", record.RecordID, err)
			}
			converted.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(converted.Load()), int(skipped.Load()), err
	}
	return int(converted.Load()), int(skipped.Load()), nil
}

// conversionBasis picks the amount a conversion multiplies, preventing a
// second switch from compounding rounding and rate error across runs.
//
// A record stamped with neither currency is stale relative to the assumed
// fromCode; re-deriving from the original entry beats compounding an
// already-converted figure.
func conversionBasis(record domain.FinancialRecord, fromCode string) decimal.Decimal {
	if record.LastConvertedCurrency == "" || record.LastConvertedCurrency == fromCode {
		return record.Amount
	}
	if record.OriginalAmount.Valid {
		return record.OriginalAmount.Decimal
	}
	return record.Amount
}
