package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateFetch indicates the external rate service was unreachable or
// returned a non-success result. The operation is aborted and caches are
// left unchanged.
var ErrRateFetch = errors.New("exchange rate fetch failed")

// ErrRateUnavailable indicates the rate service was reachable but had no
// usable rate for the requested currency pair. Reconciliation must abort
// before mutating any record when it sees this.
var ErrRateUnavailable = errors.New("exchange rate unavailable for currency pair")

// ErrPreferenceWrite indicates records were converted but the currency
// preference row could not be updated. Callers must surface this and retry
// the preference write: until then the visible currency disagrees with the
// currency the stored amounts are expressed in.
var ErrPreferenceWrite = errors.New("currency preference write failed")

// PartialReconciliationError reports a reconciliation run in which the rate
// was obtained but one or more record collections failed to fully convert.
// Converted records are not rolled back; Causes names the failure per
// record kind so the caller can prompt a retry of the currency switch.
type PartialReconciliationError struct {
	FailedKinds []string
	Causes      map[string]error
}

func (e *PartialReconciliationError) Error() string {
	var parts []string
	for _, kind := range e.FailedKinds {
		if cause, ok := e.Causes[kind]; ok && cause != nil {
			parts = append(parts, fmt.Sprintf("%s: %s", kind, cause.Error()))
			continue
		}
		parts = append(parts, kind)
	}
	return "reconciliation partially failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-kind causes so errors.Is still matches sentinel
// errors wrapped inside a partial failure.
func (e *PartialReconciliationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Causes))
	for _, kind := range e.FailedKinds {
		if cause, ok := e.Causes[kind]; ok && cause != nil {
			errs = append(errs, cause)
		}
	}
	return errs
}
