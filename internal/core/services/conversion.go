package services

import (
	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/core/domain"
)

// amountPrecision is the display precision persisted amounts are rounded to.
const amountPrecision = 2

// displayMinimum is the smallest representable display amount (0.01).
var displayMinimum = decimal.New(1, -amountPrecision)

// Convert converts amount from fromCode to toCode using a rate table
// expressed relative to fromCode. Same-currency conversion is the identity.
// A missing, non-numeric, or non-positive rate returns the amount unchanged
// rather than an error: a display glitch is preferable to a crash, and the
// caller surfaces the skipped conversion as a warning. Reconciliation must
// not use this degrade path; it fails fast instead.
func Convert(amount decimal.Decimal, fromCode, toCode string, rates domain.RateTable) decimal.Decimal {
	if fromCode == toCode {
		return amount
	}
	rate, ok := rates.Rate(toCode)
	if !ok {
		return amount
	}
	return amount.Mul(rate)
}

// ConversionQuote is a display-only conversion result. It must never be
// used to decide what gets persisted.
type ConversionQuote struct {
	FromAmount decimal.Decimal
	ToAmount   decimal.Decimal
	// Adjusted is set when the minimum floor correction replaced the
	// requested amount pair.
	Adjusted bool
	// Converted is false when a usable rate was missing and the amount came
	// back unchanged, so callers can warn instead of misleading the user.
	Converted bool
}

// ConvertWithMinimumFloor converts for display, correcting results that
// would round to 0.00. Currencies of very different magnitudes can convert
// 1 unit into less than a displayable cent; in that case the quote is
// rewritten to the minimum fromCode amount that yields exactly 0.01 of
// toCode, clamped so the source side never shows 0.00 either.
func ConvertWithMinimumFloor(amount decimal.Decimal, fromCode, toCode string, rates domain.RateTable) ConversionQuote {
	if fromCode == toCode {
		return ConversionQuote{FromAmount: amount, ToAmount: amount, Converted: true}
	}

	rate, ok := rates.Rate(toCode)
	if !ok {
		return ConversionQuote{FromAmount: amount, ToAmount: amount}
	}

	toAmount := amount.Mul(rate)
	if toAmount.IsPositive() && toAmount.LessThan(displayMinimum) {
		minFrom := displayMinimum.Div(rate).Round(amountPrecision)
		if !minFrom.IsPositive() {
			minFrom = displayMinimum
		}
		return ConversionQuote{
			FromAmount: minFrom,
			ToAmount:   displayMinimum,
			Adjusted:   true,
			Converted:  true,
		}
	}

	return ConversionQuote{FromAmount: amount, ToAmount: toAmount, Converted: true}
}
