package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/core/domain"
	"github.com/spendio/spendio_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestConvert_SameCurrencyIsIdentity(t *testing.T) {
	rates := domain.RateTable{"USD": dec("1.08")}

	got := services.Convert(dec("123.45"), "EUR", "EUR", rates)

	assert.True(t, dec("123.45").Equal(got))
}

func TestConvert_MultipliesByRate(t *testing.T) {
	rates := domain.RateTable{"USD": dec("1.08")}

	got := services.Convert(dec("10"), "EUR", "USD", rates)

	assert.True(t, dec("10.8").Equal(got), "expected 10.8, got %s", got)
}

func TestConvert_MissingRateReturnsAmountUnchanged(t *testing.T) {
	rates := domain.RateTable{"USD": dec("1.08")}

	got := services.Convert(dec("10"), "EUR", "XXX", rates)

	assert.True(t, dec("10").Equal(got))
}

func TestConvert_NonPositiveRateReturnsAmountUnchanged(t *testing.T) {
	rates := domain.RateTable{"USD": dec("0"), "GBP": dec("-1.2")}

	assert.True(t, dec("10").Equal(services.Convert(dec("10"), "EUR", "USD", rates)))
	assert.True(t, dec("10").Equal(services.Convert(dec("10"), "EUR", "GBP", rates)))
}

func TestConvertWithMinimumFloor_NormalConversion(t *testing.T) {
	rates := domain.RateTable{"USD": dec("1.08")}

	quote := services.ConvertWithMinimumFloor(dec("10"), "EUR", "USD", rates)

	require.True(t, quote.Converted)
	assert.False(t, quote.Adjusted)
	assert.True(t, dec("10").Equal(quote.FromAmount))
	assert.True(t, dec("10.8").Equal(quote.ToAmount))
}

func TestConvertWithMinimumFloor_TinyResultFloorsToOneCent(t *testing.T) {
	// 1 JPY at 0.0067 USD/JPY converts to 0.0067 USD, which would display
	// as 0.00. The quote must be rewritten to the smallest JPY amount that
	// yields a displayable cent.
	rates := domain.RateTable{"USD": dec("0.0067")}

	quote := services.ConvertWithMinimumFloor(dec("1"), "JPY", "USD", rates)

	require.True(t, quote.Converted)
	assert.True(t, quote.Adjusted)
	assert.True(t, dec("0.01").Equal(quote.ToAmount))
	// 0.01 / 0.0067 = 1.4925..., rounded to 1.49.
	assert.True(t, dec("1.49").Equal(quote.FromAmount), "got %s", quote.FromAmount)
}

func TestConvertWithMinimumFloor_HugeRateClampsFromAmount(t *testing.T) {
	// A rate so large that the minimum from-amount itself rounds to 0.00
	// must clamp the source side to one cent instead of showing zero.
	rates := domain.RateTable{"IDR": dec("16000")}

	quote := services.ConvertWithMinimumFloor(dec("0.0000001"), "USD", "IDR", rates)

	require.True(t, quote.Converted)
	require.True(t, quote.Adjusted)
	assert.True(t, dec("0.01").Equal(quote.FromAmount), "got %s", quote.FromAmount)
	assert.True(t, dec("0.01").Equal(quote.ToAmount))
}

func TestConvertWithMinimumFloor_MissingRateDegrades(t *testing.T) {
	rates := domain.RateTable{}

	quote := services.ConvertWithMinimumFloor(dec("10"), "EUR", "USD", rates)

	assert.False(t, quote.Converted)
	assert.False(t, quote.Adjusted)
	assert.True(t, dec("10").Equal(quote.FromAmount))
	assert.True(t, dec("10").Equal(quote.ToAmount))
}

func TestConvertWithMinimumFloor_SameCurrency(t *testing.T) {
	quote := services.ConvertWithMinimumFloor(dec("5"), "USD", "USD", nil)

	assert.True(t, quote.Converted)
	assert.True(t, dec("5").Equal(quote.ToAmount))
}

func TestConvert_RoundTripWithinRoundingTolerance(t *testing.T) {
	// Converting there and back with reciprocal rates reproduces the
	// starting amount to within display rounding.
	eurToUsd := domain.RateTable{"USD": dec("1.08")}
	usdToEur := domain.RateTable{"EUR": dec("1").Div(dec("1.08"))}

	start := dec("250.37")
	there := services.Convert(start, "EUR", "USD", eurToUsd).Round(2)
	back := services.Convert(there, "USD", "EUR", usdToEur).Round(2)

	diff := start.Sub(back).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.01")), "round trip drifted by %s", diff)
}
