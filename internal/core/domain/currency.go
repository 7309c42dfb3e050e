package domain

// Currency represents an entry in the supported-currency catalog.
// Catalog entries are immutable reference data refreshed from the external
// rate service when the catalog cache expires.
type Currency struct {
	CurrencyCode string   `json:"currencyCode"` // ISO-4217-like code (e.g., "USD")
	Name         string   `json:"name"`         // e.g., "US Dollar"
	Symbol       string   `json:"symbol"`       // e.g., "$"; empty when the source omits it
	Countries    []string `json:"countries,omitempty"`
}

// IsValidCurrencyCode reports whether code looks like a 3-letter
// ISO-4217-style currency code. Callers normalize to upper case first.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
