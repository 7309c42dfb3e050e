package domain

import "time"

// CurrencyPreference records the primary currency a user has designated as
// their default, together with the currency it replaced. Exactly one live
// row exists per user: a reconciliation run replaces the pair atomically so
// readers never observe a half-updated actual/previous combination.
type CurrencyPreference struct {
	UserID           string    `json:"userID"`
	ActualCurrency   string    `json:"actualCurrency"`
	PreviousCurrency string    `json:"previousCurrency"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
