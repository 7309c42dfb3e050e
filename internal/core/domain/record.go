package domain

import "github.com/shopspring/decimal"

// RecordKind identifies a financial record collection.
// Goals are displayed with currency symbols in the app but are excluded
// from currency reconciliation, so they never appear here.
type RecordKind string

const (
	RecordKindIncome  RecordKind = "INCOME"
	RecordKindExpense RecordKind = "EXPENSE"
)

// RecordKinds lists the collections swept by a currency reconciliation.
var RecordKinds = []RecordKind{RecordKindIncome, RecordKindExpense}

// FinancialRecord is an income or expense entry owned by a user.
//
// Amount is always expressed in the user's current primary currency.
// OriginalAmount, once set, is immutable: it is the amount as originally
// entered by the user, captured on the record's first conversion.
// LastConvertedCurrency names the currency Amount is currently expressed
// in; empty means the record has never been converted and its currency is
// implicitly the one active when the record was created.
type FinancialRecord struct {
	RecordID              string              `json:"recordID"`
	UserID                string              `json:"userID"`
	Kind                  RecordKind          `json:"kind"`
	Description           string              `json:"description"`
	Category              string              `json:"category"`
	Amount                decimal.Decimal     `json:"amount"`
	OriginalAmount        decimal.NullDecimal `json:"originalAmount"`
	LastConvertedCurrency string              `json:"lastConvertedCurrency,omitempty"`
	AuditFields
}

// SwitchResult summarizes a completed currency reconciliation run.
type SwitchResult struct {
	FromCurrency   string             `json:"fromCurrency"`
	ToCurrency     string             `json:"toCurrency"`
	Rate           decimal.Decimal    `json:"rate"`
	ConvertedCount int                `json:"convertedCount"`
	SkippedCount   int                `json:"skippedCount"`
	PerKind        map[RecordKind]int `json:"perKind"`
}
