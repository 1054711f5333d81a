package entity

import "github.com/shopspring/decimal"

// Prices and amounts are rendered as JSON numbers, matching what clients send.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MoneyScale is the number of decimal places stored for prices and amounts.
const MoneyScale = 2

// IsMoney reports whether d is stored exactly, without rounding, at MoneyScale.
func IsMoney(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
