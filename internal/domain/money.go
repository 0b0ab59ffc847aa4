package domain

import "github.com/shopspring/decimal"

// Currency values carry two decimal places.
const moneyPlaces = 2

// Money rounds d to currency precision.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// Amount builds a currency value from whole units.
func Amount(units int64) decimal.Decimal {
	return decimal.NewFromInt(units)
}
