package money

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a decimal amount in a given ISO 4217 currency.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// New creates a Money value; the currency code is upper-cased.
func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: strings.ToUpper(strings.TrimSpace(currency))}
}

// ValidCurrency reports whether code is a known ISO 4217 currency.
func ValidCurrency(code string) bool {
	return gomoney.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

// Round rounds the amount to the currency's minor unit.
func (m Money) Round() Money {
	return Money{Amount: m.Amount.Round(m.fraction()), Currency: m.Currency}
}

// Sub subtracts another amount of the same currency.
func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool { return m.Amount.IsNegative() }

// String formats the amount with its currency symbol, grouping and minor units,
// e.g. "$1,234.57".
func (m Money) String() string {
	cur := gomoney.GetCurrency(m.Currency)
	if cur == nil {
		return m.Currency + " " + m.Amount.StringFixed(2)
	}
	fraction := int32(cur.Fraction)
	minor := m.Amount.Round(fraction).Shift(fraction)
	return cur.Formatter().Format(minor.IntPart())
}

// Whole formats the amount rounded to whole units, e.g. "$1,235".
func (m Money) Whole() string {
	cur := gomoney.GetCurrency(m.Currency)
	if cur == nil {
		return m.Currency + " " + m.Amount.StringFixed(0)
	}
	f := gomoney.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(m.Amount.Round(0).IntPart())
}

func (m Money) fraction() int32 {
	if cur := gomoney.GetCurrency(m.Currency); cur != nil {
		return int32(cur.Fraction)
	}
	return 2
}
