package output

import (
	"github.com/cottington/wealth-calculator/internal/domain"
	"github.com/cottington/wealth-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount in the given ISO currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return money.New(amount, currency).String()
}

// FormatWhole formats an amount rounded to whole currency units.
func FormatWhole(amount decimal.Decimal, currency string) string {
	return money.New(amount, currency).Whole()
}

// FormatDeduction formats an amount taken off a balance as "- $1,234"; a
// negative amount is a gain and prints as "+ $1,234".
func FormatDeduction(amount decimal.Decimal, currency string) string {
	m := money.New(amount, currency)
	if m.IsNegative() {
		return "+ " + money.New(amount.Neg(), currency).Whole()
	}
	return "- " + m.Whole()
}

// FormatPercentage formats a percentage value (10 means 10%) with 2 decimals.
func FormatPercentage(pct decimal.Decimal) string { return pct.StringFixed(2) + "%" }

// FormatRate trims trailing zeros, so 6 prints as "6%" and 6.5 as "6.5%".
func FormatRate(pct decimal.Decimal) string { return pct.String() + "%" }

func currencyOf(a *domain.Analysis) string {
	if a == nil || a.Currency == "" {
		return domain.DefaultCurrency
	}
	return a.Currency
}
