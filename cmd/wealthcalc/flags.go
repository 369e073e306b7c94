package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/cottington/wealth-calculator/internal/domain"
)

// decimalValue lets exact decimal amounts be passed as flags.
type decimalValue struct{ d *decimal.Decimal }

var _ pflag.Value = decimalValue{}

func newDecimalValue(d *decimal.Decimal, def decimal.Decimal) decimalValue {
	*d = def
	return decimalValue{d: d}
}

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*v.d = d
	return nil
}

func (v decimalValue) Type() string { return "decimal" }

// frequencyValue accepts monthly, quarterly, semi-annually, yearly or 12/4/2/1.
type frequencyValue struct{ f *domain.Frequency }

func (v frequencyValue) String() string {
	if v.f == nil {
		return ""
	}
	return v.f.String()
}

func (v frequencyValue) Set(s string) error { return v.f.UnmarshalText([]byte(s)) }
func (v frequencyValue) Type() string       { return "frequency" }

// timingValue accepts advance or arrears.
type timingValue struct{ t *domain.Timing }

func (v timingValue) String() string {
	if v.t == nil {
		return ""
	}
	return string(*v.t)
}

func (v timingValue) Set(s string) error { return v.t.UnmarshalText([]byte(s)) }
func (v timingValue) Type() string       { return "timing" }

// addPlanFlags registers the flags shared by project and goal.
func addPlanFlags(fs *pflag.FlagSet, rate, inflation *decimal.Decimal, years *int, freq *domain.Frequency, timing *domain.Timing) {
	fs.Var(newDecimalValue(rate, decimal.NewFromInt(10)), "rate", "expected annual return in percent")
	fs.Var(newDecimalValue(inflation, decimal.NewFromInt(6)), "inflation", "expected annual inflation (CPI) in percent")
	fs.IntVar(years, "years", 10, "duration in whole years")
	*freq = domain.Monthly
	fs.Var(frequencyValue{f: freq}, "frequency", "contribution frequency: monthly, quarterly, semi-annually or yearly")
	*timing = domain.Advance
	fs.Var(timingValue{t: timing}, "timing", "advance (start of period) or arrears (end of period)")
}
