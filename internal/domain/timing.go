package domain

import "strings"

// Timing selects whether a period's contribution is credited before or after its growth.
type Timing string

const (
	// Advance adds the contribution at the start of the period, then applies growth.
	Advance Timing = "advance"
	// Arrears applies growth first and adds the contribution at the end of the period.
	Arrears Timing = "arrears"
)

var timingAliases = map[string]Timing{
	"advance":                   Advance,
	"start":                     Advance,
	"start of period":           Advance,
	"start of period (advance)": Advance,
	"arrears":                   Arrears,
	"end":                       Arrears,
	"end of period":             Arrears,
	"end of period (arrears)":   Arrears,
}

// ParseTiming accepts advance/arrears and the long "Start of Period (Advance)" labels.
func ParseTiming(s string) (Timing, error) {
	if t, ok := timingAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", InvalidParameter("timing", "unsupported timing %q (use advance or arrears)", s)
}

// Valid reports whether t is Advance or Arrears.
func (t Timing) Valid() bool { return t == Advance || t == Arrears }

// Label is the descriptive name used in reports.
func (t Timing) Label() string {
	switch t {
	case Advance:
		return "Start of Period (Advance)"
	case Arrears:
		return "End of Period (Arrears)"
	}
	return string(t)
}

func (t *Timing) UnmarshalText(text []byte) error {
	parsed, err := ParseTiming(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
