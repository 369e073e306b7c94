package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Frequency is the number of compounding (and contribution) periods per year.
type Frequency int

const (
	Yearly       Frequency = 1
	SemiAnnually Frequency = 2
	Quarterly    Frequency = 4
	Monthly      Frequency = 12
)

var frequencyNames = map[Frequency]string{
	Yearly:       "yearly",
	SemiAnnually: "semi-annually",
	Quarterly:    "quarterly",
	Monthly:      "monthly",
}

var frequencyAliases = map[string]Frequency{
	"monthly":       Monthly,
	"month":         Monthly,
	"12":            Monthly,
	"quarterly":     Quarterly,
	"quarter":       Quarterly,
	"4":             Quarterly,
	"semi-annually": SemiAnnually,
	"semi_annually": SemiAnnually,
	"semiannually":  SemiAnnually,
	"semi-annual":   SemiAnnually,
	"2":             SemiAnnually,
	"yearly":        Yearly,
	"annually":      Yearly,
	"annual":        Yearly,
	"1":             Yearly,
}

// ParseFrequency accepts a frequency name (case-insensitive) or its number of periods.
func ParseFrequency(s string) (Frequency, error) {
	if f, ok := frequencyAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return 0, InvalidParameter("frequency", "unsupported frequency %q (use monthly, quarterly, semi-annually or yearly)", s)
}

// PeriodsPerYear returns the frequency as an int.
func (f Frequency) PeriodsPerYear() int { return int(f) }

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	_, ok := frequencyNames[f]
	return ok
}

func (f Frequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return "Frequency(" + strconv.Itoa(int(f)) + ")"
}

// Label is the title-cased name used in reports.
func (f Frequency) Label() string {
	switch f {
	case Monthly:
		return "Monthly"
	case Quarterly:
		return "Quarterly"
	case SemiAnnually:
		return "Semi-Annually"
	case Yearly:
		return "Yearly"
	}
	return f.String()
}

func (f Frequency) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, InvalidParameter("frequency", "unsupported frequency %d", int(f))
	}
	return []byte(f.String()), nil
}

func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// UnmarshalJSON accepts both "monthly" and 12. A JSON null leaves f unchanged.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return f.UnmarshalText([]byte(s))
	}
	return f.UnmarshalText(data)
}
