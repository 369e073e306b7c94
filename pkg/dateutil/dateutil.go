package dateutil

import (
	"strings"
	"time"
)

// ReportDate formats a date the way client reports print it, e.g. "17 OCTOBER 2026".
func ReportDate(t time.Time) string {
	return strings.ToUpper(t.Format("02 January 2006"))
}

// AddYears adds years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// MaturityLabel is the month and year a plan started at start matures after years, e.g. "October 2036".
func MaturityLabel(start time.Time, years int) string {
	return AddYears(start, years).Format("January 2006")
}
