package dasha

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the day-month-year form used in reports.
const DateLayout = "2 Jan 2006"

// FormatDate renders t in UTC as "2 Jan 2006".
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatDuration renders a period length: decimal years from one year up,
// whole months below that, and whole days under a month.
func FormatDuration(years float64) string {
	if years >= 1 {
		return fmt.Sprintf("%.1fy", years)
	}
	if months := years * 12; months >= 1 {
		return fmt.Sprintf("%dm", int(math.Round(months)))
	}
	return fmt.Sprintf("%dd", int(math.Round(years*365)))
}
