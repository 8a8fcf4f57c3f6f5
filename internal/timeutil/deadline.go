package timeutil

import (
	"fmt"
	"time"
)

// DeadlineStatus classifies how close a deadline is relative to today.
type DeadlineStatus string

const (
	DeadlineNone     DeadlineStatus = ""
	DeadlineOverdue  DeadlineStatus = "OVERDUE"
	DeadlineDueToday DeadlineStatus = "DUE_TODAY"
	DeadlineDueSoon  DeadlineStatus = "DUE_SOON"
	DeadlineUpcoming DeadlineStatus = "UPCOMING"
)

// dueSoonDays is the inclusive upper bound of the DUE_SOON window.
const dueSoonDays = 3

const day = 24 * time.Hour

// DaysUntil returns deadline - today in whole days. Both sides are taken at UTC midnight so
// neither time of day nor DST shifts participate.
func DaysUntil(deadline, today Date) int {
	diff := deadline.Time(time.UTC).Sub(today.Time(time.UTC))
	return int(diff / day)
}

// ClassifyDeadline buckets a deadline against today. A nil deadline yields DeadlineNone.
func ClassifyDeadline(deadline *Date, today Date) DeadlineStatus {
	if deadline == nil {
		return DeadlineNone
	}
	days := DaysUntil(*deadline, today)
	switch {
	case days < 0:
		return DeadlineOverdue
	case days == 0:
		return DeadlineDueToday
	case days <= dueSoonDays:
		return DeadlineDueSoon
	default:
		return DeadlineUpcoming
	}
}

// DeadlineLabel renders the badge text shown next to a match.
func DeadlineLabel(status DeadlineStatus, days int) string {
	switch status {
	case DeadlineNone:
		return ""
	case DeadlineOverdue:
		return "OVERDUE"
	case DeadlineDueToday:
		return "DUE TODAY"
	default:
		return fmt.Sprintf("%dd left", days)
	}
}

// FormatDisplay renders a date as DD/MM/YYYY, or "Not set" when absent.
func FormatDisplay(d *Date) string {
	if d == nil {
		return "Not set"
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}
