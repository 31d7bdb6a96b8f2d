package reminder

import (
	"math"
	"time"
)

// NextOccurrence returns the next yearly occurrence of a recurring month/day
// on or after today. Today is expected to be truncated to midnight in the
// scheduler's location. A day that does not exist in the candidate year
// (Feb 29 in a non-leap year) is clamped to the last valid day of that month.
func NextOccurrence(month time.Month, day int, today time.Time) time.Time {
	occurrence := dateFor(today.Year(), month, day, today.Location())
	if occurrence.Before(today) {
		occurrence = dateFor(today.Year()+1, month, day, today.Location())
	}
	return occurrence
}

// DaysUntil returns the whole-day count from today to the next occurrence of
// the recurring month/day, rounding up across DST transitions. Zero means the
// occurrence is today.
func DaysUntil(month time.Month, day int, today time.Time) int {
	occurrence := NextOccurrence(month, day, today)
	return int(math.Ceil(occurrence.Sub(today).Hours() / 24))
}

func dateFor(year int, month time.Month, day int, loc *time.Location) time.Time {
	if max := daysIn(year, month); day > max {
		day = max
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// daysIn returns the number of days in a month; day 0 of the following month
// normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
