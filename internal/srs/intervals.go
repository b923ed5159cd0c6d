package srs

import "time"

// FailSafeQuality is the rating substituted for anything outside 1..5.
const FailSafeQuality = 1

// intervalDays maps a quality rating to the number of days until the
// card is due again:
//
//	1 = Again     -> 1 day
//	2 = Hard      -> 3 days
//	3 = Good      -> 7 days
//	4 = Easy      -> 14 days
//	5 = Very Easy -> 30 days
var intervalDays = map[int]int{
	1: 1,
	2: 3,
	3: 7,
	4: 14,
	5: 30,
}

// NormalizeQuality clamps quality to the fail-safe default when it falls
// outside 1..5. The second return reports whether clamping happened so
// callers can log the anomaly; out-of-range ratings are never an error.
func NormalizeQuality(quality int) (int, bool) {
	if quality < 1 || quality > 5 {
		return FailSafeQuality, true
	}
	return quality, false
}

// DaysAdded returns the interval in days for a quality rating.
// Out-of-range ratings behave as FailSafeQuality.
func DaysAdded(quality int) int {
	q, _ := NormalizeQuality(quality)
	return intervalDays[q]
}

// NextDue computes the next due date for a card graded with quality at now.
func NextDue(now time.Time, quality int) time.Time {
	return now.AddDate(0, 0, DaysAdded(quality))
}

// StartOfDay truncates t to midnight in its own location. A card is due
// for review when its next-due timestamp is at or before this boundary.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
