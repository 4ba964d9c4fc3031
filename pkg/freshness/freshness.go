package freshness

import (
	"time"
)

// Bucket is the derived freshness class of a pantry item. Buckets partition
// every possible day-count: negative days are Expired, zero through the
// threshold inclusive are ExpiringSoon, everything above is Fresh.
type Bucket string

const (
	Expired      Bucket = "Expired"
	ExpiringSoon Bucket = "ExpiringSoon"
	Fresh        Bucket = "Fresh"
)

const DefaultThresholdDays = 3

// Classify maps an expiry date and a reference date to a freshness bucket and
// the number of calendar days until expiry. Both dates are truncated to
// midnight first, so the time of day never changes the bucket of an item
// expiring "today".
func Classify(expiryDate, referenceDate time.Time, thresholdDays int) (Bucket, int) {
	days := DaysUntilExpiry(expiryDate, referenceDate)

	switch {
	case days < 0:
		return Expired, days
	case days <= thresholdDays:
		return ExpiringSoon, days
	default:
		return Fresh, days
	}
}

// DaysUntilExpiry returns the calendar-day difference between the two dates,
// ignoring their time-of-day components.
func DaysUntilExpiry(expiryDate, referenceDate time.Time) int {
	expiry := truncateToDay(expiryDate)
	reference := truncateToDay(referenceDate)
	return int(expiry.Sub(reference).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
