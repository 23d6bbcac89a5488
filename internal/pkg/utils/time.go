package utils

import (
	"fmt"
	"time"

	"clinicbook-service/internal/pkg/constvars"
)

// ParseDay parses a "2006-01-02" date string.
func ParseDay(dayStr string) (time.Time, error) {
	return time.Parse(constvars.AppDateLayout, dayStr)
}

// CombineDayAndClock builds an absolute timestamp from a date string and a
// "15:04" wall-clock string.
func CombineDayAndClock(dayStr, clockStr string) (time.Time, error) {
	return time.Parse(constvars.AppDateTimeLayout, fmt.Sprintf("%s %s", dayStr, clockStr))
}

// DateKey normalizes a timestamp to its date-only key, used when comparing
// availability periods that may carry different time-of-day components.
func DateKey(t time.Time) string {
	return t.Format(constvars.AppDateLayout)
}
