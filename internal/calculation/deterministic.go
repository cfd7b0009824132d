package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// currentYear is the calendar year a projection starts in when the caller
// does not pin one.
func currentYear() int { return nowFunc().Year() }
