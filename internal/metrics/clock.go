// Package metrics computes aggregate statistics over tracked roles,
// tasks, and network contacts. All functions are pure with respect to
// their inputs: records are never mutated and "today" is captured once
// per build through a Clock.
package metrics

import "time"

const dateLayout = "2006-01-02"

// Clock fixes the build's reference instant. All relative-date
// comparisons are done lexicographically on ISO-8601 YYYY-MM-DD strings
// derived from it, which avoids timezone-induced off-by-one errors at
// day boundaries.
type Clock struct {
	now time.Time
}

// NewClock captures a reference instant for the build.
func NewClock(now time.Time) Clock {
	return Clock{now: now}
}

// Today returns the reference date as YYYY-MM-DD.
func (c Clock) Today() string {
	return c.now.Format(dateLayout)
}

// DaysAgo returns the date n days before the reference date.
func (c Clock) DaysAgo(n int) string {
	return c.now.AddDate(0, 0, -n).Format(dateLayout)
}

// DaysAhead returns the date n days after the reference date.
func (c Clock) DaysAhead(n int) string {
	return c.now.AddDate(0, 0, n).Format(dateLayout)
}

// daysBetween returns the whole-day difference to - from. The second
// return is false when either date fails to parse as YYYY-MM-DD.
func daysBetween(from, to string) (int, bool) {
	a, err := time.Parse(dateLayout, from)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse(dateLayout, to)
	if err != nil {
		return 0, false
	}
	return int(b.Sub(a).Hours() / 24), true
}
