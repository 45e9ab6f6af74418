// Package dayclock computes the regional calendar day used to scope votes
// and orders. The organization operates on Trinidad time (America/Port_of_Spain,
// UTC-4, no DST), so the day boundary is a fixed offset rather than the
// server's local time or UTC.
package dayclock

import "time"

// Zone is the fixed regional timezone. Port of Spain has no daylight saving,
// so a fixed offset is exact.
var Zone = time.FixedZone("America/Port_of_Spain", -4*60*60)

// DayOf returns midnight of t's calendar day in the regional timezone.
func DayOf(t time.Time) time.Time {
	local := t.In(Zone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Zone)
}

// Today returns midnight of the current regional day.
func Today() time.Time {
	return DayOf(time.Now())
}

// DayRange returns the half-open window [start, end) for t's regional day.
func DayRange(t time.Time) (start, end time.Time) {
	start = DayOf(t)
	return start, start.Add(24 * time.Hour)
}
