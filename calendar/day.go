// Package calendar contains the events displayed by the week view and the per-day chips they are split into.
package calendar

import (
	"fmt"
	"time"
)

// Day is a civil date, independent of time zones.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{y, m, d}
}

func Date(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Start returns midnight at the start of d in loc.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Day) AddDays(n int) Day {
	// Normalization is done by time.Date; UTC avoids DST gaps.
	return DayOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Range returns n consecutive days starting at first.
func Range(first Day, n int) []Day {
	days := make([]Day, n)
	for i := range days {
		days[i] = first.AddDays(i)
	}
	return days
}
