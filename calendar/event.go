package calendar

import (
	"image/color"
	"time"

	"honnef.co/go/weekview/container"
)

// Event is owned by the host and never mutated by the view.
type Event struct {
	ID       string
	Title    container.Option[string]
	Location container.Option[string]
	Start    time.Time
	End      time.Time
	AllDay   bool
	Color    container.Option[color.NRGBA]
}

// ChipKey identifies a chip across frames: one event on one day.
type ChipKey struct {
	EventID string
	Day     Day
}

func (k ChipKey) String() string {
	return k.EventID + "@" + k.Day.String()
}

// Chip is one calendar-day occurrence of an Event.
type Chip struct {
	Event *Event
	Day   Day

	// Start and End are the part of the event that falls on Day.
	Start time.Time
	End   time.Time

	// Left and Width place the chip horizontally within its day column, as fractions of the column width. They are
	// set when overlapping chips are arranged into columns.
	Left  float32
	Width float32
}

func (c *Chip) Key() ChipKey {
	return ChipKey{EventID: c.Event.ID, Day: c.Day}
}

// OnDay reports whether the chip belongs to day. This is equality, not overlap: an event spanning several days has
// one chip per day.
func (c *Chip) OnDay(day Day) bool {
	return c.Day == day
}

// StartMinute and EndMinute return the chip's extent in minutes since the start of its day.
func (c *Chip) StartMinute() float32 {
	return minuteOfDay(c.Start, c.Day)
}

func (c *Chip) EndMinute() float32 {
	return minuteOfDay(c.End, c.Day)
}

func minuteOfDay(t time.Time, day Day) float32 {
	return float32(t.Sub(day.Start(t.Location())).Minutes())
}

// Split splits events into per-day chips, separating timed from all-day events. Times are converted to loc before
// determining days. Chips are returned in event order, and within an event in day order.
func Split(events []*Event, loc *time.Location) (timed, allDay []*Chip) {
	for _, ev := range events {
		start := ev.Start.In(loc)
		end := ev.End.In(loc)
		if end.Before(start) {
			end = start
		}

		if ev.AllDay {
			// All-day events end at midnight of the day after their last day.
			last := DayOf(end)
			if end.Equal(last.Start(loc)) && end.After(start) {
				last = last.AddDays(-1)
			}
			for d := DayOf(start); !last.Before(d); d = d.AddDays(1) {
				allDay = append(allDay, &Chip{Event: ev, Day: d, Start: d.Start(loc), End: d.AddDays(1).Start(loc), Width: 1})
			}
			continue
		}

		first := DayOf(start)
		if !end.After(start) {
			timed = append(timed, &Chip{Event: ev, Day: first, Start: start, End: end, Width: 1})
			continue
		}
		for d := first; ; d = d.AddDays(1) {
			dayStart := d.Start(loc)
			dayEnd := d.AddDays(1).Start(loc)
			if !dayStart.Before(end) {
				break
			}
			cs, ce := start, end
			if cs.Before(dayStart) {
				cs = dayStart
			}
			if ce.After(dayEnd) {
				ce = dayEnd
			}
			timed = append(timed, &Chip{Event: ev, Day: d, Start: cs, End: ce, Width: 1})
		}
	}
	return timed, allDay
}
