package calendar

import (
	"testing"
	"time"

	"honnef.co/go/weekview/container"
)

func TestDayArithmetic(t *testing.T) {
	d := Date(2024, time.February, 28)
	if got := d.AddDays(1); got != Date(2024, time.February, 29) {
		t.Errorf("%s.AddDays(1)=%s, want 2024-02-29", d, got)
	}
	if got := d.AddDays(2); got != Date(2024, time.March, 1) {
		t.Errorf("%s.AddDays(2)=%s, want 2024-03-01", d, got)
	}
	if got := d.AddDays(-28); got != Date(2024, time.January, 31) {
		t.Errorf("%s.AddDays(-28)=%s, want 2024-01-31", d, got)
	}
	if !d.Before(d.AddDays(1)) || d.Before(d) {
		t.Errorf("Before is inconsistent for %s", d)
	}
	if got := d.String(); got != "2024-02-28" {
		t.Errorf("String()=%q, want %q", got, "2024-02-28")
	}
}

func TestRange(t *testing.T) {
	days := Range(Date(2024, time.December, 30), 3)
	want := []Day{Date(2024, time.December, 30), Date(2024, time.December, 31), Date(2025, time.January, 1)}
	if len(days) != len(want) {
		t.Fatalf("len(Range)=%d, want %d", len(days), len(want))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("Range[%d]=%s, want %s", i, days[i], want[i])
		}
	}
}

func at(d, h, m int) time.Time {
	return time.Date(2024, time.May, d, h, m, 0, 0, time.UTC)
}

func TestSplitTimed(t *testing.T) {
	evs := []*Event{
		{ID: "a", Title: container.Some("Standup"), Start: at(6, 9, 0), End: at(6, 9, 15)},
		{ID: "b", Title: container.Some("Offsite"), Start: at(6, 22, 0), End: at(8, 2, 0)},
		{ID: "c", Start: at(7, 12, 0), End: at(7, 12, 0)},
	}
	timed, allDay := Split(evs, time.UTC)
	if len(allDay) != 0 {
		t.Errorf("got %d all-day chips, want 0", len(allDay))
	}
	want := []struct {
		id         string
		day        Day
		start, end float32
	}{
		{"a", Date(2024, time.May, 6), 540, 555},
		{"b", Date(2024, time.May, 6), 1320, 1440},
		{"b", Date(2024, time.May, 7), 0, 1440},
		{"b", Date(2024, time.May, 8), 0, 120},
		{"c", Date(2024, time.May, 7), 720, 720},
	}
	if len(timed) != len(want) {
		t.Fatalf("got %d timed chips, want %d", len(timed), len(want))
	}
	for i, w := range want {
		c := timed[i]
		if c.Event.ID != w.id || c.Day != w.day || c.StartMinute() != w.start || c.EndMinute() != w.end {
			t.Errorf("chip %d = %s [%g, %g), want %s@%s [%g, %g)", i, c.Key(), c.StartMinute(), c.EndMinute(), w.id, w.day, w.start, w.end)
		}
		if c.Width != 1 {
			t.Errorf("chip %d width=%g, want 1", i, c.Width)
		}
	}
}

func TestSplitAllDay(t *testing.T) {
	evs := []*Event{
		{ID: "holiday", AllDay: true, Start: at(6, 0, 0), End: at(7, 0, 0)},
		{ID: "trip", AllDay: true, Start: at(8, 0, 0), End: at(11, 0, 0)},
	}
	_, allDay := Split(evs, time.UTC)
	var got []ChipKey
	for _, c := range allDay {
		got = append(got, c.Key())
	}
	want := []ChipKey{
		{"holiday", Date(2024, time.May, 6)},
		{"trip", Date(2024, time.May, 8)},
		{"trip", Date(2024, time.May, 9)},
		{"trip", Date(2024, time.May, 10)},
	}
	if len(got) != len(want) {
		t.Fatalf("got chips %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chip %d=%s, want %s", i, got[i], want[i])
		}
	}
}

func TestOnDay(t *testing.T) {
	c := &Chip{Event: &Event{ID: "x"}, Day: Date(2024, time.May, 6)}
	if !c.OnDay(Date(2024, time.May, 6)) {
		t.Errorf("OnDay(same day)=false, want true")
	}
	if c.OnDay(Date(2024, time.May, 7)) {
		t.Errorf("OnDay(next day)=true, want false")
	}
}
