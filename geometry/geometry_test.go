package geometry

import (
	"testing"
	"time"

	"honnef.co/go/weekview/calendar"
	"honnef.co/go/weekview/clip"
)

var monday = calendar.Date(2024, time.May, 6)

func timedChip(id string, startH, startM, endH, endM int) *calendar.Chip {
	day := monday.Start(time.UTC)
	return &calendar.Chip{
		Event: &calendar.Event{ID: id},
		Day:   monday,
		Start: day.Add(time.Duration(startH)*time.Hour + time.Duration(startM)*time.Minute),
		End:   day.Add(time.Duration(endH)*time.Hour + time.Duration(endM)*time.Minute),
		Width: 1,
	}
}

func TestCandidateTimed(t *testing.T) {
	c := &Calculator{
		WidthPerDay:         100,
		HourHeight:          50,
		OriginY:             -200,
		GridTop:             86,
		EventMarginVertical: 1,
		OverlappingEventGap: 4,
	}
	chip := timedChip("a", 9, 0, 10, 30)
	got := c.CandidateTimed(chip, 56)
	// 9:00 is 450px below midnight, 10:30 is 525px below it.
	want := clip.R(56, 450-200+86+1, 156, 525-200+86-1)
	if got != want {
		t.Errorf("CandidateTimed=%v, want %v", got, want)
	}

	chip.Left, chip.Width = 0.5, 0.5
	got = c.CandidateTimed(chip, 56)
	if got.Left != 108 || got.Right != 156 {
		t.Errorf("right half: left=%g right=%g, want 108 and 156", got.Left, got.Right)
	}
	chip.Left = 0
	got = c.CandidateTimed(chip, 56)
	if got.Left != 56 || got.Right != 104 {
		t.Errorf("left half: left=%g right=%g, want 56 and 104", got.Left, got.Right)
	}
}

func TestCandidateAllDay(t *testing.T) {
	c := &Calculator{WidthPerDay: 100, AllDayTop: 30, AllDayHeight: 40}
	chip := &calendar.Chip{Event: &calendar.Event{ID: "x", AllDay: true}, Day: monday, Width: 1}
	if got, want := c.CandidateAllDay(chip, 10), clip.R(10, 30, 110, 70); got != want {
		t.Errorf("CandidateAllDay=%v, want %v", got, want)
	}
}

func TestArrange(t *testing.T) {
	a := timedChip("a", 9, 0, 10, 0)
	b := timedChip("b", 9, 30, 11, 0)
	c := timedChip("c", 10, 0, 10, 30)
	d := timedChip("d", 12, 0, 13, 0)
	chips := []*calendar.Chip{d, c, b, a}
	Arrange(chips)

	// a and c share the first column, b takes the second, d is alone.
	tests := []struct {
		chip        *calendar.Chip
		left, width float32
	}{
		{a, 0, 0.5},
		{b, 0.5, 0.5},
		{c, 0, 0.5},
		{d, 0, 1},
	}
	for _, tt := range tests {
		if tt.chip.Left != tt.left || tt.chip.Width != tt.width {
			t.Errorf("chip %s: left=%g width=%g, want %g and %g", tt.chip.Event.ID, tt.chip.Left, tt.chip.Width, tt.left, tt.width)
		}
	}
	if chips[0] != d || chips[3] != a {
		t.Errorf("Arrange reordered its argument")
	}
}

func TestArrangeSeparatesDays(t *testing.T) {
	a := timedChip("a", 9, 0, 10, 0)
	b := timedChip("b", 9, 0, 10, 0)
	b.Day = monday.AddDays(1)
	b.Start = b.Start.Add(24 * time.Hour)
	b.End = b.End.Add(24 * time.Hour)
	Arrange([]*calendar.Chip{a, b})
	if a.Width != 1 || b.Width != 1 {
		t.Errorf("chips on different days share a column: widths %g and %g", a.Width, b.Width)
	}
}

func TestArrangeAllDay(t *testing.T) {
	start := monday.Start(time.UTC)
	events := []*calendar.Event{
		{ID: "offsite", AllDay: true, Start: start, End: start.AddDate(0, 0, 1)},
		{ID: "holiday", AllDay: true, Start: start, End: start.AddDate(0, 0, 2)},
	}
	_, allDay := calendar.Split(events, time.UTC)
	if len(allDay) != 3 {
		t.Fatalf("got %d all-day chips, want 3", len(allDay))
	}
	Arrange(allDay)

	c := &Calculator{WidthPerDay: 100, AllDayTop: 20, AllDayHeight: 24}
	var onMonday []clip.Rect
	for _, chip := range allDay {
		r := c.CandidateAllDay(chip, 50)
		if chip.Day == monday {
			onMonday = append(onMonday, r)
		} else if r != clip.R(50, 20, 150, 44) {
			t.Errorf("lone chip %s at %v, want the full column", chip.Key(), r)
		}
	}
	if len(onMonday) != 2 {
		t.Fatalf("got %d chips on Monday, want 2", len(onMonday))
	}
	a, b := onMonday[0], onMonday[1]
	if a == b {
		t.Fatalf("all-day chips on the same day share rect %v", a)
	}
	if a.Right > b.Left && b.Right > a.Left {
		t.Errorf("all-day chips overlap: %v and %v", a, b)
	}
}
