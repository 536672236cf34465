// Package ics loads events from iCalendar files.
package ics

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"honnef.co/go/weekview/calendar"
	mycolor "honnef.co/go/weekview/color"
	"honnef.co/go/weekview/container"
	"honnef.co/go/weekview/log"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
)

// MaxOccurrences caps the number of occurrences a single recurring event expands to.
const MaxOccurrences = 5000

// ParsedEvent is a VEVENT before recurrence expansion.
type ParsedEvent struct {
	UID      string
	Summary  string
	Location string
	Color    container.Option[color.NRGBA]

	AllDay bool
	// For all-day events, Start and End are midnight in UTC of the first day and of the day after the last day.
	Start time.Time
	End   time.Time

	RRule   string
	ExDates []time.Time
	// RecurrenceID is set on events that replace one occurrence of a recurring event.
	RecurrenceID container.Option[time.Time]
}

// Parse reads all VEVENTs from r. Events that can't be parsed are logged and skipped.
func Parse(r io.Reader) ([]ParsedEvent, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse calendar: %w", err)
	}
	var out []ParsedEvent
	for _, ve := range cal.Events() {
		ev, err := parseEvent(ve)
		if err != nil {
			log.Error("skipping event", err, "uid", propValue(ve, ical.ComponentPropertyUniqueId))
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func propValue(ve *ical.VEvent, name ical.ComponentProperty) string {
	if p := ve.GetProperty(name); p != nil {
		return p.Value
	}
	return ""
}

func param(p *ical.IANAProperty, name string) string {
	if vs := p.ICalParameters[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func isDate(p *ical.IANAProperty) bool {
	return strings.EqualFold(param(p, "VALUE"), "DATE") || !strings.Contains(p.Value, "T")
}

func parseEvent(ve *ical.VEvent) (ParsedEvent, error) {
	ev := ParsedEvent{
		UID:      propValue(ve, ical.ComponentPropertyUniqueId),
		Summary:  propValue(ve, ical.ComponentPropertySummary),
		Location: propValue(ve, ical.ComponentPropertyLocation),
		RRule:    propValue(ve, ical.ComponentPropertyRrule),
	}
	if ev.UID == "" {
		return ev, errors.New("missing UID")
	}
	if c := propValue(ve, "COLOR"); c != "" {
		if nc, err := mycolor.ParseHex(c); err == nil {
			ev.Color = container.Some(nc)
		} else {
			log.Debug("ignoring unsupported color", "uid", ev.UID, "color", c)
		}
	}

	dtstart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtstart == nil {
		return ev, errors.New("missing DTSTART")
	}
	if isDate(dtstart) {
		ev.AllDay = true
		start, err := parseDate(dtstart.Value)
		if err != nil {
			return ev, err
		}
		ev.Start = start
		ev.End = start.AddDate(0, 0, 1)
		if dtend := ve.GetProperty(ical.ComponentPropertyDtEnd); dtend != nil {
			end, err := parseDate(dtend.Value)
			if err != nil {
				return ev, err
			}
			if end.After(start) {
				ev.End = end
			}
		}
	} else {
		start, err := ve.GetStartAt()
		if err != nil {
			return ev, fmt.Errorf("invalid DTSTART: %w", err)
		}
		ev.Start = start
		ev.End = start
		if ve.GetProperty(ical.ComponentPropertyDtEnd) != nil {
			end, err := ve.GetEndAt()
			if err != nil {
				return ev, fmt.Errorf("invalid DTEND: %w", err)
			}
			if !end.Before(start) {
				ev.End = end
			}
		}
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, v := range strings.Split(p.Value, ",") {
			t, err := parseTime(strings.TrimSpace(v), param(p, "TZID"), ev.Start.Location())
			if err != nil {
				log.Debug("ignoring invalid EXDATE", "uid", ev.UID, "value", v)
				continue
			}
			ev.ExDates = append(ev.ExDates, t)
		}
	}
	if p := ve.GetProperty("RECURRENCE-ID"); p != nil {
		t, err := parseTime(p.Value, param(p, "TZID"), ev.Start.Location())
		if err != nil {
			return ev, fmt.Errorf("invalid RECURRENCE-ID: %w", err)
		}
		ev.RecurrenceID = container.Some(t)
	}
	return ev, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("20060102", strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", v, err)
	}
	return t, nil
}

// parseTime parses DATE and DATE-TIME values. Values without a zone are interpreted in tzid, or in def if tzid is
// empty.
func parseTime(v, tzid string, def *time.Location) (time.Time, error) {
	if v == "" {
		return time.Time{}, errors.New("empty time value")
	}
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	loc := def
	if tzid != "" {
		l, err := time.LoadLocation(tzid)
		if err != nil {
			return time.Time{}, err
		}
		loc = l
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, loc)
	}
	return time.ParseInLocation("20060102", v, loc)
}

// Expand turns parsed events into the events that overlap [from, to), with recurrences expanded and overridden
// occurrences replaced. Times are converted to loc; all-day events keep their dates. Each occurrence of a recurring
// event gets its own ID.
func Expand(events []ParsedEvent, from, to time.Time, loc *time.Location) []*calendar.Event {
	overrides := map[string][]ParsedEvent{}
	for _, ev := range events {
		if ev.RecurrenceID.Set() {
			overrides[ev.UID] = append(overrides[ev.UID], ev)
		}
	}

	seen := container.Set[string]{}
	var out []*calendar.Event
	add := func(ev ParsedEvent, start, end time.Time, id string) {
		if !seen.AddNew(id) {
			return
		}
		if e := makeEvent(ev, start, end, id, loc); overlaps(e, from, to) {
			out = append(out, e)
		}
	}

	for _, ev := range events {
		if ev.RecurrenceID.Set() {
			continue
		}
		if ev.RRule == "" {
			add(ev, ev.Start, ev.End, ev.UID)
			continue
		}
		starts, err := occurrences(ev, from, to)
		if err != nil {
			log.Error("couldn't expand recurrence", err, "uid", ev.UID, "rrule", ev.RRule)
			add(ev, ev.Start, ev.End, ev.UID)
			continue
		}
		dur := ev.End.Sub(ev.Start)
		for _, start := range starts {
			id := ev.UID + "/" + start.UTC().Format(time.RFC3339)
			if o, ok := findOverride(overrides[ev.UID], start); ok {
				add(o, o.Start, o.End, id)
				continue
			}
			add(ev, start, start.Add(dur), id)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func overlaps(e *calendar.Event, from, to time.Time) bool {
	if !e.Start.Before(to) {
		return false
	}
	if e.Start.Equal(e.End) {
		return !e.Start.Before(from)
	}
	return e.End.After(from)
}

func occurrences(ev ParsedEvent, from, to time.Time) ([]time.Time, error) {
	r, err := rrule.StrToRRule(ev.RRule)
	if err != nil {
		return nil, err
	}
	r.DTStart(ev.Start)
	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}
	// Occurrences that start before from may still overlap it. All-day occurrences are in UTC, so the window is widened
	// by a day on both ends; Expand filters the result.
	dur := ev.End.Sub(ev.Start)
	starts := set.Between(from.Add(-dur-24*time.Hour), to.Add(24*time.Hour), true)
	if len(starts) > MaxOccurrences {
		log.Error("truncating recurrence", errors.New("too many occurrences"), "uid", ev.UID, "cap", MaxOccurrences)
		starts = starts[:MaxOccurrences]
	}
	return starts, nil
}

func findOverride(overrides []ParsedEvent, start time.Time) (ParsedEvent, bool) {
	for _, o := range overrides {
		if rid, ok := o.RecurrenceID.Get(); ok && rid.Equal(start) {
			return o, true
		}
	}
	return ParsedEvent{}, false
}

func makeEvent(ev ParsedEvent, start, end time.Time, id string, loc *time.Location) *calendar.Event {
	e := &calendar.Event{
		ID:       id,
		Title:    container.NonEmpty(ev.Summary),
		Location: container.NonEmpty(ev.Location),
		AllDay:   ev.AllDay,
		Color:    ev.Color,
	}
	if ev.AllDay {
		// Dates don't move between zones.
		e.Start = calendar.DayOf(start).Start(loc)
		e.End = calendar.DayOf(end).Start(loc)
	} else {
		e.Start = start.In(loc)
		e.End = end.In(loc)
	}
	return e
}

// LoadFile parses the calendar at path and expands its events into [from, to).
func LoadFile(path string, from, to time.Time, loc *time.Location) ([]*calendar.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	parsed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	events := Expand(parsed, from, to, loc)
	log.Debug("loaded calendar", "path", path, "vevents", len(parsed), "events", len(events))
	return events, nil
}
