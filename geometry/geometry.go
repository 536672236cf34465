// Package geometry maps chips to candidate pixel rectangles and arranges overlapping chips into columns.
package geometry

import (
	"time"

	"golang.org/x/exp/slices"

	"honnef.co/go/weekview/calendar"
	"honnef.co/go/weekview/clip"
)

// Calculator computes candidate rectangles for chips. It implements weekview.Geometry.
type Calculator struct {
	WidthPerDay float32
	HourHeight  float32
	// OriginY is the vertical scroll offset of the time grid. It is zero when midnight is at the top and negative
	// when scrolled down.
	OriginY float32
	// GridTop is where midnight is drawn when OriginY is zero, below the header.
	GridTop float32

	EventMarginVertical float32
	OverlappingEventGap float32

	AllDayTop    float32
	AllDayHeight float32
}

func (c *Calculator) minuteToY(minute float32) float32 {
	return c.HourHeight*minute/60 + c.OriginY + c.GridTop
}

func (c *Calculator) horizontal(chip *calendar.Chip, startPixel float32) (left, right float32) {
	left = startPixel + chip.Left*c.WidthPerDay
	right = left + chip.Width*c.WidthPerDay
	// Leave a gap between chips sharing a column, but not at the column's edges.
	if left > startPixel {
		left += c.OverlappingEventGap / 2
	}
	if right < startPixel+c.WidthPerDay {
		right -= c.OverlappingEventGap / 2
	}
	return left, right
}

func (c *Calculator) CandidateTimed(chip *calendar.Chip, startPixel float32) clip.Rect {
	left, right := c.horizontal(chip, startPixel)
	return clip.Rect{
		Left:   left,
		Top:    c.minuteToY(chip.StartMinute()) + c.EventMarginVertical,
		Right:  right,
		Bottom: c.minuteToY(chip.EndMinute()) - c.EventMarginVertical,
	}
}

func (c *Calculator) CandidateAllDay(chip *calendar.Chip, startPixel float32) clip.Rect {
	left, right := c.horizontal(chip, startPixel)
	return clip.Rect{
		Left:   left,
		Top:    c.AllDayTop,
		Right:  right,
		Bottom: c.AllDayTop + c.AllDayHeight,
	}
}

// Arrange places chips that overlap in time side by side, splitting their day column into equal parts. It sets the
// Left and Width of every chip. The order of chips is not changed.
func Arrange(chips []*calendar.Chip) {
	byDay := map[calendar.Day][]*calendar.Chip{}
	for _, c := range chips {
		byDay[c.Day] = append(byDay[c.Day], c)
	}
	for _, day := range byDay {
		arrangeDay(day)
	}
}

func arrangeDay(chips []*calendar.Chip) {
	slices.SortStableFunc(chips, func(a, b *calendar.Chip) int {
		if n := a.Start.Compare(b.Start); n != 0 {
			return n
		}
		return b.End.Compare(a.End)
	})

	var group []*calendar.Chip
	var groupEnd time.Time
	for _, c := range chips {
		if len(group) > 0 && !c.Start.Before(groupEnd) {
			arrangeGroup(group)
			group = group[:0]
		}
		if len(group) == 0 || c.End.After(groupEnd) {
			groupEnd = c.End
		}
		group = append(group, c)
	}
	if len(group) > 0 {
		arrangeGroup(group)
	}
}

// arrangeGroup assigns columns to a group of transitively overlapping chips, which are sorted by start time.
func arrangeGroup(group []*calendar.Chip) {
	var columns [][]*calendar.Chip
	col := make([]int, len(group))
	for i, c := range group {
		placed := false
		for j, column := range columns {
			if last := column[len(column)-1]; !c.Start.Before(last.End) {
				columns[j] = append(column, c)
				col[i] = j
				placed = true
				break
			}
		}
		if !placed {
			col[i] = len(columns)
			columns = append(columns, []*calendar.Chip{c})
		}
	}
	n := float32(len(columns))
	for i, c := range group {
		c.Left = float32(col[i]) / n
		c.Width = 1 / n
	}
}
