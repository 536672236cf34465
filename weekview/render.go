package weekview

import (
	"errors"
	"fmt"
	"image/color"

	"honnef.co/go/weekview/calendar"
	"honnef.co/go/weekview/clip"
	mycolor "honnef.co/go/weekview/color"
)

// ErrMalformedGeometry is returned when a Geometry produces rectangles with non-finite edges.
var ErrMalformedGeometry = errors.New("malformed chip geometry")

// DefaultEventColor is used for events that don't specify a color.
var DefaultEventColor = mycolor.MustParseHex("#9fc6e7")

// Geometry maps chips to candidate rectangles. It owns the mapping from time to pixels as well as the arrangement of
// overlapping chips; the renderer treats it as opaque.
type Geometry interface {
	CandidateTimed(chip *calendar.Chip, startPixel float32) clip.Rect
	CandidateAllDay(chip *calendar.Chip, startPixel float32) clip.Rect
}

// ChipStyle describes how a chip is painted.
type ChipStyle struct {
	Background color.NRGBA
	Border     color.NRGBA
	Text       color.NRGBA
	AllDay     bool
}

// Canvas is the draw surface. Calls are issued in paint order.
type Canvas interface {
	FillRect(r clip.Rect, style ChipStyle)
	DrawText(l Label, r clip.Rect, style ChipStyle)
}

type Renderer struct {
	Config   LayoutConfig
	Geometry Geometry
	Measurer Measurer
	// Style, if set, picks the style for a chip. Otherwise DefaultStyle is used.
	Style func(chip *calendar.Chip) ChipStyle
}

// DefaultStyle paints chips in their event's color, or DefaultEventColor.
func DefaultStyle(chip *calendar.Chip) ChipStyle {
	bg := chip.Event.Color.GetOr(DefaultEventColor)
	return ChipStyle{
		Background: bg,
		Border:     mycolor.Darken(bg, 0.15),
		Text:       mycolor.TextOn(bg),
		AllDay:     chip.Event.AllDay,
	}
}

// Render draws timed chips and then all-day chips, which live in the header and are painted on top, and returns the
// combined frame.
func (r *Renderer) Render(cv Canvas, timed, allDay []*calendar.Chip, ctx RenderContext, vp Viewport) (*Frame, error) {
	f, err := r.RenderTimed(cv, timed, ctx, vp)
	if err != nil {
		return nil, err
	}
	fa, err := r.RenderAllDay(cv, allDay, ctx, vp)
	if err != nil {
		return nil, err
	}
	f.Merge(fa)
	return f, nil
}

// RenderTimed draws the timed chips of every day in ctx.
func (r *Renderer) RenderTimed(cv Canvas, chips []*calendar.Chip, ctx RenderContext, vp Viewport) (*Frame, error) {
	f := NewFrame()
	err := r.forEachDay(chips, ctx, func(chip *calendar.Chip, startPixel float32) error {
		rect := r.Geometry.CandidateTimed(chip, startPixel)
		if !rect.Finite() {
			return fmt.Errorf("%w: timed chip %s at %v", ErrMalformedGeometry, chip.Key(), rect)
		}
		if !VisibleTimed(rect, r.Config, vp) {
			f.cull(chip)
			return nil
		}
		fit, err := fitText(rect, r.Config.EventPadding, NewLabel(chip.Event.Title, chip.Event.Location), r.Measurer)
		if err != nil {
			return fmt.Errorf("fitting text of chip %s: %w", chip.Key(), err)
		}
		f.place(chip, rect, fit.label)
		r.draw(cv, chip, rect, fit.label)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// RenderAllDay draws the all-day chips of every day in ctx. Each chip's height is reduced to a single line of its
// label plus padding.
func (r *Renderer) RenderAllDay(cv Canvas, chips []*calendar.Chip, ctx RenderContext, vp Viewport) (*Frame, error) {
	f := NewFrame()
	err := r.forEachDay(chips, ctx, func(chip *calendar.Chip, startPixel float32) error {
		rect := r.Geometry.CandidateAllDay(chip, startPixel)
		if !rect.Finite() {
			return fmt.Errorf("%w: all-day chip %s at %v", ErrMalformedGeometry, chip.Key(), rect)
		}
		if !VisibleAllDay(rect, r.Config, vp) {
			f.cull(chip)
			return nil
		}
		fit, err := fitText(rect, r.Config.EventPadding, NewLabel(chip.Event.Title, chip.Event.Location), r.Measurer)
		if err != nil {
			return fmt.Errorf("fitting text of chip %s: %w", chip.Key(), err)
		}
		rect.Bottom = rect.Top + fit.lineHeight + r.Config.EventPadding*2
		f.place(chip, rect, fit.label)
		r.draw(cv, chip, rect, fit.label)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// forEachDay walks the days of ctx, advancing a horizontal cursor by one column per day, and calls fn for every chip
// on each day. The cursor advances the same amount no matter how many chips a day has.
func (r *Renderer) forEachDay(chips []*calendar.Chip, ctx RenderContext, fn func(chip *calendar.Chip, startPixel float32) error) error {
	cursor := ctx.StartPixel
	for _, day := range ctx.Days {
		if r.Config.SingleDay() {
			// Only a single day has room for a margin.
			cursor += r.Config.EventMarginHorizontal
		}
		for _, chip := range chips {
			if !chip.OnDay(day) {
				continue
			}
			if err := fn(chip, cursor); err != nil {
				return err
			}
		}
		cursor += r.Config.DayStride()
	}
	return nil
}

func (r *Renderer) draw(cv Canvas, chip *calendar.Chip, rect clip.Rect, l Label) {
	style := DefaultStyle
	if r.Style != nil {
		style = r.Style
	}
	s := style(chip)
	cv.FillRect(rect, s)
	if !l.Empty() {
		cv.DrawText(l, rect.Inset(r.Config.EventPadding), s)
	}
}
