package weekview

import (
	"gioui.org/f32"

	"honnef.co/go/weekview/calendar"
	"honnef.co/go/weekview/clip"
	"honnef.co/go/weekview/container"
)

// Placement is a chip that was drawn, and where.
type Placement struct {
	Chip  *calendar.Chip
	Rect  clip.Rect
	Label Label
}

// Frame is the result of a render pass: for every chip that was considered, either the rectangle it was drawn in, or
// None if it was culled. Hit testing between frames uses the Frame instead of state stored on chips.
type Frame struct {
	rects map[calendar.ChipKey]container.Option[clip.Rect]
	drawn []Placement
}

func NewFrame() *Frame {
	return &Frame{rects: map[calendar.ChipKey]container.Option[clip.Rect]{}}
}

func (f *Frame) place(chip *calendar.Chip, r clip.Rect, l Label) {
	f.rects[chip.Key()] = container.Some(r)
	f.drawn = append(f.drawn, Placement{Chip: chip, Rect: r, Label: l})
}

func (f *Frame) cull(chip *calendar.Chip) {
	f.rects[chip.Key()] = container.None[clip.Rect]()
}

// Rect returns the rectangle the chip was drawn in. Culled chips and chips that weren't part of the pass yield None.
func (f *Frame) Rect(key calendar.ChipKey) container.Option[clip.Rect] {
	if f == nil {
		return container.None[clip.Rect]()
	}
	return f.rects[key]
}

// Considered reports whether the chip was part of the render pass, visible or not.
func (f *Frame) Considered(key calendar.ChipKey) bool {
	if f == nil {
		return false
	}
	_, ok := f.rects[key]
	return ok
}

// Drawn returns the drawn chips in paint order.
func (f *Frame) Drawn() []Placement {
	if f == nil {
		return nil
	}
	return f.drawn
}

// HitTest returns the topmost chip containing p, which is the one drawn last.
func (f *Frame) HitTest(p f32.Point) (*calendar.Chip, bool) {
	if f == nil {
		return nil, false
	}
	for i := len(f.drawn) - 1; i >= 0; i-- {
		if f.drawn[i].Rect.Contains(p) {
			return f.drawn[i].Chip, true
		}
	}
	return nil, false
}

// Merge appends the results of o, which was drawn after f.
func (f *Frame) Merge(o *Frame) {
	for k, v := range o.rects {
		f.rects[k] = v
	}
	f.drawn = append(f.drawn, o.drawn...)
}
