package clip

import (
	"fmt"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Rect is an axis-aligned rectangle in pixels, described by its four edges. Nothing forces Left < Right or Top <
// Bottom; rectangles produced by geometry calculations have to be validated before use.
type Rect struct {
	Left, Top, Right, Bottom float32
}

func R(left, top, right, bottom float32) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%g %g %g %g}", r.Left, r.Top, r.Right, r.Bottom)
}

func (r Rect) Width() float32  { return r.Right - r.Left }
func (r Rect) Height() float32 { return r.Bottom - r.Top }

func (r Rect) Min() f32.Point { return f32.Pt(r.Left, r.Top) }
func (r Rect) Max() f32.Point { return f32.Pt(r.Right, r.Bottom) }

// Inset shrinks the rectangle by d on all sides.
func (r Rect) Inset(d float32) Rect {
	return Rect{r.Left + d, r.Top + d, r.Right - d, r.Bottom - d}
}

// Contains reports whether p lies in the half-open rectangle [Left, Right) x [Top, Bottom).
func (r Rect) Contains(p f32.Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Finite reports whether all edges are finite numbers.
func (r Rect) Finite() bool {
	for _, v := range [4]float32{r.Left, r.Top, r.Right, r.Bottom} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (r Rect) Path(ops *op.Ops) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	r.IntoPath(&p)
	return p.End()
}

func (r Rect) IntoPath(p *clip.Path) {
	p.MoveTo(r.Min())
	p.LineTo(f32.Pt(r.Right, r.Top))
	p.LineTo(r.Max())
	p.LineTo(f32.Pt(r.Left, r.Bottom))
	p.LineTo(r.Min())
}

func (r Rect) IntoPathR(p *clip.Path) {
	p.MoveTo(r.Min())
	p.LineTo(f32.Pt(r.Left, r.Bottom))
	p.LineTo(r.Max())
	p.LineTo(f32.Pt(r.Right, r.Top))
	p.LineTo(r.Min())
}

func (r Rect) Op(ops *op.Ops) clip.Op {
	return clip.Outline{Path: r.Path(ops)}.Op()
}

// RectangularOutline is the border of Rect, Width pixels wide, drawn on the inside of the rectangle.
type RectangularOutline struct {
	Rect  Rect
	Width float32
}

func (out RectangularOutline) Op(ops *op.Ops) clip.Op {
	var p clip.Path
	p.Begin(ops)
	out.Rect.IntoPath(&p)
	out.Rect.Inset(out.Width).IntoPathR(&p)
	p.Close()

	return clip.Outline{Path: p.End()}.Op()
}
