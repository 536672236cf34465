package gioview

import (
	"image"

	"honnef.co/go/weekview/clip"
	"honnef.co/go/weekview/weekview"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/x/styledtext"
)

// Canvas records chips into a layout context's ops. It implements weekview.Canvas.
type Canvas struct {
	Gtx   layout.Context
	Theme *Theme
}

func (cv *Canvas) FillRect(r clip.Rect, style weekview.ChipStyle) {
	ops := cv.Gtx.Ops
	paint.FillShape(ops, style.Background, r.Op(ops))
	if w := float32(cv.Gtx.Dp(cv.Theme.ChipBorder)); w > 0 && r.Width() > 2*w && r.Height() > 2*w {
		paint.FillShape(ops, style.Border, clip.RectangularOutline{Rect: r, Width: w}.Op(ops))
	}
}

// DrawText draws the label wrapped to r and clipped to it. The title is drawn in bold.
func (cv *Canvas) DrawText(l weekview.Label, r clip.Rect, style weekview.ChipStyle) {
	gtx := cv.Gtx
	defer r.Op(gtx.Ops).Push(gtx.Ops).Pop()
	defer op.Offset(image.Pt(int(r.Left), int(r.Top))).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Constraints{Max: image.Pt(int(r.Width()), int(r.Height()))}

	bold := cv.Theme.Font
	bold.Weight = font.Bold
	spans := make([]styledtext.SpanStyle, 0, 2)
	if title := l.Title(); title != "" {
		spans = append(spans, styledtext.SpanStyle{
			Font:    bold,
			Size:    cv.Theme.EventTextSize,
			Color:   style.Text,
			Content: title,
		})
	}
	if rest := l.Rest(); rest != "" {
		spans = append(spans, styledtext.SpanStyle{
			Font:    cv.Theme.Font,
			Size:    cv.Theme.EventTextSize,
			Color:   style.Text,
			Content: rest,
		})
	}
	styledtext.Text(cv.Theme.Shaper, spans...).Layout(gtx, func(layout.Context, int, layout.Dimensions) {})
}
