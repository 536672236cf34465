package gioview

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"golang.org/x/image/math/fixed"
)

func colorTextMaterial(gtx layout.Context, c color.NRGBA) op.CallOp {
	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	return m.Stop()
}

// lineSize returns the logical size of s laid out as a single line.
func lineSize(shaper *text.Shaper, f font.Font, pxPerEm fixed.Int26_6, s string) image.Point {
	shaper.LayoutString(text.Parameters{
		Font:     f,
		PxPerEm:  pxPerEm,
		MaxLines: 1,
		MaxWidth: 1e6,
	}, s)
	var width, ascent, descent fixed.Int26_6
	for g, ok := shaper.NextGlyph(); ok; g, ok = shaper.NextGlyph() {
		width += g.Advance
		ascent = max(ascent, g.Ascent)
		descent = max(descent, g.Descent)
	}
	return image.Pt(width.Ceil(), (ascent + descent).Ceil())
}

// drawLine draws a single line of text with its top left corner at pt.
func drawLine(gtx layout.Context, th *Theme, f font.Font, size unit.Sp, c color.NRGBA, pt image.Point, s string) layout.Dimensions {
	defer op.Offset(pt).Push(gtx.Ops).Pop()
	gtx.Constraints.Min = image.Point{}
	return widget.Label{MaxLines: 1}.Layout(gtx, th.Shaper, f, size, s, colorTextMaterial(gtx, c))
}
