package weekview

import (
	"math"
	"unicode/utf8"

	"honnef.co/go/weekview/calendar"
	"honnef.co/go/weekview/clip"
)

// monoMeasurer lays out text in a monospaced font, breaking lines at any rune.
type monoMeasurer struct {
	charWidth  float32
	lineHeight float32

	layouts   int
	truncates int
	// truncatedHeight, if non-zero, is reported for every truncated label regardless of its length.
	truncatedHeight float32
}

func (m *monoMeasurer) Layout(l Label, maxWidth float32) (Metrics, error) {
	m.layouts++
	if m.truncatedHeight != 0 && len(l.Text) >= len(Ellipsis) && l.Text[len(l.Text)-len(Ellipsis):] == Ellipsis {
		return Metrics{Height: m.truncatedHeight, Lines: int(m.truncatedHeight / m.lineHeight)}, nil
	}
	perLine := int(maxWidth / m.charWidth)
	if perLine < 1 {
		perLine = 1
	}
	n := utf8.RuneCountInString(l.Text)
	lines := int(math.Ceil(float64(n) / float64(perLine)))
	if lines < 1 {
		lines = 1
	}
	return Metrics{Height: float32(lines) * m.lineHeight, Lines: lines}, nil
}

func (m *monoMeasurer) TruncateToArea(l Label, maxWidth, maxArea float32) Label {
	m.truncates++
	n := utf8.RuneCountInString(l.Text)
	if float32(n)*m.charWidth <= maxArea {
		return l
	}
	return l.Cut(int(maxArea/m.charWidth)-1, Ellipsis)
}

type fakeGeometry struct {
	timed  func(chip *calendar.Chip, startPixel float32) clip.Rect
	allDay func(chip *calendar.Chip, startPixel float32) clip.Rect
	starts []float32
}

func (g *fakeGeometry) CandidateTimed(chip *calendar.Chip, startPixel float32) clip.Rect {
	g.starts = append(g.starts, startPixel)
	return g.timed(chip, startPixel)
}

func (g *fakeGeometry) CandidateAllDay(chip *calendar.Chip, startPixel float32) clip.Rect {
	g.starts = append(g.starts, startPixel)
	return g.allDay(chip, startPixel)
}

type drawCall struct {
	op    string
	rect  clip.Rect
	label Label
}

type recordingCanvas struct {
	calls []drawCall
}

func (cv *recordingCanvas) FillRect(r clip.Rect, style ChipStyle) {
	cv.calls = append(cv.calls, drawCall{op: "fill", rect: r})
}

func (cv *recordingCanvas) DrawText(l Label, r clip.Rect, style ChipStyle) {
	cv.calls = append(cv.calls, drawCall{op: "text", rect: r, label: l})
}
