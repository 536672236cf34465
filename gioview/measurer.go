// Package gioview draws a week view with Gio.
package gioview

import (
	"fmt"
	"strings"

	"honnef.co/go/weekview/weekview"

	"gioui.org/font"
	"gioui.org/text"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/math/fixed"
)

const measureCacheSize = 1024

type layoutKey struct {
	text     string
	maxWidth int
	font     font.Font
	size     fixed.Int26_6
}

type truncateKey struct {
	text    string
	maxArea int
	font    font.Font
	size    fixed.Int26_6
}

// Measurer measures chip labels with a text.Shaper. Labels are measured entirely in the bold face, which is never
// narrower than the regular face used for locations, so a label that fits here fits when drawn.
//
// Results are cached per label, width, font and text size. Measurer must only be used from the goroutine that owns the
// shaper.
type Measurer struct {
	Shaper *text.Shaper
	Font   font.Font
	// PxPerEm is the text size in pixels. Callers update it when the window's metric changes.
	PxPerEm fixed.Int26_6

	layouts   *lru.Cache[layoutKey, weekview.Metrics]
	truncates *lru.Cache[truncateKey, int]
}

func NewMeasurer(shaper *text.Shaper, f font.Font, pxPerEm fixed.Int26_6) *Measurer {
	layouts, err := lru.New[layoutKey, weekview.Metrics](measureCacheSize)
	if err != nil {
		panic(err)
	}
	truncates, err := lru.New[truncateKey, int](measureCacheSize)
	if err != nil {
		panic(err)
	}
	return &Measurer{
		Shaper:    shaper,
		Font:      f,
		PxPerEm:   pxPerEm,
		layouts:   layouts,
		truncates: truncates,
	}
}

func (m *Measurer) font() font.Font {
	f := m.Font
	f.Weight = font.Bold
	return f
}

// Layout implements weekview.Measurer.
func (m *Measurer) Layout(l weekview.Label, maxWidth float32) (weekview.Metrics, error) {
	key := layoutKey{l.Text, int(maxWidth), m.font(), m.PxPerEm}
	if metrics, ok := m.layouts.Get(key); ok {
		return metrics, nil
	}

	txt := l.Text
	if txt == "" {
		// An empty label still occupies one line.
		txt = " "
	}
	m.Shaper.LayoutString(text.Parameters{
		Font:     key.font,
		PxPerEm:  m.PxPerEm,
		MaxWidth: key.maxWidth,
	}, txt)

	var (
		lines       int
		top, bottom int
		first       = true
	)
	for g, ok := m.Shaper.NextGlyph(); ok; g, ok = m.Shaper.NextGlyph() {
		if first {
			top = int(g.Y) - g.Ascent.Ceil()
			bottom = int(g.Y) + g.Descent.Ceil()
			first = false
		}
		if b := int(g.Y) + g.Descent.Ceil(); b > bottom {
			bottom = b
		}
		if g.Flags&text.FlagLineBreak != 0 {
			lines++
		}
	}
	if first {
		return weekview.Metrics{}, fmt.Errorf("%w: shaper produced no glyphs for %q", weekview.ErrMalformedMeasurement, l.Text)
	}
	if lines == 0 {
		lines = 1
	}

	metrics := weekview.Metrics{Height: float32(bottom - top), Lines: lines}
	m.layouts.Add(key, metrics)
	return metrics, nil
}

// TruncateToArea implements weekview.Measurer. The label is laid out as a single line maxArea pixels wide and cut
// where the shaper placed the truncator.
func (m *Measurer) TruncateToArea(l weekview.Label, maxWidth, maxArea float32) weekview.Label {
	key := truncateKey{l.Text, int(maxArea), m.font(), m.PxPerEm}
	kept, ok := m.truncates.Get(key)
	if !ok {
		kept = m.truncate(l.Text, key.maxArea)
		m.truncates.Add(key, kept)
	}
	if kept < 0 {
		return l
	}
	return l.Cut(kept, weekview.Ellipsis)
}

// truncate returns the number of runes that fit in front of the ellipsis, or -1 if the text fits as is.
func (m *Measurer) truncate(s string, maxArea int) int {
	// Line breaks would end the only line early. Replacing them preserves rune offsets.
	s = strings.ReplaceAll(s, "\n", " ")
	m.Shaper.LayoutString(text.Parameters{
		Font:       m.font(),
		PxPerEm:    m.PxPerEm,
		MaxWidth:   maxArea,
		MaxLines:   1,
		Truncator:  weekview.Ellipsis,
		WrapPolicy: text.WrapGraphemes,
	}, s)

	kept := 0
	truncated := false
	for g, ok := m.Shaper.NextGlyph(); ok; g, ok = m.Shaper.NextGlyph() {
		if g.Flags&text.FlagTruncator != 0 {
			truncated = true
			continue
		}
		kept += int(g.Runes)
	}
	if !truncated {
		return -1
	}
	return kept
}
