package weekview

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/weekview/clip"
)

// ErrMalformedMeasurement is returned when a Measurer reports dimensions that no text layout can have. It indicates a
// misconfigured measurer, not a transient condition.
var ErrMalformedMeasurement = errors.New("malformed text measurement")

// Metrics describe a laid out block of text.
type Metrics struct {
	Height float32
	Lines  int
}

// LineHeight is the height of a single line of the layout.
func (m Metrics) LineHeight() float32 {
	return m.Height / float32(m.Lines)
}

func (m Metrics) validate() error {
	h := float64(m.Height)
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 || m.Lines < 1 {
		return fmt.Errorf("%w: height %g, %d lines", ErrMalformedMeasurement, m.Height, m.Lines)
	}
	return nil
}

// A Measurer lays out text in a fixed width.
type Measurer interface {
	// Layout wraps the label to maxWidth and reports the resulting height and number of lines.
	Layout(l Label, maxWidth float32) (Metrics, error)
	// TruncateToArea shortens the label so that it fits into a single line maxArea pixels wide, ending it with
	// Ellipsis. Labels that already fit are returned unchanged.
	TruncateToArea(l Label, maxWidth, maxArea float32) Label
}

type fittedText struct {
	// lineHeight is the height of one line of the full label.
	lineHeight float32
	// label is the label to draw, possibly truncated.
	label Label
	// iterations is the number of truncation attempts.
	iterations int
}

// FitAllDayText returns the height of a single line of the label built from an event's title and location, laid out
// inside rect minus padding on every side. Callers use it to size all-day chips.
//
// If the label would take up more lines than fit into the available height, it is truncated with an ellipsis; the
// truncation doesn't affect the returned height. Rectangles with no room for text yield 0 without consulting the
// measurer.
func FitAllDayText(rect clip.Rect, padding float32, label Label, m Measurer) (float32, error) {
	fit, err := fitText(rect, padding, label, m)
	return fit.lineHeight, err
}

func fitText(rect clip.Rect, padding float32, label Label, m Measurer) (fittedText, error) {
	availableWidth := rect.Width() - padding*2
	availableHeight := rect.Height() - padding*2
	if availableWidth <= 0 || availableHeight <= 0 {
		return fittedText{}, nil
	}

	full, err := m.Layout(label, availableWidth)
	if err != nil {
		return fittedText{}, err
	}
	if err := full.validate(); err != nil {
		return fittedText{}, err
	}
	lineHeight := full.LineHeight()
	fit := fittedText{lineHeight: lineHeight, label: label}

	if lineHeight <= 0 || availableHeight < lineHeight {
		// Not even one line fits; the chip will clip the text.
		return fit, nil
	}
	if full.Height <= availableHeight {
		return fit, nil
	}

	// Each attempt truncates the original label, never the previous attempt's result. The loop is bounded by the
	// initial line budget even if the measurer's heights don't shrink along with the area.
	maxLines := int(availableHeight / lineHeight)
	for lines := maxLines; lines > 0; lines-- {
		fit.iterations++
		area := float32(lines) * availableWidth
		fit.label = m.TruncateToArea(label, availableWidth, area)
		got, err := m.Layout(fit.label, availableWidth)
		if err != nil {
			return fittedText{}, err
		}
		if err := got.validate(); err != nil {
			return fittedText{}, err
		}
		if got.Height <= availableHeight {
			break
		}
	}
	return fit, nil
}
