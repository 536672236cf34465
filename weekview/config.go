// Package weekview lays out and draws event chips for a horizontally paged week or day view.
//
// Every render pass is a pure function of the chips, the render context, the viewport and the layout configuration.
// The only result that outlives a pass is the returned Frame, which records where each chip was drawn, or that it was
// culled.
package weekview

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/weekview/calendar"
)

// LayoutConfig is fixed for a session, or at least for many frames. All values are in pixels.
type LayoutConfig struct {
	WidthPerDay float32
	ColumnGap   float32
	// EventMarginHorizontal is added before each day's chips, but only when a single day is shown.
	EventMarginHorizontal float32
	EventPadding          float32

	HeaderHeight        float32
	HeaderRowPadding    float32
	HeaderMarginBottom  float32
	HeaderColumnWidth   float32
	TimeLabelTextHeight float32

	// VisibleDays is the number of day columns the view is configured to show.
	VisibleDays int
}

func (cfg LayoutConfig) SingleDay() bool {
	return cfg.VisibleDays == 1
}

// TotalHeaderHeight is the height of the header row including its padding and bottom margin.
func (cfg LayoutConfig) TotalHeaderHeight() float32 {
	return cfg.HeaderHeight + cfg.HeaderRowPadding*2 + cfg.HeaderMarginBottom
}

// DayStride is the distance between the left edges of two neighbouring day columns.
func (cfg LayoutConfig) DayStride() float32 {
	return cfg.WidthPerDay + cfg.ColumnGap
}

func (cfg LayoutConfig) Validate() error {
	fields := []struct {
		name string
		v    float32
	}{
		{"width per day", cfg.WidthPerDay},
		{"column gap", cfg.ColumnGap},
		{"event margin", cfg.EventMarginHorizontal},
		{"event padding", cfg.EventPadding},
		{"header height", cfg.HeaderHeight},
		{"header row padding", cfg.HeaderRowPadding},
		{"header margin", cfg.HeaderMarginBottom},
		{"header column width", cfg.HeaderColumnWidth},
		{"time label height", cfg.TimeLabelTextHeight},
	}
	var errs []error
	for _, f := range fields {
		if math.IsNaN(float64(f.v)) || math.IsInf(float64(f.v), 0) || f.v < 0 {
			errs = append(errs, fmt.Errorf("invalid %s: %g", f.name, f.v))
		}
	}
	if cfg.VisibleDays < 1 {
		errs = append(errs, fmt.Errorf("invalid number of visible days: %d", cfg.VisibleDays))
	}
	return errors.Join(errs...)
}

// Viewport is the size of the drawable area.
type Viewport struct {
	Width  float32
	Height float32
}

// RenderContext holds the per-frame inputs.
type RenderContext struct {
	// Days are the days currently scrolled into view, in display order.
	Days []calendar.Day
	// StartPixel is the horizontal offset of the first day's column.
	StartPixel float32
}
