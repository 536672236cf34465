package weekview

import (
	"testing"

	"honnef.co/go/weekview/clip"
)

var testConfig = LayoutConfig{
	WidthPerDay:           100,
	ColumnGap:             2,
	EventMarginHorizontal: 8,
	EventPadding:          4,
	HeaderHeight:          60,
	HeaderRowPadding:      7,
	HeaderMarginBottom:    6,
	HeaderColumnWidth:     56,
	TimeLabelTextHeight:   12,
	VisibleDays:           3,
}

var testViewport = Viewport{Width: 360, Height: 640}

func TestTotalHeaderHeight(t *testing.T) {
	if got := testConfig.TotalHeaderHeight(); got != 80 {
		t.Errorf("TotalHeaderHeight()=%g, want 80", got)
	}
}

func TestVisibleTimed(t *testing.T) {
	// The bottom edge must be below 80 + 12/2 = 86.
	tests := []struct {
		name string
		r    clip.Rect
		want bool
	}{
		{"inside", clip.R(60, 100, 150, 200), true},
		{"bottom below header", clip.R(60, 90, 150, 85), false},
		{"bottom at threshold", clip.R(60, 20, 150, 86), false},
		{"bottom just past threshold", clip.R(60, 20, 150, 86.5), true},
		{"zero width", clip.R(100, 100, 100, 200), false},
		{"inverted", clip.R(150, 100, 60, 200), false},
		{"right of viewport", clip.R(360, 100, 400, 200), false},
		{"below viewport", clip.R(60, 640, 150, 700), false},
		{"behind time column", clip.R(0, 100, 56, 200), false},
		{"peeking past time column", clip.R(0, 100, 57, 200), true},
	}
	for _, tt := range tests {
		if got := VisibleTimed(tt.r, testConfig, testViewport); got != tt.want {
			t.Errorf("%s: VisibleTimed(%v)=%t, want %t", tt.name, tt.r, got, tt.want)
		}
	}
}

func TestVisibleAllDay(t *testing.T) {
	tests := []struct {
		name string
		r    clip.Rect
		want bool
	}{
		{"in header row", clip.R(60, 10, 150, 30), true},
		{"bottom at zero", clip.R(60, -20, 150, 0), false},
		{"bottom just on screen", clip.R(60, -20, 150, 1), true},
		{"inverted", clip.R(150, 10, 60, 30), false},
		{"right of viewport", clip.R(361, 10, 400, 30), false},
		{"below viewport", clip.R(60, 641, 150, 700), false},
		{"behind time column", clip.R(10, 10, 50, 30), false},
	}
	for _, tt := range tests {
		if got := VisibleAllDay(tt.r, testConfig, testViewport); got != tt.want {
			t.Errorf("%s: VisibleAllDay(%v)=%t, want %t", tt.name, tt.r, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := testConfig.Validate(); err != nil {
		t.Errorf("Validate()=%s, want nil", err)
	}
	bad := testConfig
	bad.WidthPerDay = -1
	bad.VisibleDays = 0
	if err := bad.Validate(); err == nil {
		t.Errorf("Validate() of invalid config succeeded")
	}
}
