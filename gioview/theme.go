package gioview

import (
	"image/color"

	"honnef.co/go/weekview/weekview"

	"gioui.org/font"
	"gioui.org/text"
	"gioui.org/unit"
)

type Theme struct {
	Shaper  *text.Shaper
	Palette Palette
	Font    font.Font

	// TextSize is used for the header and the time column.
	TextSize unit.Sp
	// EventTextSize is used for chip labels.
	EventTextSize unit.Sp
	// ChipBorder is the width of the border drawn around chips.
	ChipBorder unit.Dp
}

type Palette struct {
	Background       color.NRGBA
	Foreground       color.NRGBA
	HeaderBackground color.NRGBA
	// TimeColumnBackground is the background of the column holding hour labels.
	TimeColumnBackground color.NRGBA
	DayBackground        color.NRGBA
	TodayBackground      color.NRGBA
	PastBackground       color.NRGBA
	HourSeparator        color.NRGBA
	DaySeparator         color.NRGBA
	NowLine              color.NRGBA
	TodayHeaderText      color.NRGBA
	DefaultEvent         color.NRGBA
}

var DefaultPalette = Palette{
	Background:           rgba(0xFFFFFFFF),
	Foreground:           rgba(0x000000FF),
	HeaderBackground:     rgba(0xFFFFFFFF),
	TimeColumnBackground: rgba(0xFFFFFFFF),
	DayBackground:        rgba(0xFEFEFEFF),
	TodayBackground:      rgba(0xE8F4FEFF),
	PastBackground:       rgba(0xF4F4F4FF),
	HourSeparator:        rgba(0xE6E6E6FF),
	DaySeparator:         rgba(0xE6E6E6FF),
	NowLine:              rgba(0xD93025FF),
	TodayHeaderText:      rgba(0x27885EFF),
	DefaultEvent:         weekview.DefaultEventColor,
}

func NewTheme(fontCollection []font.FontFace) *Theme {
	return &Theme{
		Palette:       DefaultPalette,
		Shaper:        text.NewShaper(fontCollection),
		TextSize:      12,
		EventTextSize: 12,
		ChipBorder:    1,
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(c & 0xFF),
		B: uint8(c >> 8 & 0xFF),
		G: uint8(c >> 16 & 0xFF),
		R: uint8(c >> 24 & 0xFF),
	}
}
