package gioview

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"honnef.co/go/weekview/calendar"
	"honnef.co/go/weekview/clip"
	mycolor "honnef.co/go/weekview/color"
	"honnef.co/go/weekview/container"
	"honnef.co/go/weekview/geometry"
	"honnef.co/go/weekview/weekview"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	gioclip "gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"golang.org/x/image/math/fixed"
)

// Config holds the sizes of a week view in device independent units.
type Config struct {
	VisibleDays int

	HourHeight            unit.Dp
	ColumnGap             unit.Dp
	EventMarginHorizontal unit.Dp
	EventMarginVertical   unit.Dp
	EventPadding          unit.Dp
	OverlappingEventGap   unit.Dp
	HeaderRowPadding      unit.Dp
	HeaderColumnPadding   unit.Dp
	AllDayRowHeight       unit.Dp
}

func DefaultConfig() Config {
	return Config{
		VisibleDays:           3,
		HourHeight:            50,
		ColumnGap:             10,
		EventMarginHorizontal: 0,
		EventMarginVertical:   1,
		EventPadding:          4,
		OverlappingEventGap:   2,
		HeaderRowPadding:      10,
		HeaderColumnPadding:   10,
		AllDayRowHeight:       24,
	}
}

// dragSlop is how far the pointer may move before a press stops being a click.
const dragSlop unit.Dp = 4

// WeekView is a horizontally paged view of days with a vertically scrolling time grid.
type WeekView struct {
	Theme    *Theme
	Config   Config
	Location *time.Location

	// first is the day at the left edge when offsetX is zero.
	first   calendar.Day
	offsetX float32
	originY float32
	// scrollTo is an hour to scroll to once the hour height is known.
	scrollTo container.Option[float32]

	drag struct {
		active  bool
		moved   bool
		start   f32.Point
		offsetX float32
		originY float32
	}

	// Values from the last frame, used to interpret input.
	stride     float32
	hourHeight float32

	measurer *Measurer
	frame    *weekview.Frame
	clicked  []*calendar.Chip
}

func NewWeekView(th *Theme, cfg Config, first calendar.Day, loc *time.Location) *WeekView {
	return &WeekView{
		Theme:    th,
		Config:   cfg,
		Location: loc,
		first:    first,
	}
}

// GoTo scrolls the view so that day is the leftmost day.
func (wv *WeekView) GoTo(day calendar.Day) {
	wv.first = day
	wv.offsetX = 0
}

// ScrollToHour scrolls the time grid so that hour is at the top. It takes effect in the next call to Layout, which
// may be the first one.
func (wv *WeekView) ScrollToHour(hour float32) {
	wv.scrollTo = container.Some(hour)
}

func (wv *WeekView) applyScroll(m metrics) {
	if hour, ok := wv.scrollTo.Get(); ok {
		wv.originY = -hour * wv.hourHeight
		wv.scrollTo = container.None[float32]()
	}
	wv.clampOriginY(m)
}

// Clicked returns the chips that have been clicked since the last call.
func (wv *WeekView) Clicked() []*calendar.Chip {
	c := wv.clicked
	wv.clicked = nil
	return c
}

// Frame returns where chips were drawn in the most recent frame.
func (wv *WeekView) Frame() *weekview.Frame {
	return wv.frame
}

// metrics are the pixel sizes of one frame.
type metrics struct {
	cfg      weekview.LayoutConfig
	vp       weekview.Viewport
	gridTop  float32
	timeText image.Point
	header   image.Point
}

func (wv *WeekView) metrics(gtx layout.Context, anyAllDay bool) (metrics, error) {
	th := wv.Theme
	px := func(v unit.Dp) float32 { return float32(gtx.Dp(v)) }
	size := fixed.I(gtx.Sp(th.TextSize))

	var timeText image.Point
	for h := 0; h < 24; h++ {
		sz := lineSize(th.Shaper, th.Font, size, hourLabel(h))
		timeText.X = max(timeText.X, sz.X)
		timeText.Y = max(timeText.Y, sz.Y)
	}
	bold := th.Font
	bold.Weight = font.Bold
	header := lineSize(th.Shaper, bold, size, "Wed 12/31")

	n := wv.Config.VisibleDays
	headerColumnWidth := float32(timeText.X) + 2*px(wv.Config.HeaderColumnPadding)
	headerHeight := float32(header.Y)
	if anyAllDay {
		headerHeight += px(wv.Config.HeaderRowPadding) + px(wv.Config.AllDayRowHeight)
	}
	cfg := weekview.LayoutConfig{
		ColumnGap:             px(wv.Config.ColumnGap),
		EventMarginHorizontal: px(wv.Config.EventMarginHorizontal),
		EventPadding:          px(wv.Config.EventPadding),
		HeaderHeight:          headerHeight,
		HeaderRowPadding:      px(wv.Config.HeaderRowPadding),
		HeaderMarginBottom:    float32(timeText.Y) / 2,
		HeaderColumnWidth:     headerColumnWidth,
		TimeLabelTextHeight:   float32(timeText.Y),
		VisibleDays:           n,
	}
	if n > 0 {
		cfg.WidthPerDay = (float32(gtx.Constraints.Max.X) - headerColumnWidth - cfg.ColumnGap*float32(n-1)) / float32(n)
	}
	if err := cfg.Validate(); err != nil {
		return metrics{}, fmt.Errorf("invalid week view layout: %w", err)
	}
	return metrics{
		cfg:      cfg,
		vp:       weekview.Viewport{Width: float32(gtx.Constraints.Max.X), Height: float32(gtx.Constraints.Max.Y)},
		gridTop:  cfg.TotalHeaderHeight() + float32(timeText.Y)/2,
		timeText: timeText,
		header:   header,
	}, nil
}

func hourLabel(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

func (wv *WeekView) handleInput(gtx layout.Context) {
	for _, ev := range gtx.Events(wv) {
		switch ev := ev.(type) {
		case key.Event:
			if ev.State != key.Press {
				continue
			}
			switch ev.Name {
			case key.NameLeftArrow:
				wv.offsetX += wv.stride
			case key.NameRightArrow:
				wv.offsetX -= wv.stride
			case key.NameUpArrow:
				wv.originY += wv.hourHeight
			case key.NameDownArrow:
				wv.originY -= wv.hourHeight
			}
		case pointer.Event:
			switch ev.Type {
			case pointer.Press:
				key.FocusOp{Tag: wv}.Add(gtx.Ops)
				wv.drag.active = true
				wv.drag.moved = false
				wv.drag.start = ev.Position
				wv.drag.offsetX = wv.offsetX
				wv.drag.originY = wv.originY
			case pointer.Drag:
				if !wv.drag.active {
					continue
				}
				d := ev.Position.Sub(wv.drag.start)
				if slop := float32(gtx.Dp(dragSlop)); abs(d.X) > slop || abs(d.Y) > slop {
					wv.drag.moved = true
				}
				if wv.drag.moved {
					wv.offsetX = wv.drag.offsetX + d.X
					wv.originY = wv.drag.originY + d.Y
				}
			case pointer.Release:
				if !wv.drag.active {
					continue
				}
				wv.drag.active = false
				if wv.drag.moved {
					wv.snap()
				} else if chip, ok := wv.frame.HitTest(ev.Position); ok {
					wv.clicked = append(wv.clicked, chip)
				}
			case pointer.Cancel:
				wv.drag.active = false
			case pointer.Scroll:
				wv.offsetX -= ev.Scroll.X
				wv.originY -= ev.Scroll.Y
			}
		}
	}
}

// snap moves the horizontal offset to the nearest day boundary.
func (wv *WeekView) snap() {
	if wv.stride <= 0 {
		return
	}
	wv.offsetX = float32(math.Round(float64(wv.offsetX/wv.stride))) * wv.stride
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// visibleDays returns the days scrolled into view and the left edge of the first of them.
func (wv *WeekView) visibleDays(m metrics) ([]calendar.Day, float32) {
	stride := m.cfg.DayStride()
	leftDays := int(math.Floor(float64(-wv.offsetX / stride)))
	start := wv.offsetX + stride*float32(leftDays) + m.cfg.HeaderColumnWidth
	// One extra day covers the column that is partially scrolled in on the right.
	return calendar.Range(wv.first.AddDays(leftDays), m.cfg.VisibleDays+1), start
}

func (wv *WeekView) clampOriginY(m metrics) {
	minY := -(wv.hourHeight*24 + m.gridTop - m.vp.Height)
	wv.originY = min(wv.originY, 0)
	wv.originY = max(wv.originY, min(minY, 0))
}

func (wv *WeekView) Layout(gtx layout.Context, timed, allDay []*calendar.Chip) (layout.Dimensions, error) {
	wv.handleInput(gtx)

	th := wv.Theme
	anyAllDay := len(allDay) > 0
	m, err := wv.metrics(gtx, anyAllDay)
	if err != nil {
		return layout.Dimensions{}, err
	}
	wv.stride = m.cfg.DayStride()
	wv.hourHeight = float32(gtx.Dp(wv.Config.HourHeight))
	wv.applyScroll(m)

	if wv.measurer == nil {
		wv.measurer = NewMeasurer(th.Shaper, th.Font, 0)
	}
	wv.measurer.PxPerEm = fixed.I(gtx.Sp(th.EventTextSize))

	days, startPixel := wv.visibleDays(m)
	now := gtx.Now.In(wv.Location)
	today := calendar.DayOf(now)
	geo := &geometry.Calculator{
		WidthPerDay:         m.cfg.WidthPerDay,
		HourHeight:          wv.hourHeight,
		OriginY:             wv.originY,
		GridTop:             m.gridTop,
		EventMarginVertical: float32(gtx.Dp(wv.Config.EventMarginVertical)),
		OverlappingEventGap: float32(gtx.Dp(wv.Config.OverlappingEventGap)),
		AllDayTop:           float32(m.header.Y) + m.cfg.HeaderRowPadding,
		AllDayHeight:        float32(gtx.Dp(wv.Config.AllDayRowHeight)),
	}
	r := &weekview.Renderer{
		Config:   m.cfg,
		Geometry: geo,
		Measurer: wv.measurer,
		Style:    wv.style(today),
	}
	cv := &Canvas{Gtx: gtx, Theme: th}
	rctx := weekview.RenderContext{Days: days, StartPixel: startPixel}
	headerBottom := m.cfg.TotalHeaderHeight()

	defer gioclip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, th.Palette.Background)

	// Day columns, hour lines and the current time.
	for i, day := range days {
		x := startPixel + m.cfg.DayStride()*float32(i)
		bg := th.Palette.DayBackground
		switch {
		case day == today:
			bg = th.Palette.TodayBackground
		case day.Before(today):
			bg = th.Palette.PastBackground
		}
		fill(gtx, clip.R(x, headerBottom, x+m.cfg.WidthPerDay, m.vp.Height), bg)
		if day == today {
			minute := float32(now.Hour()*60 + now.Minute())
			y := wv.originY + m.gridTop + wv.hourHeight*minute/60
			if y > headerBottom {
				fill(gtx, clip.R(x, y-1, x+m.cfg.WidthPerDay, y+1), th.Palette.NowLine)
			}
		}
	}
	for h := 1; h < 24; h++ {
		y := wv.originY + m.gridTop + wv.hourHeight*float32(h)
		if y <= headerBottom || y >= m.vp.Height {
			continue
		}
		fill(gtx, clip.R(m.cfg.HeaderColumnWidth, y, m.vp.Width, y+1), th.Palette.HourSeparator)
	}

	frame, err := r.RenderTimed(cv, timed, rctx, m.vp)
	if err != nil {
		return layout.Dimensions{}, err
	}

	// The header covers timed chips scrolled beneath it.
	fill(gtx, clip.R(0, 0, m.vp.Width, headerBottom), th.Palette.HeaderBackground)
	allDayFrame, err := r.RenderAllDay(cv, allDay, rctx, m.vp)
	if err != nil {
		return layout.Dimensions{}, err
	}
	frame.Merge(allDayFrame)
	wv.frame = frame

	bold := th.Font
	bold.Weight = font.Bold
	for i, day := range days {
		x := startPixel + m.cfg.DayStride()*float32(i)
		c := th.Palette.Foreground
		if day == today {
			c = th.Palette.TodayHeaderText
		}
		drawLine(gtx, th, bold, th.TextSize, c, image.Pt(int(x), 0), day.Start(wv.Location).Format("Mon 1/02"))
	}

	// The time column covers everything scrolled beneath it.
	fill(gtx, clip.R(0, headerBottom, m.cfg.HeaderColumnWidth, m.vp.Height), th.Palette.TimeColumnBackground)
	padding := gtx.Dp(wv.Config.HeaderColumnPadding)
	for h := 0; h < 24; h++ {
		y := wv.originY + m.gridTop + wv.hourHeight*float32(h) - float32(m.timeText.Y)/2
		if y+float32(m.timeText.Y) <= headerBottom || y >= m.vp.Height {
			continue
		}
		drawLine(gtx, th, th.Font, th.TextSize, th.Palette.Foreground, image.Pt(padding, int(y)), hourLabel(h))
	}
	fill(gtx, clip.R(0, 0, m.cfg.HeaderColumnWidth, headerBottom), th.Palette.HeaderBackground)

	pointer.InputOp{
		Tag:          wv,
		Types:        pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
		ScrollBounds: image.Rectangle{Min: image.Pt(-1e6, -1e6), Max: image.Pt(1e6, 1e6)},
	}.Add(gtx.Ops)
	key.InputOp{Tag: wv, Keys: "←|→|↑|↓"}.Add(gtx.Ops)

	// Redraw when the current time moves to the next minute.
	op.InvalidateOp{At: now.Truncate(time.Minute).Add(time.Minute)}.Add(gtx.Ops)

	return layout.Dimensions{Size: gtx.Constraints.Max}, nil
}

// style dims chips of days that have passed.
func (wv *WeekView) style(today calendar.Day) func(*calendar.Chip) weekview.ChipStyle {
	def := wv.Theme.Palette.DefaultEvent
	return func(chip *calendar.Chip) weekview.ChipStyle {
		bg := chip.Event.Color.GetOr(def)
		if chip.Day.Before(today) {
			bg = mycolor.Dim(bg)
		}
		return weekview.ChipStyle{
			Background: bg,
			Border:     mycolor.Darken(bg, 0.15),
			Text:       mycolor.TextOn(bg),
			AllDay:     chip.Event.AllDay,
		}
	}
}

func fill(gtx layout.Context, r clip.Rect, c color.NRGBA) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	paint.FillShape(gtx.Ops, c, r.Op(gtx.Ops))
}
