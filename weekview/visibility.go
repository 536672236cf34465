package weekview

import "honnef.co/go/weekview/clip"

// VisibleTimed reports whether a timed chip with the candidate rectangle r may be drawn. The chip has to be
// non-empty horizontally, start inside the viewport, and reach past the time column and below the header. A chip only
// counts as below the header once it extends past half a time label's height, so a hairline peeking out from under
// the header doesn't get drawn.
func VisibleTimed(r clip.Rect, cfg LayoutConfig, vp Viewport) bool {
	return visibleInViewport(r, cfg, vp) &&
		r.Bottom > cfg.TotalHeaderHeight()+cfg.TimeLabelTextHeight/2
}

// VisibleAllDay is like VisibleTimed, but all-day chips live in their own row inside the header, so only their bottom
// edge has to be on screen.
func VisibleAllDay(r clip.Rect, cfg LayoutConfig, vp Viewport) bool {
	return visibleInViewport(r, cfg, vp) && r.Bottom > 0
}

func visibleInViewport(r clip.Rect, cfg LayoutConfig, vp Viewport) bool {
	return r.Left < r.Right &&
		r.Left < vp.Width &&
		r.Top < vp.Height &&
		r.Right > cfg.HeaderColumnWidth
}
