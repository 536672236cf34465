package weekview

import (
	"unicode/utf8"

	"honnef.co/go/weekview/container"
)

// Ellipsis is appended to truncated labels.
const Ellipsis = "…"

// Label is the text drawn inside a chip. The first Emphasis bytes of Text, the event's title, are drawn in bold.
type Label struct {
	Text     string
	Emphasis int
}

// NewLabel builds the label for an event: the title, followed by a space and the location.
func NewLabel(title, location container.Option[string]) Label {
	var l Label
	if t, ok := title.Get(); ok {
		l.Text = t
		l.Emphasis = len(t)
	}
	if loc, ok := location.Get(); ok {
		if l.Text != "" {
			l.Text += " "
		}
		l.Text += loc
	}
	return l
}

func (l Label) Title() string { return l.Text[:l.Emphasis] }
func (l Label) Rest() string  { return l.Text[l.Emphasis:] }

func (l Label) Empty() bool { return l.Text == "" }

// Cut keeps the first n runes of the label and appends ellipsis. The emphasized part shrinks with the text; the
// ellipsis itself is never emphasized.
func (l Label) Cut(n int, ellipsis string) Label {
	if n < 0 {
		n = 0
	}
	end := 0
	for i := 0; i < n && end < len(l.Text); i++ {
		_, size := utf8.DecodeRuneInString(l.Text[end:])
		end += size
	}
	if end >= len(l.Text) {
		return l
	}
	return Label{
		Text:     l.Text[:end] + ellipsis,
		Emphasis: min(l.Emphasis, end),
	}
}
