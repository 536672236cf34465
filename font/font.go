package font

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/font/opentype"
)

var (
	once       sync.Once
	collection []font.FontFace
)

// Collection returns the Go fonts. The slice has no spare capacity, so callers can append to it safely.
func Collection() []font.FontFace {
	once.Do(func() {
		c := gofont.Collection()
		n := len(c)
		collection = c[:n:n]
	})
	return collection
}

// WithFile returns Collection, preceded by the font stored at path. The font's typeface is named after the file.
// Faces earlier in the collection take precedence when shaping text.
func WithFile(path string) ([]font.FontFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't load font: %w", err)
	}
	face, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	fc := font.FontFace{
		Font: font.Font{
			Typeface: font.Typeface(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))),
		},
		Face: face,
	}
	return append([]font.FontFace{fc}, Collection()...), nil
}
