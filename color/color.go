// Package color converts chip colors between sRGB and Oklch, so that derived colors (borders, text, dimmed past
// events) can be computed in a perceptually uniform space.
package color

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

type Lab struct {
	L     float32
	A     float32
	B     float32
	Alpha float32
}

type LCh struct {
	L float32
	C float32
	H float32
	A float32
}

type RGB struct {
	R float32
	G float32
	B float32
	A float32
}

type Oklab Lab
type Oklch LCh
type SRGB RGB
type LinearSRGB RGB

func (c Lab) LCh() LCh {
	hue := float32(math.Atan2(float64(c.B), float64(c.A))) * (180 / math.Pi)
	if hue < 0 {
		hue += 360
	}
	return LCh{
		c.L,
		float32(math.Hypot(float64(c.A), float64(c.B))),
		hue,
		c.Alpha,
	}
}

func (c Oklab) Oklch() Oklch {
	return Oklch(Lab(c).LCh())
}

// LinearSRGB converts from Oklab to linear sRGB, without applying gamut mapping.
func (c Oklab) LinearSRGB() LinearSRGB {
	l_ := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	m_ := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	s_ := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	return LinearSRGB{
		+4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
		c.Alpha,
	}
}

func (c Oklch) Oklab() Oklab {
	h := float64(c.H * (math.Pi / 180))
	return Oklab{
		L:     c.L,
		A:     c.C * float32(math.Cos(h)),
		B:     c.C * float32(math.Sin(h)),
		Alpha: c.A,
	}
}

func (c LinearSRGB) Oklab() Oklab {
	r := float64(c.R)
	g := float64(c.G)
	b := float64(c.B)

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l_ := math.Cbrt(l)
	m_ := math.Cbrt(m)
	s_ := math.Cbrt(s)

	return Oklab{
		L:     float32(0.2104542553*l_ + 0.7936177850*m_ - 0.0040720468*s_),
		A:     float32(1.9779984951*l_ - 2.4285922050*m_ + 0.4505937099*s_),
		B:     float32(0.0259040371*l_ + 0.7827717662*m_ - 0.8086757660*s_),
		Alpha: float32(c.A),
	}
}

func (c SRGB) LinearSRGB() LinearSRGB {
	t := func(c float32) float32 {
		cp := float64(c)
		if cp >= 0.04045 {
			return float32(math.Pow((cp+0.055)/(1+0.055), 2.4))
		} else {
			return float32(cp / 12.92)
		}
	}

	return LinearSRGB{t(c.R), t(c.G), t(c.B), c.A}
}

func (c LinearSRGB) SRGB() SRGB {
	t := func(c float32) float32 {
		cp := float64(c)
		if cp >= 0.0031308 {
			return float32(1.055*math.Pow(cp, 1.0/2.4) - 0.055)
		} else {
			return float32(12.92 * cp)
		}
	}

	return SRGB{t(c.R), t(c.G), t(c.B), c.A}
}

// FromNRGBA converts a non-premultiplied 8-bit color to Oklch.
func FromNRGBA(c color.NRGBA) Oklch {
	s := SRGB{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
	return s.LinearSRGB().Oklab().Oklch()
}

// NRGBA converts c to 8-bit sRGB, clipping channels that fall outside the gamut.
func (c Oklch) NRGBA() color.NRGBA {
	s := c.Oklab().LinearSRGB().SRGB()
	ch := func(f float32) uint8 {
		return uint8(math.Round(float64(min(max(f, 0), 1) * 255)))
	}
	return color.NRGBA{ch(s.R), ch(s.G), ch(s.B), ch(s.A)}
}

// ParseHex parses colors of the forms #rgb, #rrggbb and #rrggbbaa. The leading '#' is optional.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func MustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Darken lowers the perceived lightness of c by amount, which is in Oklch L units (0 to 1).
func Darken(c color.NRGBA, amount float32) color.NRGBA {
	lch := FromNRGBA(c)
	lch.L = max(lch.L-amount, 0)
	return lch.NRGBA()
}

// Dim desaturates c and multiplies its alpha, blending it further into the background.
func Dim(c color.NRGBA) color.NRGBA {
	const r = 0.5 // blend ratio
	lch := FromNRGBA(c)
	lch.C *= r
	lch.A *= 0.6
	return lch.NRGBA()
}

// TextOn picks a dark or light text color, whichever reads better on bg.
func TextOn(bg color.NRGBA) color.NRGBA {
	if FromNRGBA(bg).L > 0.6 {
		return color.NRGBA{A: 0xFF}
	}
	return color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
}
