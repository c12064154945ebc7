// Package color provides the opaque RGB color and opacity types used by
// the rectangle renderer.
package color

import stdcolor "image/color"

// Opa is an 8-bit opacity: 0 is transparent, 255 is fully covered.
type Opa = uint8

// Opacity thresholds shared by all passes.
const (
	// OpaTransp is fully transparent.
	OpaTransp Opa = 0
	// OpaMin is the lowest opacity that is still drawn.
	OpaMin Opa = 2
	// OpaMax is the highest opacity that is still blended; anything above
	// it is treated as OpaCover.
	OpaMax Opa = 253
	// OpaCover is fully opaque.
	OpaCover Opa = 255
)

// ClampOpa promotes opacities above OpaMax to OpaCover.
func ClampOpa(o Opa) Opa {
	if o > OpaMax {
		return OpaCover
	}
	return o
}

// Color is an opaque 24-bit RGB color. Transparency is always carried
// separately as an Opa.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255}
	Green = Color{G: 255}
	Blue  = Color{B: 255}
)

// Mix blends fg over bg with weight w: w=255 returns fg, w=0 returns bg.
func Mix(fg, bg Color, w uint8) Color {
	return Color{
		R: mixChan(fg.R, bg.R, w),
		G: mixChan(fg.G, bg.G, w),
		B: mixChan(fg.B, bg.B, w),
	}
}

func mixChan(f, b, w uint8) uint8 {
	return uint8((uint16(f)*uint16(w) + uint16(b)*uint16(255-w) + 127) / 255)
}

// Premul returns the color scaled by opa as premultiplied RGBA bytes.
func (c Color) Premul(opa Opa) (r, g, b, a uint8) {
	if opa == OpaCover {
		return c.R, c.G, c.B, OpaCover
	}
	return mulDiv255(c.R, opa), mulDiv255(c.G, opa), mulDiv255(c.B, opa), opa
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// FromStd converts a standard color, dropping its alpha after
// un-premultiplying.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Hex parses "RGB" or "RRGGBB", with or without a leading '#'.
// Malformed input yields black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			*val = 0
			return
		}
	}
}

func mulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}
