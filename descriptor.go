package rrect

import (
	"image"

	"golang.org/x/image/font"

	"github.com/gogpu/rrect/internal/blend"
	"github.com/gogpu/rrect/internal/color"
)

// Color is an opaque RGB color.
type Color = color.Color

// Opa is an opacity in the range 0..255.
type Opa = color.Opa

// Opacity levels.
const (
	OpaTransp = color.OpaTransp
	OpaMin    = color.OpaMin
	OpaMax    = color.OpaMax
	OpaCover  = color.OpaCover
)

// Common colors.
var (
	Black = color.Black
	White = color.White
	Red   = color.Red
	Green = color.Green
	Blue  = color.Blue
)

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color { return color.RGB(r, g, b) }

// Hex parses "RGB" or "RRGGBB", with or without a leading '#'.
func Hex(s string) Color { return color.Hex(s) }

// BlendMode selects how a fill is composited with the destination.
type BlendMode = blend.Mode

// Blend modes.
const (
	BlendNormal      = blend.ModeNormal
	BlendAdditive    = blend.ModeAdditive
	BlendSubtractive = blend.ModeSubtractive
	BlendMultiply    = blend.ModeMultiply
)

// GradDir is the direction of a background gradient.
type GradDir uint8

const (
	// GradDirNone draws a solid background.
	GradDirNone GradDir = iota
	// GradDirVer blends from BgColor at the top to BgGradColor at the bottom.
	GradDirVer
	// GradDirHor blends from BgColor at the left to BgGradColor at the right.
	GradDirHor
)

// String returns the direction name.
func (d GradDir) String() string {
	switch d {
	case GradDirNone:
		return "None"
	case GradDirVer:
		return "Ver"
	case GradDirHor:
		return "Hor"
	default:
		return "Unknown"
	}
}

// BorderSide is a set of rectangle sides.
type BorderSide uint8

// Border sides.
const (
	BorderSideNone   BorderSide = 0
	BorderSideBottom BorderSide = 1 << 0
	BorderSideTop    BorderSide = 1 << 1
	BorderSideLeft   BorderSide = 1 << 2
	BorderSideRight  BorderSide = 1 << 3
	BorderSideFull              = BorderSideBottom | BorderSideTop | BorderSideLeft | BorderSideRight
)

// Has reports whether all sides in s are selected.
func (b BorderSide) Has(s BorderSide) bool { return b&s == s }

// RectDesc describes how a rectangle is drawn. The zero value draws
// nothing visible; use NewRectDesc for the usual defaults.
//
// A RectDesc is never modified by the renderer.
type RectDesc struct {
	// Radius is the corner radius shared by every pass. It is clamped to
	// half the shorter side of the area each pass works on.
	Radius int

	BgColor         Color
	BgGradColor     Color
	BgGradDir       GradDir
	BgMainColorStop uint8
	BgGradColorStop uint8
	BgOpa           Opa
	BgBlendMode     BlendMode

	BorderColor     Color
	BorderWidth     int
	BorderSide      BorderSide
	BorderOpa       Opa
	BorderBlendMode BlendMode

	ShadowColor     Color
	ShadowWidth     int
	ShadowOfsX      int
	ShadowOfsY      int
	ShadowSpread    int
	ShadowOpa       Opa
	ShadowBlendMode BlendMode

	// PatternImage is tiled or centered over the background. It takes
	// precedence over PatternSymbol.
	PatternImage image.Image
	// PatternSymbol is a text symbol rendered with PatternFont.
	PatternSymbol string
	// PatternFont defaults to basicfont.Face7x13 when nil.
	PatternFont       font.Face
	PatternRepeat     bool
	PatternOpa        Opa
	PatternRecolor    Color
	PatternRecolorOpa Opa
	PatternBlendMode  BlendMode
}

// NewRectDesc returns a descriptor with a white opaque background,
// an opaque black border on all sides (zero width) and an opaque black
// shadow (zero width). The pattern is transparent.
func NewRectDesc() RectDesc {
	return RectDesc{
		BgColor:         White,
		BgGradColor:     Black,
		BgGradColorStop: 0xFF,
		BgOpa:           OpaCover,
		BorderColor:     Black,
		BorderSide:      BorderSideFull,
		BorderOpa:       OpaCover,
		ShadowColor:     Black,
		ShadowOpa:       OpaCover,
		PatternRecolor:  Black,
	}
}
