package rrect

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/internal/color"
	"github.com/gogpu/rrect/mask"
)

// patternPass draws the descriptor's image or symbol, tiled or centered,
// inside the rounded rectangle.
type patternPass struct{}

// patternTile is one rasterized copy of the pattern source.
type patternTile struct {
	img    *image.NRGBA // image sources
	alpha  *image.Alpha // symbol sources
	symbol bool
	w, h   int

	tint    Color
	tintOpa Opa
}

// DrawPattern implements PatternDrawer.
func (patternPass) DrawPattern(r *Renderer, coords, clip geom.Area, dsc *RectDesc) {
	if dsc.PatternImage == nil && dsc.PatternSymbol == "" {
		return
	}
	if dsc.PatternOpa <= OpaMin {
		return
	}
	tile := newPatternTile(dsc)
	if tile == nil {
		return
	}

	if dsc.PatternRepeat {
		id := r.pushMask(mask.NewRadius(coords, dsc.Radius, mask.Inside))
		defer r.masks.Remove(id)

		// Align the tiling to the middle.
		ofsX := (coords.Width() - (coords.Width()/tile.w)*tile.w) / 2
		ofsY := (coords.Height() - (coords.Height()/tile.h)*tile.h) / 2

		for y := coords.Y1 - ofsY; y <= coords.Y2; y += tile.h {
			for x := coords.X1 - ofsX; x <= coords.X2; x += tile.w {
				area := geom.NewArea(x, y, x+tile.w-1, y+tile.h-1)
				r.drawTile(area, clip, tile, dsc)
			}
		}
		return
	}

	x := coords.X1 + (coords.Width()-tile.w)/2
	y := coords.Y1 + (coords.Height()-tile.h)/2
	// Symbols take the odd pixel below the centre.
	if tile.symbol {
		y += (coords.Height() - tile.h) & 1
	}
	area := geom.NewArea(x, y, x+tile.w-1, y+tile.h-1)

	id := mask.InvalidID
	if !area.IsIn(coords, dsc.Radius) {
		id = r.pushMask(mask.NewRadius(coords, dsc.Radius, mask.Inside))
	}
	defer r.masks.Remove(id)

	r.drawTile(area, clip, tile, dsc)
}

// newPatternTile rasterizes the pattern source, or returns nil if it has
// nothing to draw.
func newPatternTile(dsc *RectDesc) *patternTile {
	if src := dsc.PatternImage; src != nil {
		b := src.Bounds()
		if b.Empty() {
			Logger().Warn("rrect: pattern image is empty", "bounds", b)
			return nil
		}
		img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(img, image.Point{}, src, b, draw.Src, nil)
		return &patternTile{
			img:     img,
			w:       b.Dx(),
			h:       b.Dy(),
			tint:    dsc.PatternRecolor,
			tintOpa: dsc.PatternRecolorOpa,
		}
	}

	face := dsc.PatternFont
	if face == nil {
		face = basicfont.Face7x13
	}
	// Faces index precomposed runes.
	sym := norm.NFC.String(dsc.PatternSymbol)
	m := face.Metrics()
	w := font.MeasureString(face, sym).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		Logger().Warn("rrect: pattern symbol has no extent",
			"symbol", sym, "width", w, "height", h)
		return nil
	}

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  alpha,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{Y: m.Ascent},
	}
	d.DrawString(sym)

	return &patternTile{
		alpha:  alpha,
		symbol: true,
		w:      w,
		h:      h,
		tint:   dsc.PatternRecolor,
	}
}

// at returns the color and coverage of tile pixel (x, y).
func (t *patternTile) at(x, y int) (Color, uint8) {
	if t.symbol {
		return t.tint, t.alpha.AlphaAt(x, y).A
	}
	px := t.img.NRGBAAt(x, y)
	c := color.RGB(px.R, px.G, px.B)
	if t.tintOpa > OpaTransp {
		c = color.Mix(t.tint, c, t.tintOpa)
	}
	return c, px.A
}

// drawTile blends one copy of the tile at area.
func (r *Renderer) drawTile(area, clip geom.Area, t *patternTile, dsc *RectDesc) {
	vis, ok := area.Intersect(clip)
	if !ok {
		return
	}
	w := vis.Width()

	maskBuf := r.alloc.Bytes(w)
	defer r.alloc.ReleaseBytes(maskBuf)
	colors := r.alloc.Colors(w)
	defer r.alloc.ReleaseColors(colors)

	opa := color.ClampOpa(dsc.PatternOpa)
	for y := vis.Y1; y <= vis.Y2; y++ {
		ty := y - area.Y1
		for i := range w {
			colors[i], maskBuf[i] = t.at(vis.X1+i-area.X1, ty)
		}
		res := r.masks.Apply(maskBuf, vis.X1, y)
		if res == mask.FullCover {
			res = mask.Changed
		}
		row := geom.NewArea(vis.X1, y, vis.X2, y)
		r.blender.FillMap(clip, row, colors, maskBuf, res, opa, dsc.PatternBlendMode)
	}
}
