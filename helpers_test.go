package rrect

import (
	"image/color"
	"testing"

	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/internal/blend"
	"github.com/gogpu/rrect/mask"
	"github.com/gogpu/rrect/surface"
)

// newTestBuffer returns a transparent w x h buffer at the origin.
func newTestBuffer(t testing.TB, w, h int) *surface.Buffer {
	t.Helper()
	buf, err := surface.NewBuffer(geom.NewArea(0, 0, w-1, h-1))
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d) = %v", w, h, err)
	}
	return buf
}

// newStripe returns a transparent buffer covering area (x1,y1)-(x2,y2).
func newStripe(x1, y1, x2, y2 int) (*surface.Buffer, error) {
	return surface.NewBuffer(geom.NewArea(x1, y1, x2, y2))
}

// opaque returns the premultiplied opaque pixel of c.
func opaque(c Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// transparent is an untouched pixel of a fresh test buffer.
var transparent = color.RGBA{}

// eachPixel calls fn for every pixel of buf.
func eachPixel(buf *surface.Buffer, fn func(x, y int, px color.RGBA)) {
	a := buf.Area()
	for y := a.Y1; y <= a.Y2; y++ {
		for x := a.X1; x <= a.X2; x++ {
			fn(x, y, buf.RGBAAt(x, y))
		}
	}
}

// fillCall is one recorded Blender call.
type fillCall struct {
	area geom.Area
	c    Color
	res  mask.Result
	opa  Opa
	mode BlendMode
	mask bool
}

// recordingBlender records every fill and forwards it to the default
// engine so pixel output stays observable.
type recordingBlender struct {
	engine *blend.Engine
	calls  []fillCall
}

func newRecordingBlender(dst *surface.Buffer) *recordingBlender {
	return &recordingBlender{engine: blend.NewEngine(dst)}
}

func (b *recordingBlender) Fill(clip, area geom.Area, c Color, maskBuf []uint8, res mask.Result, opa Opa, mode BlendMode) {
	b.calls = append(b.calls, fillCall{area: area, c: c, res: res, opa: opa, mode: mode, mask: maskBuf != nil})
	b.engine.Fill(clip, area, c, maskBuf, res, opa, mode)
}

func (b *recordingBlender) FillMap(clip, area geom.Area, colors []Color, maskBuf []uint8, res mask.Result, opa Opa, mode BlendMode) {
	var c Color
	if len(colors) > 0 {
		c = colors[0]
	}
	b.calls = append(b.calls, fillCall{area: area, c: c, res: res, opa: opa, mode: mode, mask: maskBuf != nil})
	b.engine.FillMap(clip, area, colors, maskBuf, res, opa, mode)
}

// clearLeftOf zeroes coverage for x < cut.
func clearLeftOf(cut int) mask.Mask {
	return mask.Func(func(buf []uint8, x, _ int) mask.Result {
		changed := false
		for i := range buf {
			if x+i < cut {
				buf[i] = 0
				changed = true
			}
		}
		if changed {
			return mask.Changed
		}
		return mask.FullCover
	})
}
