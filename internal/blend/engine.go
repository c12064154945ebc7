package blend

import (
	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/internal/color"
	"github.com/gogpu/rrect/mask"
	"github.com/gogpu/rrect/surface"
)

// Engine fills spans of a surface.Buffer.
//
// The mask buffer passed to Fill and FillMap describes the clipped fill
// area: it is row-major with the width of area∩clip, and index 0 is the
// first pixel of area∩clip. Pixels of that area outside the buffer are
// skipped without disturbing the indexing.
type Engine struct {
	dst *surface.Buffer
}

// NewEngine creates a blend engine drawing into dst.
func NewEngine(dst *surface.Buffer) *Engine {
	return &Engine{dst: dst}
}

// Fill blends a uniform color over area, clipped to clip.
func (e *Engine) Fill(clip, area geom.Area, c color.Color, maskBuf []uint8, res mask.Result, opa color.Opa, mode Mode) {
	e.fillRows(clip, area, func(int, int) color.Color { return c }, maskBuf, res, opa, mode)
}

// FillMap blends a per-pixel color map over area, clipped to clip.
// colors is row-major with the width of area and index 0 at
// (area.X1, area.Y1).
func (e *Engine) FillMap(clip, area geom.Area, colors []color.Color, maskBuf []uint8, res mask.Result, opa color.Opa, mode Mode) {
	w := area.Width()
	e.fillRows(clip, area, func(x, y int) color.Color {
		return colors[(y-area.Y1)*w+(x-area.X1)]
	}, maskBuf, res, opa, mode)
}

func (e *Engine) fillRows(clip, area geom.Area, colorAt func(x, y int) color.Color,
	maskBuf []uint8, res mask.Result, opa color.Opa, mode Mode) {
	// Do not draw transparent things.
	if opa < color.OpaMin || res == mask.FullTransp {
		return
	}
	drawArea, ok := area.Intersect(clip)
	if !ok {
		return
	}
	vis, ok := drawArea.Intersect(e.dst.Area())
	if !ok {
		return
	}
	opa = color.ClampOpa(opa)
	blendFn := GetFunc(mode)
	masked := res != mask.FullCover && maskBuf != nil
	drawW := drawArea.Width()

	for y := vis.Y1; y <= vis.Y2; y++ {
		row := e.dst.Row(y, vis.X1, vis.X2)
		var mrow []uint8
		if masked {
			off := (y - drawArea.Y1) * drawW
			mrow = maskBuf[off : off+drawW]
		}
		for x := vis.X1; x <= vis.X2; x++ {
			a := opa
			if mrow != nil {
				mv := mrow[x-drawArea.X1]
				if mv == 0 {
					continue
				}
				if mv != color.OpaCover {
					a = mulDiv255(a, mv)
				}
			}
			if a == 0 {
				continue
			}
			sr, sg, sb, sa := colorAt(x, y).Premul(a)
			i := (x - vis.X1) * 4
			px := row[i : i+4]
			if sa == 255 && mode == ModeNormal {
				px[0], px[1], px[2], px[3] = sr, sg, sb, sa
				continue
			}
			px[0], px[1], px[2], px[3] = blendFn(sr, sg, sb, sa, px[0], px[1], px[2], px[3])
		}
	}
}
