package rrect

import (
	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/internal/color"
	"github.com/gogpu/rrect/mask"
)

// drawBg fills the rounded background, solid or with a gradient.
func (r *Renderer) drawBg(coords, clip geom.Area, dsc *RectDesc) {
	bg := coords
	// An opaque border covers the outermost ring; shrink so the
	// antialiased background corner does not bleed through it.
	if dsc.BorderWidth > 1 && dsc.BorderOpa >= OpaMax && dsc.Radius != 0 {
		bg = bg.Inset(1)
	}
	opa := color.ClampOpa(dsc.BgOpa)

	drawArea, ok := bg.Intersect(clip)
	if !ok {
		return
	}
	drawW := drawArea.Width()

	maskBuf := r.alloc.Bytes(drawW)
	defer r.alloc.ReleaseBytes(maskBuf)

	simple := r.masks.Count() == 0 && dsc.BgGradDir != GradDirHor
	rout := geom.ClampRadius(dsc.Radius, bg)

	if simple && rout == 0 && dsc.BgGradDir == GradDirNone {
		r.blender.Fill(clip, bg, dsc.BgColor, nil, mask.FullCover, opa, dsc.BgBlendMode)
		return
	}

	maskID := mask.InvalidID
	if rout > 0 {
		maskID = r.pushMask(mask.NewRadius(bg, rout, mask.Inside))
	}
	defer r.masks.Remove(maskID)

	if opa < OpaMin {
		return
	}

	var gradMap []Color
	if dsc.BgGradDir == GradDirHor && dsc.BgColor != dsc.BgGradColor {
		gradMap = r.alloc.Colors(bg.Width())
		defer r.alloc.ReleaseColors(gradMap)
		for i := range gradMap {
			gradMap[i] = gradColor(dsc, bg.Width(), i)
		}
	}
	verGrad := dsc.BgGradDir == GradDirVer && dsc.BgColor != dsc.BgGradColor

	rowColor := dsc.BgColor
	for y := drawArea.Y1; y <= drawArea.Y2; y++ {
		row := geom.NewArea(bg.X1, y, bg.X2, y)

		res := mask.FullCover
		if y > bg.Y1+rout+1 && y < bg.Y2-rout-1 {
			if !simple {
				fillCover(maskBuf)
				res = r.masks.Apply(maskBuf, drawArea.X1, y)
			}
		} else {
			fillCover(maskBuf)
			res = r.masks.Apply(maskBuf, drawArea.X1, y)
		}

		if verGrad {
			rowColor = gradColor(dsc, bg.Height(), y-bg.Y1)
		}

		if simple && (y < bg.Y1+rout+1 || y > bg.Y2-rout-1) {
			left := geom.NewArea(bg.X1, y, bg.X1+rout-1, y)
			r.blender.Fill(clip, left, rowColor, maskBuf, res, opa, dsc.BgBlendMode)

			mid := geom.NewArea(bg.X1+rout, y, bg.X2-rout, y)
			r.blender.Fill(clip, mid, rowColor, nil, mask.FullCover, opa, dsc.BgBlendMode)

			right := geom.NewArea(bg.X2-rout+1, y, bg.X2, y)
			rightBuf := tail(maskBuf, right.X1-drawArea.X1)
			r.blender.Fill(clip, right, rowColor, rightBuf, res, opa, dsc.BgBlendMode)
			continue
		}

		if gradMap != nil {
			r.blender.FillMap(clip, row, gradMap, maskBuf, res, opa, dsc.BgBlendMode)
		} else {
			r.blender.Fill(clip, row, rowColor, maskBuf, res, opa, dsc.BgBlendMode)
		}
	}
}
