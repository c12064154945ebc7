package rrect

import (
	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/internal/color"
	"github.com/gogpu/rrect/mask"
)

// drawBorder paints the ring between the outer rounded rectangle and an
// inner one inset by the border width on every selected side.
func (r *Renderer) drawBorder(coords, clip geom.Area, dsc *RectDesc) {
	bw := dsc.BorderWidth
	if bw <= 0 {
		return
	}
	opa := color.ClampOpa(dsc.BorderOpa)
	if opa < OpaMin {
		return
	}

	drawArea, ok := coords.Intersect(clip)
	if !ok {
		return
	}
	drawW := drawArea.Width()

	maskBuf := r.alloc.Bytes(drawW)
	defer r.alloc.ReleaseBytes(maskBuf)

	// The horizontal background gradient also disables the optimized path.
	simple := r.masks.Count() == 0 && dsc.BorderSide == BorderSideFull && dsc.BgGradDir != GradDirHor

	rout := geom.ClampRadius(dsc.Radius, coords)
	outerID := mask.InvalidID
	if rout > 0 {
		outerID = r.pushMask(mask.NewRadius(coords, rout, mask.Inside))
	}
	defer r.masks.Remove(outerID)

	rin := max(rout-bw, 0)
	inner := innerArea(coords, dsc.BorderSide, bw, rout)
	innerID := r.pushMask(mask.NewRadius(inner, rin, mask.Outside))
	defer r.masks.Remove(innerID)

	c := dsc.BorderColor
	mode := dsc.BorderBlendMode

	if !simple {
		for y := drawArea.Y1; y <= drawArea.Y2; y++ {
			fillCover(maskBuf)
			res := r.masks.Apply(maskBuf, drawArea.X1, y)
			row := geom.NewArea(coords.X1, y, coords.X2, y)
			r.blender.Fill(clip, row, c, maskBuf, res, opa, mode)
		}
		return
	}

	cornerSize := max(rout, bw-1)

	// drawRow fills one row of a horizontal band: the corner segments
	// through the masks and, when straight is set, the span between them
	// at full coverage.
	drawRow := func(y int, straight bool) {
		fillCover(maskBuf)
		res := r.masks.Apply(maskBuf, drawArea.X1, y)

		left := geom.NewArea(coords.X1, y, coords.X1+rout-1, y)
		r.blender.Fill(clip, left, c, maskBuf, res, opa, mode)

		if straight {
			mid := geom.NewArea(coords.X1+rout, y, coords.X2-rout, y)
			r.blender.Fill(clip, mid, c, nil, mask.FullCover, opa, mode)
		}

		right := geom.NewArea(coords.X2-rout+1, y, coords.X2, y)
		r.blender.Fill(clip, right, c, tail(maskBuf, right.X1-drawArea.X1), res, opa, mode)
	}

	upperEnd := coords.Y1 + cornerSize
	for y := drawArea.Y1; y <= min(upperEnd, drawArea.Y2); y++ {
		drawRow(y, y < coords.Y1+bw)
	}

	if dsc.BorderSide.Has(BorderSideBottom) {
		lowerStart := coords.Y2 - cornerSize
		if lowerStart <= upperEnd {
			lowerStart = upperEnd + 1
		}
		for y := max(lowerStart, drawArea.Y1); y <= drawArea.Y2; y++ {
			drawRow(y, y > coords.Y2-bw)
		}
	}

	// Straight vertical bands between the corner regions.
	band := geom.NewArea(coords.X1, coords.Y1+cornerSize+1, coords.X1+bw-1, coords.Y2-cornerSize-1)
	r.blender.Fill(clip, band, c, nil, mask.FullCover, opa, mode)

	band.X1, band.X2 = coords.X2-bw+1, coords.X2
	r.blender.Fill(clip, band, c, nil, mask.FullCover, opa, mode)
}

// innerArea returns coords inset by bw on every selected side. Unselected
// sides are pushed outward past the corner so the inner cut never reaches
// them.
func innerArea(coords geom.Area, side BorderSide, bw, rout int) geom.Area {
	inset := func(s BorderSide) int {
		if side.Has(s) {
			return bw
		}
		return -(bw + rout)
	}
	return geom.NewArea(
		coords.X1+inset(BorderSideLeft),
		coords.Y1+inset(BorderSideTop),
		coords.X2-inset(BorderSideRight),
		coords.Y2-inset(BorderSideBottom),
	)
}
