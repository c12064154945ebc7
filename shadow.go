package rrect

import (
	"slices"

	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/internal/color"
	"github.com/gogpu/rrect/mask"
)

// shadowPass holds the state shared by the corner, side and middle
// drawing steps of one shadow.
type shadowPass struct {
	r       *Renderer
	clip    geom.Area
	coords  geom.Area
	shArea  geom.Area
	sw      int
	cs      int // corner buffer side
	corner  []uint8
	maskBuf []uint8
	simple  bool
	c       Color
	opa     Opa
	mode    BlendMode
}

// drawShadow draws the blurred shadow around coords. The area under the
// rectangle body is excluded.
func (r *Renderer) drawShadow(coords, clip geom.Area, dsc *RectDesc) {
	sw := dsc.ShadowWidth
	if sw <= 0 {
		return
	}
	if sw == 1 && dsc.ShadowOfsX == 0 && dsc.ShadowOfsY == 0 && dsc.ShadowSpread <= 0 {
		return
	}

	shRect := geom.NewArea(
		coords.X1+dsc.ShadowOfsX-dsc.ShadowSpread,
		coords.Y1+dsc.ShadowOfsY-dsc.ShadowSpread,
		coords.X2+dsc.ShadowOfsX+dsc.ShadowSpread,
		coords.Y2+dsc.ShadowOfsY+dsc.ShadowSpread,
	)
	if shRect.IsEmpty() {
		return
	}
	shArea := shRect.Inset(-(sw/2 + 1))
	if _, ok := shArea.Intersect(clip); !ok {
		return
	}

	bgCoords := coords.Inset(1)
	rBg := geom.ClampRadius(dsc.Radius, bgCoords)
	rSh := geom.ClampRadius(dsc.Radius, shRect)
	cs := sw + rSh

	Logger().Debug("rrect: shadow",
		"width", sw, "corner", cs, "blur", blurWidth(sw), "refine", sw-blurWidth(sw))

	corner := r.alloc.Bytes(cs * cs)
	defer r.alloc.ReleaseBytes(corner)
	r.shadowCorner(shRect, corner, sw, rSh)

	simple := r.masks.Count() == 0 &&
		dsc.ShadowOfsX == 0 && dsc.ShadowOfsY == 0 && dsc.ShadowSpread == 0

	p := shadowPass{
		r:      r,
		clip:   clip,
		coords: coords,
		shArea: shArea,
		sw:     sw,
		cs:     cs,
		corner: corner,
		simple: simple,
		c:      dsc.ShadowColor,
		opa:    color.ClampOpa(dsc.ShadowOpa),
		mode:   dsc.ShadowBlendMode,
	}
	p.maskBuf = r.alloc.Bytes(max(shArea.Width(), cs))
	defer r.alloc.ReleaseBytes(p.maskBuf)

	bodyID := r.pushMask(mask.NewRadius(bgCoords, rBg, mask.Outside))
	defer r.masks.Remove(bodyID)

	p.draw()
}

func (p *shadowPass) draw() {
	cs, sh := p.cs, p.shArea
	w, h := sh.Width(), sh.Height()

	// When the shadow is narrower than two corners, opposing corners
	// share the middle column or row.
	horMid := sh.X1 + w/2
	verMidDist := cs - h/2
	verMidCorr := 0
	if verMidDist <= 0 {
		verMidDist = 0
	} else if h%2 == 1 {
		verMidCorr = 1
	}
	topRows := cs - verMidDist + verMidCorr
	bottomRows := cs - verMidDist

	// Right corners and side straight from the buffer.
	a := geom.NewArea(max(sh.X2-cs+1, horMid), sh.Y1, sh.X2, sh.Y1)
	firstPx := a.X1 - (sh.X2 - cs + 1)
	if p.clip.X1 > a.X1 {
		firstPx += p.clip.X1 - a.X1
		a.X1 = p.clip.X1
	}
	p.drawCorners(a, firstPx, topRows, bottomRows)
	p.drawSide(a, firstPx, func(x int) bool { return x > p.coords.X2 })

	// Left corners and side from the mirrored buffer.
	for y := range cs {
		slices.Reverse(p.corner[y*cs : (y+1)*cs])
	}
	a = geom.NewArea(sh.X1, sh.Y1, min(sh.X1+cs-1, horMid-1), sh.Y1)
	firstPx = 0
	if p.clip.X1 > a.X1 {
		firstPx = p.clip.X1 - a.X1
		a.X1 = p.clip.X1
	}
	p.drawCorners(a, firstPx, topRows, bottomRows)
	p.drawSide(a, firstPx, func(x int) bool { return x < p.coords.X1 })

	// Top and bottom sides.
	a = geom.NewArea(sh.X1+cs, sh.Y1, sh.X2-cs, sh.Y1)
	if p.clip.X1 > a.X1 {
		a.X1 = p.clip.X1
	}
	if a.X1 > a.X2 {
		return
	}
	p.drawTopBottom(a, verMidDist)

	if !p.simple {
		p.drawMiddle(a)
	}
}

// drawCorners draws the top corner rows from the buffer top down and the
// bottom corner rows from the buffer bottom up. a spans one row of the
// visible corner columns starting at buffer column firstPx.
func (p *shadowPass) drawCorners(a geom.Area, firstPx, topRows, bottomRows int) {
	if a.X1 > a.X2 || firstPx >= p.cs {
		return
	}
	cs := p.cs
	for y := range topRows {
		a.Y1, a.Y2 = p.shArea.Y1+y, p.shArea.Y1+y
		p.drawCornerRow(a, p.corner[y*cs+firstPx:(y+1)*cs])
	}
	for y := range bottomRows {
		a.Y1, a.Y2 = p.shArea.Y2-y, p.shArea.Y2-y
		p.drawCornerRow(a, p.corner[y*cs+firstPx:(y+1)*cs])
	}
}

// drawCornerRow blends one row of corner coverage, combined with the
// active masks. The row keeps its partial coverage even when the masks
// report full cover.
func (p *shadowPass) drawCornerRow(a geom.Area, row []uint8) {
	buf := p.maskBuf[:min(a.Width(), len(row))]
	copy(buf, row)
	res := p.r.masks.Apply(buf, a.X1, a.Y1)
	if res == mask.FullCover {
		res = mask.Changed
	}
	p.r.blender.Fill(p.clip, a, p.c, buf, res, p.opa, p.mode)
}

// drawSide draws the vertical side between the corners using the
// innermost corner row, which is constant along the side.
func (p *shadowPass) drawSide(a geom.Area, firstPx int, outside func(x int) bool) {
	if a.X1 > a.X2 || firstPx >= p.cs {
		return
	}
	cs, sh := p.cs, p.shArea
	last := p.corner[(cs-1)*cs+firstPx : cs*cs]
	y1, y2 := sh.Y1+cs, sh.Y2-cs
	if y1 > y2 {
		return
	}

	if p.simple {
		for x := a.X1; x <= a.X2 && x-a.X1 < len(last); x++ {
			if !outside(x) {
				continue
			}
			opa := p.scaleOpa(last[x-a.X1])
			col := geom.NewArea(x, y1, x, y2)
			p.r.blender.Fill(p.clip, col, p.c, nil, mask.FullCover, opa, p.mode)
		}
		return
	}

	for y := y1; y <= y2; y++ {
		a.Y1, a.Y2 = y, y
		p.drawCornerRow(a, last)
	}
}

// drawTopBottom draws the horizontal sides between the corners using the
// innermost buffer column, which is constant along the side.
func (p *shadowPass) drawTopBottom(a geom.Area, verMidDist int) {
	cs, sh := p.cs, p.shArea

	yMax := cs - verMidDist
	if p.simple {
		yMax = min(p.sw/2+1, yMax)
	}
	for y := range yMax {
		a.Y1, a.Y2 = sh.Y1+y, sh.Y1+y
		p.drawSideRow(a, p.corner[y*cs+cs-1])
	}

	yMin := verMidDist
	if p.simple {
		yMin = cs - (sh.Y2 - p.coords.Y2)
	}
	for y := max(yMin, 0); y < cs; y++ {
		yy := sh.Y2 - cs + 1 + y
		a.Y1, a.Y2 = yy, yy
		p.drawSideRow(a, p.corner[(cs-y-1)*cs+cs-1])
	}
}

// drawSideRow fills one row of a horizontal side with coverage v.
func (p *shadowPass) drawSideRow(a geom.Area, v uint8) {
	if p.simple {
		p.r.blender.Fill(p.clip, a, p.c, nil, mask.FullCover, p.scaleOpa(v), p.mode)
		return
	}
	buf := p.maskBuf[:a.Width()]
	for i := range buf {
		buf[i] = v
	}
	res := p.r.masks.Apply(buf, a.X1, a.Y1)
	if res == mask.FullCover {
		res = mask.Changed
	}
	p.r.blender.Fill(p.clip, a, p.c, buf, res, p.opa, p.mode)
}

// drawMiddle fills the area enclosed by the four corner bands. Only the
// active masks shape it.
func (p *shadowPass) drawMiddle(a geom.Area) {
	buf := p.maskBuf[:a.Width()]
	for y := p.shArea.Y1 + p.cs; y <= p.shArea.Y2-p.cs; y++ {
		a.Y1, a.Y2 = y, y
		fillCover(buf)
		res := p.r.masks.Apply(buf, a.X1, y)
		p.r.blender.Fill(p.clip, a, p.c, buf, res, p.opa, p.mode)
	}
}

// scaleOpa combines the pass opacity with a coverage value.
func (p *shadowPass) scaleOpa(v uint8) Opa {
	if v == OpaCover && p.opa == OpaCover {
		return OpaCover
	}
	return Opa((int(p.opa) * int(v)) >> 8)
}
