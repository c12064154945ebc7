package rrect

import (
	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/mask"
)

// upscaleShift is the fixed-point precision of the blur buffers.
const upscaleShift = 6

// blurWidth returns the box width of the first blur pass for a shadow of
// width sw. The remainder is blurred again by the refinement pass.
func blurWidth(sw int) int {
	switch sw {
	case 1:
		return 1
	case 2, 3:
		return 2
	default:
		return sw >> 1
	}
}

// shadowCorner fills buf, a size x size square with size = sw + radius,
// with the blurred coverage of the top-right corner of a rounded rectangle
// as large as shRect. Row 0 is the outermost row and column size-1 the
// outermost column.
func (r *Renderer) shadowCorner(shRect geom.Area, buf []uint8, swOri, radius int) {
	size := swOri + radius

	// The corner in buffer-local coordinates: the rounded edge sits half
	// a blur width inside the top and right borders of the buffer.
	var local geom.Area
	local.X2 = swOri/2 + radius - 1
	if swOri%2 == 0 {
		local.X2--
	}
	local.Y1 = swOri/2 + 1
	local.X1 = local.X2 - shRect.Width()
	local.Y2 = local.Y1 + shRect.Height()
	edge := mask.NewRadius(local, radius, mask.Inside)

	sw := blurWidth(swOri)

	line := r.alloc.Bytes(size)
	defer r.alloc.ReleaseBytes(line)
	ups := r.alloc.Words(size * size)
	defer r.alloc.ReleaseWords(ups)

	for y := range size {
		fillCover(line)
		row := ups[y*size : (y+1)*size]
		if edge.Apply(line, 0, y) == mask.FullTransp {
			clear(row)
			continue
		}
		upscale(row, line, sw)
	}

	if sw == 1 {
		for i, v := range ups {
			buf[i] = uint8(min(v>>upscaleShift, 255))
		}
		return
	}

	r.blurCorner(size, sw, buf, ups)

	sw = swOri - sw
	if sw <= 1 {
		return
	}
	upscale(ups, buf, sw)
	r.blurCorner(size, sw, buf, ups)
}

// upscale stores (src[i] << upscaleShift) / sw into dst. Runs of equal
// source values reuse the previous quotient.
func upscale(dst []uint16, src []uint8, sw int) {
	for i, v := range src {
		if i > 0 && v == src[i-1] {
			dst[i] = dst[i-1]
			continue
		}
		dst[i] = uint16((int(v) << upscaleShift) / sw)
	}
}

// blurCorner runs a separable box blur of width sw over the upscaled
// size x size buffer ups and writes 8-bit coverage to out.
func (r *Renderer) blurCorner(size, sw int, out []uint8, ups []uint16) {
	sRight := sw >> 1
	sLeft := sw >> 1
	if sw%2 == 0 {
		sLeft--
	}

	hor := r.alloc.Words(size * size)
	defer r.alloc.ReleaseWords(hor)

	last := size - 1
	for y := range size {
		src := ups[y*size : (y+1)*size]
		dst := hor[y*size : (y+1)*size]

		// Window [x-sLeft, x+sRight] with the edge samples repeated.
		v := int(src[last]) * sRight
		for k := range sLeft + 1 {
			v += int(src[max(last-k, 0)])
		}
		for x := last; x >= 0; x-- {
			dst[x] = uint16(max(v, 0))
			v -= int(src[min(x+sRight, last)])
			v += int(src[max(x-sLeft-1, 0)])
		}
	}

	// Divide the horizontal sums back to the upscaled range.
	prevRaw, prevDiv := -1, uint16(0)
	for i, v := range hor {
		if int(v) != prevRaw {
			prevRaw, prevDiv = int(v), v/uint16(sw)
		}
		hor[i] = prevDiv
	}

	for x := range size {
		v := int(hor[x]) * sRight
		for k := range sLeft + 1 {
			v += int(hor[min(k, last)*size+x])
		}
		for y := range size {
			out[y*size+x] = uint8(min(max(v, 0)>>upscaleShift, 255))

			top := max(y-sRight, 0)
			v -= int(hor[top*size+x])
			bottom := min(y+sLeft+1, last)
			v += int(hor[bottom*size+x])
		}
	}
}
