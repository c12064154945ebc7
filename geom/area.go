// Package geom provides the integer geometry shared by the rectangle
// renderer, its masks and its blend engine.
package geom

import "image"

// Area is an axis-aligned rectangle with inclusive integer bounds.
//
// Width is X2-X1+1 and height is Y2-Y1+1. An Area whose width or height is
// below 1 is empty; empty areas are valid values and mean "nothing to draw".
type Area struct {
	X1, Y1 int
	X2, Y2 int
}

// NewArea creates an Area from its inclusive corners.
func NewArea(x1, y1, x2, y2 int) Area {
	return Area{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns X2-X1+1. It is zero or negative for empty areas.
func (a Area) Width() int {
	return a.X2 - a.X1 + 1
}

// Height returns Y2-Y1+1. It is zero or negative for empty areas.
func (a Area) Height() int {
	return a.Y2 - a.Y1 + 1
}

// IsEmpty reports whether the area covers no pixel.
func (a Area) IsEmpty() bool {
	return a.Width() < 1 || a.Height() < 1
}

// Intersect returns the common part of a and b.
// The boolean is false when the two areas do not overlap; the returned
// Area is then empty but otherwise unspecified.
func (a Area) Intersect(b Area) (Area, bool) {
	r := Area{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	return r, !r.IsEmpty()
}

// Translate returns the area moved by (dx, dy).
func (a Area) Translate(dx, dy int) Area {
	return Area{X1: a.X1 + dx, Y1: a.Y1 + dy, X2: a.X2 + dx, Y2: a.Y2 + dy}
}

// Inset returns the area shrunk by d on every side. A negative d grows it.
func (a Area) Inset(d int) Area {
	return Area{X1: a.X1 + d, Y1: a.Y1 + d, X2: a.X2 - d, Y2: a.Y2 - d}
}

// Contains reports whether the pixel (x, y) lies inside the area.
func (a Area) Contains(x, y int) bool {
	return x >= a.X1 && x <= a.X2 && y >= a.Y1 && y <= a.Y2
}

// IsIn reports whether a lies completely inside parent when the parent's
// corners are rounded with the given radius.
func (a Area) IsIn(parent Area, radius int) bool {
	if a.X1 < parent.X1 || a.Y1 < parent.Y1 || a.X2 > parent.X2 || a.Y2 > parent.Y2 {
		return false
	}
	r := ClampRadius(radius, parent)
	if r == 0 {
		return true
	}
	return inRounded(a.X1, a.Y1, parent, r) &&
		inRounded(a.X2, a.Y1, parent, r) &&
		inRounded(a.X1, a.Y2, parent, r) &&
		inRounded(a.X2, a.Y2, parent, r)
}

// inRounded reports whether the pixel (x, y) is inside the corner circles
// of parent. The pixel is assumed to be inside parent's bounding box.
func inRounded(x, y int, parent Area, r int) bool {
	var cx, cy int
	switch {
	case x < parent.X1+r:
		cx = parent.X1 + r
	case x > parent.X2-r:
		cx = parent.X2 - r
	default:
		return true
	}
	switch {
	case y < parent.Y1+r:
		cy = parent.Y1 + r
	case y > parent.Y2-r:
		cy = parent.Y2 - r
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// Rect converts the area to the half-open image.Rectangle it covers.
func (a Area) Rect() image.Rectangle {
	return image.Rect(a.X1, a.Y1, a.X2+1, a.Y2+1)
}

// FromRect converts a half-open image.Rectangle to an Area.
func FromRect(r image.Rectangle) Area {
	return Area{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X - 1, Y2: r.Max.Y - 1}
}

// ClampRadius limits r to half of the shorter side of a, so opposing
// corners never overlap. Negative radii become zero.
func ClampRadius(r int, a Area) int {
	short := min(a.Width(), a.Height())
	if r > short>>1 {
		r = short >> 1
	}
	if r < 0 {
		r = 0
	}
	return r
}
