// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mask

import (
	"math"

	"github.com/gogpu/rrect/geom"
)

// Polarity selects which side of a rounded rectangle a Radius mask keeps.
type Polarity uint8

const (
	// Inside keeps the rounded rectangle: coverage 255 inside, an
	// antialiased ramp on the boundary, 0 outside.
	Inside Polarity = iota
	// Outside keeps everything except the rounded rectangle.
	Outside
)

// Radius is a rounded-rectangle mask.
//
// Pixel (x, y) is sampled at its centre (x+0.5, y+0.5). The rectangle
// spans [X1, X2+1) x [Y1, Y2+1) and every corner is cut by a circle of
// the mask's radius, with a one pixel wide linear antialiasing ramp.
type Radius struct {
	area     geom.Area
	radius   int
	polarity Polarity
}

// NewRadius creates a rounded-rectangle mask. The radius is clamped to
// half of the shorter side of area.
func NewRadius(area geom.Area, radius int, p Polarity) *Radius {
	return &Radius{
		area:     area,
		radius:   geom.ClampRadius(radius, area),
		polarity: p,
	}
}

// Area returns the masked rectangle.
func (m *Radius) Area() geom.Area { return m.area }

// Radius returns the effective (clamped) corner radius.
func (m *Radius) Radius() int { return m.radius }

// Polarity returns the mask polarity.
func (m *Radius) Polarity() Polarity { return m.polarity }

// Coverage returns the mask value at pixel (x, y), honoring polarity.
func (m *Radius) Coverage(x, y int) uint8 {
	c := m.insideCoverage(x, y)
	if m.polarity == Outside {
		return 255 - c
	}
	return c
}

// insideCoverage is the coverage of the rounded rectangle itself.
func (m *Radius) insideCoverage(x, y int) uint8 {
	a := m.area
	if !a.Contains(x, y) {
		return 0
	}
	r := m.radius
	if r == 0 {
		return 255
	}
	dy := cornerDist(y, a.Y1, a.Y2, r)
	if dy == 0 {
		return 255
	}
	dx := cornerDist(x, a.X1, a.X2, r)
	if dx == 0 {
		return 255
	}
	d := math.Hypot(dx, dy)
	v := float64(r) - d + 0.5
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// cornerDist returns how far the centre of pixel p lies beyond the corner
// circle centres on one axis, or 0 if p is between them.
func cornerDist(p, lo, hi, r int) float64 {
	c := float64(p) + 0.5
	if lc := float64(lo + r); c < lc {
		return lc - c
	}
	if hc := float64(hi + 1 - r); c > hc {
		return c - hc
	}
	return 0
}

// Apply implements Mask.
func (m *Radius) Apply(buf []uint8, x, y int) Result {
	n := len(buf)
	if n == 0 {
		return FullCover
	}
	a := m.area
	// An empty area encloses no pixel. Borders wider than half the
	// rectangle produce one for their inner cut.
	if a.IsEmpty() {
		if m.polarity == Inside {
			clear(buf)
			return FullTransp
		}
		return FullCover
	}
	rowIn := y >= a.Y1 && y <= a.Y2

	if m.polarity == Inside {
		if !rowIn || x > a.X2 || x+n-1 < a.X1 {
			clear(buf)
			return FullTransp
		}
		if m.isStraightRow(y) {
			return m.applyStraightInside(buf, x)
		}
	} else {
		if !rowIn || x > a.X2 || x+n-1 < a.X1 {
			return FullCover
		}
		if m.isStraightRow(y) {
			return m.applyStraightOutside(buf, x)
		}
	}
	return m.applyCorner(buf, x, y)
}

// isStraightRow reports whether row y is not touched by any corner circle.
func (m *Radius) isStraightRow(y int) bool {
	return m.radius == 0 || (y >= m.area.Y1+m.radius && y <= m.area.Y2-m.radius)
}

// applyStraightInside keeps [X1, X2] of a row outside the corner bands.
func (m *Radius) applyStraightInside(buf []uint8, x int) Result {
	first := max(m.area.X1-x, 0)
	last := min(m.area.X2-x, len(buf)-1)
	if first == 0 && last == len(buf)-1 {
		return FullCover
	}
	clear(buf[:first])
	clear(buf[last+1:])
	return Changed
}

// applyStraightOutside clears [X1, X2] of a row outside the corner bands.
func (m *Radius) applyStraightOutside(buf []uint8, x int) Result {
	first := max(m.area.X1-x, 0)
	last := min(m.area.X2-x, len(buf)-1)
	clear(buf[first : last+1])
	if first == 0 && last == len(buf)-1 {
		return FullTransp
	}
	return Changed
}

// applyCorner samples every pixel of a row that crosses a corner band.
func (m *Radius) applyCorner(buf []uint8, x, y int) Result {
	changed := false
	visible := false
	for i := range buf {
		cov := m.Coverage(x+i, y)
		if cov != 0 {
			visible = true
		}
		if cov != 255 {
			changed = true
			buf[i] = mulCov(buf[i], cov)
		}
	}
	if !visible {
		clear(buf)
		return FullTransp
	}
	if changed {
		return Changed
	}
	return FullCover
}
