// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mask

// Result summarizes what applying one or more masks did to a buffer.
type Result uint8

const (
	// FullTransp means every pixel of the run is fully transparent.
	// The buffer has been zeroed and the run can be skipped.
	FullTransp Result = iota
	// FullCover means no mask changed the buffer. The run may be drawn
	// without a mask if the caller seeded the buffer with 255.
	FullCover
	// Changed means at least one value was reduced and the buffer must
	// be used as per-pixel coverage.
	Changed
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case FullTransp:
		return "FullTransp"
	case FullCover:
		return "FullCover"
	case Changed:
		return "Changed"
	default:
		return "Unknown"
	}
}

// Mask is a coverage predicate sampled one horizontal run at a time.
//
// Apply multiplies the mask's coverage for the len(buf) pixels starting
// at (x, y) into buf and reports the outcome.
type Mask interface {
	Apply(buf []uint8, x, y int) Result
}

// Func adapts an ordinary function to the Mask interface.
type Func func(buf []uint8, x, y int) Result

// Apply calls f(buf, x, y).
func (f Func) Apply(buf []uint8, x, y int) Result {
	return f(buf, x, y)
}

// mulCov multiplies an 8-bit value by an 8-bit coverage with rounding.
func mulCov(v, cov uint8) uint8 {
	switch cov {
	case 0:
		return 0
	case 255:
		return v
	}
	return uint8((uint16(v)*uint16(cov) + 127) / 255)
}
