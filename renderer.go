package rrect

import (
	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/internal/blend"
	"github.com/gogpu/rrect/internal/scratch"
	"github.com/gogpu/rrect/mask"
	"github.com/gogpu/rrect/surface"
)

// Blender composites color spans into the destination.
//
// maskBuf, when res is not mask.FullCover, holds one coverage value per
// pixel of area ∩ clip in row-major order. colors passed to FillMap are
// indexed relative to area.X1.
type Blender interface {
	Fill(clip, area geom.Area, c Color, maskBuf []uint8, res mask.Result, opa Opa, mode BlendMode)
	FillMap(clip, area geom.Area, colors []Color, maskBuf []uint8, res mask.Result, opa Opa, mode BlendMode)
}

// MaskStack is the set of active coverage masks. *mask.Stack implements it.
type MaskStack interface {
	Push(m mask.Mask) mask.ID
	Remove(id mask.ID)
	Count() int
	Apply(buf []uint8, x, y int) mask.Result
}

// Allocator hands out scratch buffers for the duration of one pass.
// Buffers are zeroed and released in LIFO order.
// *scratch.Arena implements it.
type Allocator interface {
	Bytes(n int) []uint8
	ReleaseBytes(buf []uint8)
	Words(n int) []uint16
	ReleaseWords(buf []uint16)
	Colors(n int) []Color
	ReleaseColors(buf []Color)
}

// PatternDrawer draws the image or symbol layer between the background
// and the border. clip is already restricted to the destination buffer.
type PatternDrawer interface {
	DrawPattern(r *Renderer, coords, clip geom.Area, dsc *RectDesc)
}

// Renderer draws rounded rectangles into a surface.Buffer.
//
// A Renderer is not safe for concurrent use. Renderers drawing into
// disjoint regions with their own mask stacks and allocators may run in
// parallel.
type Renderer struct {
	dst     *surface.Buffer
	blender Blender
	masks   MaskStack
	alloc   Allocator
	pattern PatternDrawer
}

// defaultMaxFree bounds the number of idle buffers the default arena keeps
// per element type.
const defaultMaxFree = 8

// NewRenderer creates a renderer drawing into dst.
func NewRenderer(dst *surface.Buffer, opts ...Option) *Renderer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.blender == nil {
		o.blender = blend.NewEngine(dst)
	}
	if o.masks == nil {
		o.masks = mask.NewStack()
	}
	if o.alloc == nil {
		o.alloc = scratch.NewArena(defaultMaxFree)
	}
	if o.pattern == nil {
		o.pattern = patternPass{}
	}
	return &Renderer{
		dst:     dst,
		blender: o.blender,
		masks:   o.masks,
		alloc:   o.alloc,
		pattern: o.pattern,
	}
}

// Target returns the destination buffer.
func (r *Renderer) Target() *surface.Buffer { return r.dst }

// Blender returns the blend engine used by the passes.
func (r *Renderer) Blender() Blender { return r.blender }

// Masks returns the active mask stack.
func (r *Renderer) Masks() MaskStack { return r.masks }

// Allocator returns the scratch allocator.
func (r *Renderer) Allocator() Allocator { return r.alloc }

// DrawRect draws the shadow, background, pattern and border of the
// rectangle coords, restricted to clip. Degenerate rectangles and clips
// that miss the destination are ignored.
func (r *Renderer) DrawRect(coords, clip geom.Area, dsc *RectDesc) {
	if dsc == nil || coords.Width() < 1 || coords.Height() < 1 {
		return
	}
	clip, ok := clip.Intersect(r.dst.Area())
	if !ok {
		return
	}

	r.drawShadow(coords, clip, dsc)
	r.drawBg(coords, clip, dsc)
	r.pattern.DrawPattern(r, coords, clip, dsc)
	r.drawBorder(coords, clip, dsc)
}

// pushMask registers m on the mask stack. A full stack is reported and the
// pass continues without the mask.
func (r *Renderer) pushMask(m mask.Mask) mask.ID {
	id := r.masks.Push(m)
	if id == mask.InvalidID {
		Logger().Warn("rrect: mask stack full, mask dropped", "count", r.masks.Count())
	}
	return id
}

// fillCover sets every coverage value in buf to full.
func fillCover(buf []uint8) {
	for i := range buf {
		buf[i] = OpaCover
	}
}

// tail returns buf from ofs on, or an empty slice when ofs runs past it.
func tail(buf []uint8, ofs int) []uint8 {
	return buf[min(max(ofs, 0), len(buf)):]
}
