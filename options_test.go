package rrect

import (
	"testing"

	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/internal/blend"
	"github.com/gogpu/rrect/internal/scratch"
	"github.com/gogpu/rrect/mask"
)

type recordingPattern struct {
	calls int
	order *[]string
}

func (p *recordingPattern) DrawPattern(r *Renderer, _, _ geom.Area, _ *RectDesc) {
	p.calls++
	if p.order != nil {
		*p.order = append(*p.order, "pattern")
	}
}

func TestNewRendererDefaults(t *testing.T) {
	dst := newTestBuffer(t, 10, 10)
	r := NewRenderer(dst)

	if r.Target() != dst {
		t.Error("Target() did not return the destination buffer")
	}
	if _, ok := r.Blender().(*blend.Engine); !ok {
		t.Errorf("Blender() = %T, want *blend.Engine", r.Blender())
	}
	if _, ok := r.Masks().(*mask.Stack); !ok {
		t.Errorf("Masks() = %T, want *mask.Stack", r.Masks())
	}
	if _, ok := r.Allocator().(*scratch.Arena); !ok {
		t.Errorf("Allocator() = %T, want *scratch.Arena", r.Allocator())
	}
	if _, ok := r.pattern.(patternPass); !ok {
		t.Errorf("pattern = %T, want patternPass", r.pattern)
	}
}

func TestNewRendererWithOptions(t *testing.T) {
	dst := newTestBuffer(t, 10, 10)
	blender := newRecordingBlender(dst)
	stack := mask.NewStack()
	arena := scratch.NewArena(2)
	pattern := &recordingPattern{}

	r := NewRenderer(dst,
		WithBlender(blender),
		WithMaskStack(stack),
		WithAllocator(arena),
		WithPatternDrawer(pattern),
	)

	if r.Blender() != blender {
		t.Error("WithBlender was not applied")
	}
	if r.Masks() != stack {
		t.Error("WithMaskStack was not applied")
	}
	if r.Allocator() != arena {
		t.Error("WithAllocator was not applied")
	}

	d := NewRectDesc()
	r.DrawRect(geom.NewArea(0, 0, 9, 9), dst.Area(), &d)

	if pattern.calls != 1 {
		t.Errorf("pattern calls = %d, want 1", pattern.calls)
	}
	if len(blender.calls) == 0 {
		t.Error("injected blender received no fills")
	}
}
