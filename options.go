package rrect

// Option configures a Renderer during creation.
// Use functional options to replace the built-in collaborators.
//
// Example:
//
//	// Default software pipeline
//	r := rrect.NewRenderer(buf)
//
//	// Share a mask stack with the caller (dependency injection)
//	stack := mask.NewStack()
//	r := rrect.NewRenderer(buf, rrect.WithMaskStack(stack))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	blender Blender
	masks   MaskStack
	alloc   Allocator
	pattern PatternDrawer
}

// WithBlender sets a custom blend engine. By default the renderer
// composites into its destination buffer with the internal engine.
func WithBlender(b Blender) Option {
	return func(o *options) {
		o.blender = b
	}
}

// WithMaskStack sets the active-mask stack the passes register their
// radius masks on. Masks already on the stack clip every pass.
//
// Example:
//
//	stack := mask.NewStack()
//	stack.Push(mask.NewRadius(clipArea, 8, mask.Inside))
//	r := rrect.NewRenderer(buf, rrect.WithMaskStack(stack))
func WithMaskStack(m MaskStack) Option {
	return func(o *options) {
		o.masks = m
	}
}

// WithAllocator sets the scratch allocator used for mask rows,
// gradient maps and shadow corner buffers.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// WithPatternDrawer replaces the pass that runs between the background
// and the border.
func WithPatternDrawer(p PatternDrawer) Option {
	return func(o *options) {
		o.pattern = p
	}
}
