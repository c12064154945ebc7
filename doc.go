// Package rrect draws rounded rectangles into CPU pixel buffers.
//
// # Overview
//
// rrect is the rectangle core of a software GUI renderer. One call draws a
// rectangle's drop shadow, its background (solid or a linear gradient),
// an optional image or symbol pattern and its border, in that order. Every
// pass honors the corner radius, the per-side border selection and any
// coverage masks already active on the renderer's mask stack.
//
// # Quick Start
//
//	import (
//	    "image"
//
//	    "github.com/gogpu/rrect"
//	    "github.com/gogpu/rrect/geom"
//	    "github.com/gogpu/rrect/surface"
//	)
//
//	buf, _ := surface.NewBuffer(geom.NewArea(0, 0, 199, 99))
//	buf.Clear(image.White)
//
//	r := rrect.NewRenderer(buf)
//
//	d := rrect.NewRectDesc()
//	d.Radius = 12
//	d.BgColor = rrect.Hex("#2196F3")
//	d.BorderWidth = 2
//	d.ShadowWidth = 16
//	d.ShadowOfsY = 4
//
//	r.DrawRect(geom.NewArea(20, 20, 179, 79), buf.Area(), &d)
//	buf.SavePNG("button.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, RectDesc, Option
//   - Public leaves: geom (areas), mask (radius masks and the mask stack),
//     surface (destination buffers)
//   - Internal: blend (compositing engine), color (RGB and opacity),
//     scratch (per-pass buffer arena)
//
// The blend engine, mask stack, scratch allocator and pattern pass are
// collaborators behind interfaces and can be replaced with options.
//
// # Coordinate System
//
// Areas use inclusive integer bounds on the device grid:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// A destination buffer may start at any origin, for example when it holds
// one stripe of a larger display.
//
// # Concurrency
//
// A Renderer is not safe for concurrent use. Renderers with their own mask
// stacks and allocators may draw into disjoint regions in parallel.
package rrect
