// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the destination pixel buffer for the rectangle
// renderer.
//
// A Buffer covers a device area, which need not start at the origin: a
// display driver that refreshes the screen in bands can hand the renderer
// a buffer for one band at a time and draw every rectangle into it with
// absolute coordinates.
//
// # Usage
//
//	buf, err := surface.NewBuffer(geom.NewArea(0, 0, 319, 239))
//	if err != nil {
//	    return err
//	}
//	buf.Clear(color.White)
//
//	r := rrect.NewRenderer(buf)
//	r.DrawRect(coords, buf.Area(), &dsc)
//
//	err = buf.SavePNG("out.png")
//
// Pixels are stored premultiplied, matching image.RGBA.
package surface
