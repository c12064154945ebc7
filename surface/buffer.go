// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/gogpu/rrect/geom"
)

// ErrInvalidDimensions is returned when a buffer area is empty.
var ErrInvalidDimensions = errors.New("surface: invalid dimensions")

// Buffer is a CPU pixel buffer covering a device area.
//
// The buffer is backed by an *image.RGBA (premultiplied alpha) whose
// bounds are exactly the device area, so a buffer may start at a non-zero
// origin like a partial display buffer. Pixel coordinates used with a
// Buffer are always absolute device coordinates.
//
// Thread safety: concurrent writes to overlapping regions require
// external synchronization.
type Buffer struct {
	area geom.Area
	img  *image.RGBA
}

// NewBuffer creates a transparent buffer covering area.
func NewBuffer(area geom.Area) (*Buffer, error) {
	if area.IsEmpty() {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		area: area,
		img:  image.NewRGBA(area.Rect()),
	}, nil
}

// NewBufferFromImage creates a buffer that renders into img directly.
func NewBufferFromImage(img *image.RGBA) (*Buffer, error) {
	area := geom.FromRect(img.Bounds())
	if area.IsEmpty() {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{area: area, img: img}, nil
}

// Area returns the device area covered by the buffer.
func (b *Buffer) Area() geom.Area {
	return b.area
}

// Clear fills the whole buffer with c.
func (b *Buffer) Clear(c color.Color) {
	draw.Draw(b.img, b.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// RGBAAt returns the premultiplied pixel at (x, y), or the zero value
// outside the buffer.
func (b *Buffer) RGBAAt(x, y int) color.RGBA {
	return b.img.RGBAAt(x, y)
}

// Row returns the RGBA bytes of row y from column x1 to x2 inclusive.
// The caller must keep the span inside the buffer.
func (b *Buffer) Row(y, x1, x2 int) []uint8 {
	start := b.img.PixOffset(x1, y)
	end := b.img.PixOffset(x2, y) + 4
	return b.img.Pix[start:end]
}

// Image returns the backing image. Writes to it are visible in the buffer.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// Snapshot returns a copy of the current contents.
func (b *Buffer) Snapshot() *image.RGBA {
	result := image.NewRGBA(b.img.Bounds())
	copy(result.Pix, b.img.Pix)
	return result
}

// SavePNG writes the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, b.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return b.img.Bounds()
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}
