// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/rrect/geom"
)

// TestNewBuffer tests buffer creation.
func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(geom.NewArea(10, 20, 109, 69))
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	if got := b.Bounds(); got != image.Rect(10, 20, 110, 70) {
		t.Errorf("Bounds() = %v", got)
	}
	if got := b.Area(); got != geom.NewArea(10, 20, 109, 69) {
		t.Errorf("Area() = %v", got)
	}
	if px := b.RGBAAt(10, 20); px != (color.RGBA{}) {
		t.Errorf("new buffer pixel = %v, want transparent", px)
	}
}

// TestNewBufferInvalidSize tests handling of empty areas.
func TestNewBufferInvalidSize(t *testing.T) {
	_, err := NewBuffer(geom.NewArea(0, 0, -1, 9))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewBuffer(empty) error = %v, want ErrInvalidDimensions", err)
	}
	_, err = NewBufferFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewBufferFromImage(empty) error = %v, want ErrInvalidDimensions", err)
	}
}

// TestBufferClear tests the Clear operation.
func TestBufferClear(t *testing.T) {
	b, _ := NewBuffer(geom.NewArea(0, 0, 9, 9))
	b.Clear(color.RGBA{R: 255, A: 255})

	snap := b.Snapshot()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if px := snap.RGBAAt(x, y); px != (color.RGBA{R: 255, A: 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want red", x, y, px)
			}
		}
	}

	// Snapshot is a copy.
	snap.SetRGBA(0, 0, color.RGBA{})
	if b.RGBAAt(0, 0).A != 255 {
		t.Error("Snapshot shares memory with the buffer")
	}
}

func TestBufferRow(t *testing.T) {
	b, _ := NewBuffer(geom.NewArea(5, 5, 14, 14))
	row := b.Row(7, 6, 8)
	if len(row) != 12 {
		t.Fatalf("len(Row) = %d, want 12", len(row))
	}
	row[0], row[3] = 9, 255
	if px := b.RGBAAt(6, 7); px.R != 9 || px.A != 255 {
		t.Errorf("write through Row not visible: %v", px)
	}
}

func TestBufferSavePNG(t *testing.T) {
	b, _ := NewBuffer(geom.NewArea(0, 0, 3, 3))
	b.Clear(color.White)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("decoded width = %d, want 4", img.Bounds().Dx())
	}
}

func TestBufferSavePNGBadPath(t *testing.T) {
	b, _ := NewBuffer(geom.NewArea(0, 0, 3, 3))
	if err := b.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into missing dir succeeded, want error")
	}
}
