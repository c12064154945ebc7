package blend

import (
	stdcolor "image/color"
	"testing"

	"github.com/gogpu/rrect/geom"
	"github.com/gogpu/rrect/internal/color"
	"github.com/gogpu/rrect/mask"
	"github.com/gogpu/rrect/surface"
)

func newTestBuffer(t *testing.T, a geom.Area) *surface.Buffer {
	t.Helper()
	b, err := surface.NewBuffer(a)
	if err != nil {
		t.Fatalf("NewBuffer(%v) error = %v", a, err)
	}
	return b
}

var opaqueRed = stdcolor.RGBA{R: 255, A: 255}

func TestEngineFillFullCover(t *testing.T) {
	buf := newTestBuffer(t, geom.NewArea(0, 0, 9, 9))
	e := NewEngine(buf)

	e.Fill(buf.Area(), geom.NewArea(2, 2, 5, 5), color.Red, nil, mask.FullCover, color.OpaCover, ModeNormal)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := stdcolor.RGBA{}
			if x >= 2 && x <= 5 && y >= 2 && y <= 5 {
				want = opaqueRed
			}
			if got := buf.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEngineFillClipped(t *testing.T) {
	buf := newTestBuffer(t, geom.NewArea(0, 0, 9, 9))
	e := NewEngine(buf)

	e.Fill(geom.NewArea(0, 0, 4, 9), geom.NewArea(-5, 0, 20, 0), color.Red, nil, mask.FullCover, color.OpaCover, ModeNormal)

	if got := buf.RGBAAt(4, 0); got != opaqueRed {
		t.Errorf("pixel inside clip = %v, want red", got)
	}
	if got := buf.RGBAAt(5, 0); got != (stdcolor.RGBA{}) {
		t.Errorf("pixel outside clip = %v, want transparent", got)
	}
}

func TestEngineFillSkips(t *testing.T) {
	tests := []struct {
		name string
		res  mask.Result
		opa  color.Opa
	}{
		{"full transparent mask", mask.FullTransp, color.OpaCover},
		{"opacity below minimum", mask.FullCover, color.OpaMin - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newTestBuffer(t, geom.NewArea(0, 0, 3, 3))
			NewEngine(buf).Fill(buf.Area(), buf.Area(), color.Red, nil, tt.res, tt.opa, ModeNormal)
			if got := buf.RGBAAt(0, 0); got != (stdcolor.RGBA{}) {
				t.Errorf("pixel = %v, want untouched", got)
			}
		})
	}
}

func TestEngineFillMaskIndexedFromClippedStart(t *testing.T) {
	buf := newTestBuffer(t, geom.NewArea(0, 0, 9, 0))
	e := NewEngine(buf)

	// The fill area starts at x=-3 but clip starts at x=2: mask[0] is x=2.
	m := []uint8{255, 0, 255, 0, 255, 0, 255, 0}
	e.Fill(geom.NewArea(2, 0, 9, 0), geom.NewArea(-3, 0, 9, 0), color.Red, m, mask.Changed, color.OpaCover, ModeNormal)

	for x := 2; x <= 9; x++ {
		want := stdcolor.RGBA{}
		if (x-2)%2 == 0 {
			want = opaqueRed
		}
		if got := buf.RGBAAt(x, 0); got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestEngineFillMaskOutsideBuffer(t *testing.T) {
	// A buffer that starts at x=5: the mask still starts at the clip start.
	buf := newTestBuffer(t, geom.NewArea(5, 0, 9, 0))
	e := NewEngine(buf)

	m := []uint8{0, 0, 0, 0, 0, 255, 0, 255, 0, 255}
	e.Fill(geom.NewArea(0, 0, 9, 0), geom.NewArea(0, 0, 9, 0), color.Red, m, mask.Changed, color.OpaCover, ModeNormal)

	for x := 5; x <= 9; x++ {
		want := stdcolor.RGBA{}
		if x%2 == 1 {
			want = opaqueRed
		}
		if got := buf.RGBAAt(x, 0); got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestEngineFillPartialOpacity(t *testing.T) {
	buf := newTestBuffer(t, geom.NewArea(0, 0, 0, 0))
	buf.Clear(stdcolor.White)
	NewEngine(buf).Fill(buf.Area(), buf.Area(), color.Black, nil, mask.FullCover, 128, ModeNormal)

	got := buf.RGBAAt(0, 0)
	if got.A != 255 || got.R != 127 || got.G != 127 || got.B != 127 {
		t.Errorf("half black over white = %v, want gray 127", got)
	}
}

func TestEngineFillOpacityAboveMaxIsCover(t *testing.T) {
	buf := newTestBuffer(t, geom.NewArea(0, 0, 0, 0))
	buf.Clear(stdcolor.White)
	NewEngine(buf).Fill(buf.Area(), buf.Area(), color.Black, nil, mask.FullCover, color.OpaMax+1, ModeNormal)

	if got := buf.RGBAAt(0, 0); got != (stdcolor.RGBA{A: 255}) {
		t.Errorf("pixel = %v, want opaque black", got)
	}
}

func TestEngineFillMap(t *testing.T) {
	buf := newTestBuffer(t, geom.NewArea(0, 0, 3, 0))
	e := NewEngine(buf)

	colors := []color.Color{color.Red, color.Green, color.Blue, color.White}
	e.FillMap(geom.NewArea(1, 0, 3, 0), geom.NewArea(0, 0, 3, 0), colors, nil, mask.FullCover, color.OpaCover, ModeNormal)

	if got := buf.RGBAAt(0, 0); got != (stdcolor.RGBA{}) {
		t.Errorf("clipped pixel = %v, want transparent", got)
	}
	if got := buf.RGBAAt(1, 0); got != (stdcolor.RGBA{G: 255, A: 255}) {
		t.Errorf("pixel 1 = %v, want green", got)
	}
	if got := buf.RGBAAt(3, 0); got != (stdcolor.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel 3 = %v, want white", got)
	}
}
