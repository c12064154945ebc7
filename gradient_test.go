package rrect

import (
	"testing"

	"github.com/gogpu/rrect/internal/color"
)

func TestGradColorEndpoints(t *testing.T) {
	d := NewRectDesc()
	d.BgColor = RGB(10, 200, 30)
	d.BgGradColor = RGB(250, 0, 130)

	for _, extent := range []int{1, 2, 17, 100, 255, 1000} {
		if got := gradColor(&d, extent, 0); got != d.BgColor {
			t.Errorf("gradColor(%d, 0) = %v, want %v", extent, got, d.BgColor)
		}
		if got := gradColor(&d, extent, extent); got != d.BgGradColor {
			t.Errorf("gradColor(%d, %d) = %v, want %v", extent, extent, got, d.BgGradColor)
		}
	}
}

func TestGradColorStops(t *testing.T) {
	d := NewRectDesc()
	d.BgColor = Black
	d.BgGradColor = White
	d.BgMainColorStop = 64
	d.BgGradColorStop = 192

	// extent 100: lo = 25, hi = 75
	tests := []struct {
		pos  int
		want Color
	}{
		{0, Black},
		{25, Black},
		{50, color.Mix(White, Black, 127)},
		{75, White},
		{99, White},
	}
	for _, tt := range tests {
		if got := gradColor(&d, 100, tt.pos); got != tt.want {
			t.Errorf("gradColor(100, %d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestGradColorBetween(t *testing.T) {
	stops := [][2]uint8{{0, 255}, {0, 128}, {100, 200}, {30, 31}, {200, 100}}
	d := NewRectDesc()
	d.BgColor = RGB(20, 240, 90)
	d.BgGradColor = RGB(220, 10, 90)

	between := func(v, a, b uint8) bool {
		return (v >= a && v <= b) || (v >= b && v <= a)
	}
	for _, s := range stops {
		d.BgMainColorStop, d.BgGradColorStop = s[0], s[1]
		for pos := 0; pos <= 64; pos++ {
			c := gradColor(&d, 64, pos)
			if !between(c.R, d.BgColor.R, d.BgGradColor.R) ||
				!between(c.G, d.BgColor.G, d.BgGradColor.G) ||
				!between(c.B, d.BgColor.B, d.BgGradColor.B) {
				t.Errorf("stops %v: gradColor(64, %d) = %v, not between %v and %v",
					s, pos, c, d.BgColor, d.BgGradColor)
			}
		}
	}
}

func TestGradColorDoesNotModifyDescriptor(t *testing.T) {
	d := NewRectDesc()
	d.BgGradColor = Red
	before := d
	for pos := range 10 {
		gradColor(&d, 10, pos)
	}
	if d != before {
		t.Error("gradColor modified the descriptor")
	}
}
