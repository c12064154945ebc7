package rrect

import "github.com/gogpu/rrect/internal/color"

// gradColor returns the background gradient color at pos along an axis of
// the given extent. Positions up to the main stop get BgColor, positions
// from the gradient stop on get BgGradColor, and positions in between are
// interpolated linearly.
func gradColor(dsc *RectDesc, extent, pos int) Color {
	lo := int(dsc.BgMainColorStop) * extent / 255
	if pos <= lo {
		return dsc.BgColor
	}
	hi := int(dsc.BgGradColorStop) * extent / 255
	if pos >= hi {
		return dsc.BgGradColor
	}
	w := (pos - lo) * 255 / (hi - lo)
	return color.Mix(dsc.BgGradColor, dsc.BgColor, uint8(w))
}
