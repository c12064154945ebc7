// Package blend implements the blend engine of the rectangle renderer.
//
// All blend operations work with premultiplied alpha values in the range
// 0-255, the layout of image.RGBA. A source pixel is an opaque color
// scaled by the effective opacity (fill opacity times mask coverage).
package blend

// Mode selects how a source color is composited onto the destination.
type Mode uint8

const (
	// ModeNormal composites source over destination.
	ModeNormal Mode = iota
	// ModeAdditive adds source to destination (clamped to 255).
	ModeAdditive
	// ModeSubtractive subtracts source from destination (clamped to 0).
	ModeSubtractive
	// ModeMultiply multiplies source and destination.
	ModeMultiply
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeAdditive:
		return "Additive"
	case ModeSubtractive:
		return "Subtractive"
	case ModeMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
// Parameters:
//   - sr, sg, sb, sa: source color (red, green, blue, alpha)
//   - dr, dg, db, da: destination color (red, green, blue, alpha)
//
// Returns: resulting color (r, g, b, a) after blending.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given mode.
// Returns the source-over function for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case ModeAdditive:
		return blendPlus
	case ModeSubtractive:
		return blendSubtract
	case ModeMultiply:
		return blendMultiply
	default:
		return blendSourceOver
	}
}

// blendSourceOver composites source over destination (default blend mode).
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendPlus adds source and destination colors (clamped to 255).
// Formula: min(S + D, 255)
func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// blendSubtract darkens the destination by the source color.
// Formula: max(D - S, 0), alpha kept from destination.
func blendSubtract(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return subClamp(dr, sr), subClamp(dg, sg), subClamp(db, sb), da
}

// blendMultiply is the separable multiply mode on premultiplied values.
// Formula: S*(1-Da) + D*(1-Sa) + S*D, alpha Sa + Da*(1-Sa)
func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	invDa := 255 - da
	ch := func(s, d byte) byte {
		return addClamp(addClamp(mulDiv255(s, invDa), mulDiv255(d, invSa)), mulDiv255(s, d))
	}
	return ch(sr, dr), ch(sg, dg), ch(sb, db), addClamp(sa, mulDiv255(da, invSa))
}

// mulDiv255 multiplies two byte values and divides by 255 with proper rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// subClamp subtracts b from a, clamping to 0.
func subClamp(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}
