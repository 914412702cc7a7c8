package luma

import "image/color"

// maxBrightness is the top of the 8-bit brightness range.
const maxBrightness = 255

// Brightness returns the unweighted channel mean (r+g+b)/3 of c,
// in [0,255]. Alpha is ignored.
// Complexity: O(1).
func Brightness(c color.NRGBA) uint8 {
	return uint8((uint16(c.R) + uint16(c.G) + uint16(c.B)) / 3)
}

// Darkness returns the complement 255−Brightness(c), the key used by
// ModeDark. Complexity: O(1).
func Darkness(c color.NRGBA) uint8 {
	return maxBrightness - Brightness(c)
}

// Key returns the scalar ordering key m assigns to c:
// Darkness for ModeDark, Brightness for every other mode.
// Out-of-range modes fall back to Brightness; callers validate m first.
func (m Mode) Key(c color.NRGBA) uint8 {
	if m == ModeDark {
		return Darkness(c)
	}

	return Brightness(c)
}

// Descending reports whether m orders its key from high to low.
func (m Mode) Descending() bool {
	switch m {
	case ModeWhite, ModeDark:
		return false
	case ModeBlack, ModeBright:
		return true
	default:
		return false
	}
}

// Comparator returns a strict less-than over two colors implementing
// m's key and order, suitable for a stable sort. The returned func is
// pure and safe for concurrent use.
// Complexity: O(1) per comparison.
func (m Mode) Comparator() func(a, b color.NRGBA) bool {
	if m.Descending() {
		return func(a, b color.NRGBA) bool {
			return m.Key(a) > m.Key(b)
		}
	}

	return func(a, b color.NRGBA) bool {
		return m.Key(a) < m.Key(b)
	}
}
