// Package luma derives scalar ordering keys from pixel colors and
// binds them to sort modes.
//
// What:
//
//   - Brightness: the unweighted channel mean (r+g+b)/3 of an 8-bit
//     NRGBA sample, in [0,255]. Alpha never participates.
//   - Darkness: the complement 255−Brightness, used by ModeDark.
//   - Mode: a closed enum (ModeWhite, ModeBlack, ModeBright, ModeDark)
//     pairing a key with an ascending or descending comparison order.
//   - Comparator: a per-mode less-than over two colors, ready to feed
//     into a stable sort.
//
// Why:
//
//   - Pixel-sorting effects order the samples of a row or column by how
//     light or dark they are; the mode decides which end of a line the
//     light pixels collect at.
//   - Modeling modes as a closed enum with exhaustive switches makes a
//     new mode a compile-visible extension point rather than a runtime
//     string comparison.
//
// Modes:
//
//   - ModeWhite:  key = Brightness, ascending  (darkest first).
//   - ModeBlack:  key = Brightness, descending (lightest first).
//   - ModeBright: key = Brightness, descending (lightest first).
//   - ModeDark:   key = Darkness,   ascending.
//
// All functions are pure; none allocate or error for valid inputs.
// Complexity: O(1) per pixel.
//
// Errors:
//
//   - ErrInvalidMode: an unrecognized mode string or enumerator value.
package luma
