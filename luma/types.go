// Package luma defines the Mode enum and its sentinel error.
package luma

import "errors"

// ErrInvalidMode indicates an unrecognized mode string or enumerator.
var ErrInvalidMode = errors.New("luma: invalid mode, must be one of: white, black, bright, dark")

// Mode selects the ordering key and comparison order used to sort the
// pixels of a line. The zero value is ModeWhite.
type Mode int

const (
	// ModeWhite sorts by Brightness ascending: darkest first, lightest last.
	ModeWhite Mode = iota
	// ModeBlack sorts by Brightness descending: lightest first, darkest last.
	ModeBlack
	// ModeBright sorts by Brightness descending, like ModeBlack.
	// It is kept as a distinct enumerator so a future key change
	// (e.g. max-channel instead of channel mean) stays local.
	ModeBright
	// ModeDark sorts by Darkness ascending.
	ModeDark

	numModes // sentinel, keep last
)

// modeNames maps each Mode to its canonical configuration string.
var modeNames = [numModes]string{
	ModeWhite:  "white",
	ModeBlack:  "black",
	ModeBright: "bright",
	ModeDark:   "dark",
}

// Valid reports whether m is one of the four defined modes.
// Complexity: O(1).
func (m Mode) Valid() bool {
	return m >= ModeWhite && m < numModes
}

// String returns the canonical configuration string for m,
// or "invalid" for out-of-range values.
func (m Mode) String() string {
	if !m.Valid() {
		return "invalid"
	}

	return modeNames[m]
}

// ParseMode converts a configuration string into a Mode.
// Returns ErrInvalidMode for anything outside the enumerated set.
// Matching is exact; callers normalize case upstream if they accept it.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if s == name {
			return Mode(m), nil
		}
	}

	return 0, ErrInvalidMode
}
