// Package sorter defines the Direction enum, Options, and sentinel
// errors for the line-sorting engine.
package sorter

import "errors"

// Sentinel errors for sorter operations.
var (
	// ErrInvalidDirection indicates an unrecognized direction string or enumerator.
	ErrInvalidDirection = errors.New("sorter: invalid direction, must be one of: h, v")
	// ErrNilImage indicates a nil grid handle was passed to Sort.
	ErrNilImage = errors.New("sorter: image must be non-nil")
)

// Direction selects which axis is sorted first during the two-pass
// run. The zero value is HorizontalFirst.
type Direction int

const (
	// HorizontalFirst ("h") sorts every column, then every row.
	HorizontalFirst Direction = iota
	// VerticalFirst ("v") sorts every row, then every column.
	VerticalFirst

	numDirections // sentinel, keep last
)

// directionNames maps each Direction to its configuration string.
var directionNames = [numDirections]string{
	HorizontalFirst: "h",
	VerticalFirst:   "v",
}

// axis identifies one of the two line orientations of a pass.
type axis int

const (
	axisColumns axis = iota
	axisRows
)

// Valid reports whether d is one of the two defined directions.
// Complexity: O(1).
func (d Direction) Valid() bool {
	return d >= HorizontalFirst && d < numDirections
}

// String returns the configuration string for d, or "invalid" for
// out-of-range values.
func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}

	return directionNames[d]
}

// ParseDirection converts a configuration string into a Direction.
// Returns ErrInvalidDirection for anything outside the enumerated set.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if s == name {
			return Direction(d), nil
		}
	}

	return 0, ErrInvalidDirection
}

// passes returns the ordered pair of axis passes d stands for.
// Both directions share one sort path; only the order differs.
func (d Direction) passes() [2]axis {
	if d == VerticalFirst {
		return [2]axis{axisRows, axisColumns}
	}

	return [2]axis{axisColumns, axisRows}
}

// Options contains tunable parameters for one Sort run.
type Options struct {
	// Parallelism bounds how many lines of a single pass are sorted
	// concurrently. Values below 1 are treated as 1 (serial).
	// Output is identical at any parallelism level.
	Parallelism int
}

// DefaultOptions returns an Options with serial line processing.
func DefaultOptions() Options {
	return Options{Parallelism: 1}
}
