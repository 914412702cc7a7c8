// Package sorter reorders the pixels of an image line by line,
// producing the classic "pixel sorting" glitch effect.
//
// What:
//
//   - Sort runs two sequential passes over a *image.NRGBA grid: one
//     pass sorts every column, the other sorts every row, each line
//     independently and stably by the active luma.Mode comparator.
//   - Direction picks the pass order: HorizontalFirst ("h") sorts all
//     columns before all rows, VerticalFirst ("v") sorts all rows
//     before all columns. The second pass observes the fully
//     completed output of the first.
//   - Options.Parallelism bounds how many lines of one pass are
//     sorted concurrently; lines within a pass are independent.
//
// Why:
//
//   - Glitch art: the visible streaking differs sharply between the
//     two pass orders, so the axis order is part of the effect.
//   - Stability is a contract, not an accident: pixels with equal
//     brightness keep their relative order, which makes output
//     reproducible and testable.
//
// Invariants:
//
//   - Grid dimensions never change; each processed line's output is a
//     permutation of its input.
//   - Validation happens before any pixel moves: an invalid mode or
//     direction leaves the image untouched.
//   - Empty (W=0 or H=0) and 1×1 grids are successful no-ops.
//
// Complexity:
//
//   - Sort: O(W·H·(log W + log H)) time, O(max(W,H)) memory per worker.
//
// Errors:
//
//   - luma.ErrInvalidMode: unrecognized mode enumerator.
//   - ErrInvalidDirection: unrecognized direction enumerator.
//   - ErrNilImage: nil grid handle.
package sorter
