// Package pixsort turns a decoded image into a "sorted pixels" glitch
// artwork by reordering the samples of every row and column according
// to a brightness-derived key.
//
// 🚀 What is pixsort?
//
//	A small, focused library plus CLI that brings together:
//		• Key functions: four brightness/darkness sort modes (white, black, bright, dark)
//		• Line sorting: stable per-row and per-column pixel reordering
//		• Two-pass directions: columns-then-rows ("h") or rows-then-columns ("v")
//		• Image I/O: PNG/JPEG/GIF/TIFF/BMP/WEBP in, PNG/JPEG/... out, files or stdio
//
// ✨ Why choose pixsort?
//
//   - Deterministic – stable sorts, reproducible output, pixel for pixel
//   - Minimal API – one Sort call, two small enums, one Options struct
//   - Fail-fast – invalid mode or direction is rejected before any pixel moves
//   - Parallel-ready – independent lines of a pass fan out across workers
//
// Everything is organized under four packages:
//
//	luma/       — brightness measure, Mode enum, per-mode comparators
//	sorter/     — the two-pass line-sorting engine over *image.NRGBA
//	imgio/      — decoding, encoding, and pre-scaling collaborators
//	cmd/pixsort — the command-line tool (-i, -o, -d, -m)
//
// Quick ASCII example, one row sorted in mode "white" (darkest first):
//
//	[200  50 120]  →  [ 50 120 200]
//
// Dive into the per-package docs for contracts, invariants and
// complexity notes.
//
//	go get github.com/pixkit/pixsort
package pixsort
