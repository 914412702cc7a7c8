// Package imgio decodes images into the NRGBA grids the sorting
// engine works on, and encodes them back out.
//
// What:
//
//   - Load / Decode: read an image from a file path or an io.Reader
//     (PNG, JPEG, GIF, TIFF, BMP, plus WEBP input) and convert it to
//     *image.NRGBA, the engine's pixel grid.
//   - Save / Encode: write an image to a file (format chosen from the
//     extension) or to an io.Writer in an explicit format — the stream
//     path is what the CLI uses for stdout.
//   - Scale: optional Lanczos pre-scale by percentage, applied before
//     sorting to trade resolution for speed.
//
// Why:
//
//   - The sorter package owns no I/O; this package is the decoding and
//     encoding collaborator it assumes, kept separate so the engine
//     stays a pure in-memory transformation.
//
// Errors:
//
//   - ErrUnsupportedFormat: the requested output format or file
//     extension is not one of the supported encoders.
package imgio
