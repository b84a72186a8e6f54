// Package qoi provides a pure Go encoder and decoder for the QOI
// ("Quite OK Image") format.
//
// QOI is a simple, fast, lossless image format: a 14-byte header
// followed by a stream of per-pixel opcodes (a tiny running cache of
// recently seen colors, small delta encodings for colors close to the
// previous pixel, run-length encoding for repeated pixels, and literal
// fallbacks) and an 8-byte end marker. This package implements the
// full format without any CGo dependencies, making it fully portable
// and easy to cross-compile.
//
// The package supports:
//   - Lossless encoding and decoding, RGB and RGBA
//   - The sRGB and all-channels-linear colorspace tags
//   - Registration with the standard library's image package
package qoi
