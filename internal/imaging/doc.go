// Package imaging implements the image analyses behind the MCP server's tools.
//
// The package is a thin adapter over decoded pixel buffers: a payload is
// normalized to raw bytes, decoded once, and each analysis derives its
// report from the resulting Decoded value. Reports are pure functions of
// the decoded image - nothing here caches, retains, or mutates pixel
// data, so concurrent requests are independent without locking.
//
// # Input Handling
//
// Normalize is the single input adapter. It accepts raw image bytes,
// base64 text (standard or URL alphabet, padded or not), and data URIs,
// and always produces raw bytes for Decode. Supported formats are PNG,
// JPEG, GIF, WebP, BMP, and TIFF.
//
// # Error Handling
//
// Failures carry one of two kinds:
//   - invalid_input: empty payload or unrecognized encoding
//   - decode_error: bytes present but not a valid image
//
// Both are returned as *Error so callers can report the kind over the
// wire. Analyses on a successfully decoded image do not fail; the text
// heuristic answers "unknown" instead when it cannot measure.
//
// # Color Census
//
// CountColors compares pixels by exact 8-bit RGB value (alpha ignored).
// Images larger than the sample limit are scanned through a uniform
// nearest-neighbor downsample and the census is marked approximate.
// Dominant colors rank by frequency with ties broken by first-seen
// scan order.
package imaging
