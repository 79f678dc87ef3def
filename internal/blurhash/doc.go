// Package blurhash computes BlurHash placeholders for RGBA8 pixel buffers.
//
// A BlurHash is a short ASCII string holding the first X×Y coefficients of a
// two-dimensional discrete cosine transform of the image, taken in linear
// light. The encoder performs no I/O and keeps no state between calls, so it
// may be called concurrently from any number of goroutines.
//
// # Wire Format
//
// The string is laid out as base-83 digits:
//
//	[size flag: 1][quantised max AC: 1][DC colour: 4][AC term: 2]...
//
// The size flag is (X-1) + (Y-1)*9. The DC colour is the average sRGB colour
// packed as R<<16 | G<<8 | B. AC terms follow in row-major order (Y outer,
// X inner) and skip the (0,0) term, so a hash is always 4 + 2*X*Y
// characters long.
//
// # Colour Handling
//
// Channel values are converted from sRGB to linear light before averaging.
// The alpha channel is read but ignored: every pixel is treated as opaque and
// its colour channels are used as stored (straight, not premultiplied).
package blurhash
