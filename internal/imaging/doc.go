// Package imaging turns image files on disk into RGBA8 pixel buffers and
// knows which files are BlurHash candidates.
//
// Decoding is delegated to github.com/disintegration/imaging, which registers
// the JPEG, PNG, GIF, BMP and TIFF decoders. Images can optionally be
// downsampled with github.com/anthonynsimon/bild before conversion; the
// BlurHash of a large photo barely changes when it is shrunk first, while the
// cost of encoding drops with the pixel count.
//
// # Pixel Layout
//
// A PixelBuffer holds Width*Height texels, 4 bytes each (R, G, B, A), rows top
// to bottom with no padding. Colour channels are straight (not premultiplied).
//
// # Artifacts
//
// The BlurHash of "photo.jpg" is stored next to it as "photo.jpg.bh". A file
// whose artifact already exists is considered done.
//
// # Thread Safety
//
// Loader has no mutable state; Load may be called concurrently.
package imaging
