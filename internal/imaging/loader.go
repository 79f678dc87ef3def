package imaging

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// PixelBuffer is a decoded image as tightly packed RGBA8 texels.
type PixelBuffer struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Pix holds Width*Height*4 bytes in R, G, B, A order.
	Pix []uint8
}

// Loader decodes image files into pixel buffers.
//
// The zero value decodes at full resolution and ignores EXIF orientation.
type Loader struct {
	// MaxSize, when positive, bounds the longer side of the decoded image.
	// Larger images are downsampled before conversion.
	MaxSize int

	// AutoOrient applies the EXIF orientation tag of JPEG files.
	AutoOrient bool
}

// Load opens and decodes the image at path.
//
// Errors from opening the file keep their *fs.PathError so callers can tell
// I/O failures apart from undecodable content.
func (l Loader) Load(path string) (*PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(l.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return l.Pixels(img), nil
}

// Pixels converts an in-memory image, downsampling it first if MaxSize asks
// for it.
func (l Loader) Pixels(img image.Image) *PixelBuffer {
	return ToPixelBuffer(Downsample(img, l.MaxSize))
}

// ToPixelBuffer copies img into a straight-alpha RGBA8 buffer.
func ToPixelBuffer(img image.Image) *PixelBuffer {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()

	pb := &PixelBuffer{Width: w, Height: h}
	if nrgba.Stride == w*4 {
		pb.Pix = nrgba.Pix[:w*h*4]
		return pb
	}

	pb.Pix = make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		copy(pb.Pix[y*w*4:(y+1)*w*4], nrgba.Pix[y*nrgba.Stride:])
	}
	return pb
}

// Downsample shrinks img so that neither side exceeds maxSize, keeping the
// aspect ratio. It returns img unchanged when maxSize <= 0 or the image
// already fits.
func Downsample(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}

	if w >= h {
		h = scaleSide(h, maxSize, w)
		w = maxSize
	} else {
		w = scaleSide(w, maxSize, h)
		h = maxSize
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// scaleSide returns side*target/longest rounded, never less than 1.
func scaleSide(side, target, longest int) int {
	s := int(math.Round(float64(side) * float64(target) / float64(longest)))
	if s < 1 {
		return 1
	}
	return s
}
