package blurhash

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/blurhash-tools/internal/base83"
)

// srgbToLinear maps an 8-bit sRGB channel value to linear light in [0,1].
var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		r, _, _ := colorful.Color{R: float64(i) / 255}.LinearRgb()
		srgbToLinear[i] = r
	}
}

// factor is one basis coefficient in linear RGB.
type factor struct {
	r, g, b float64
}

func (f factor) maxAbs() float64 {
	return math.Max(math.Abs(f.r), math.Max(math.Abs(f.g), math.Abs(f.b)))
}

// Encode computes the BlurHash of a width×height RGBA8 pixel buffer.
//
// pix must hold exactly width*height*4 bytes in R, G, B, A order, rows top to
// bottom. The alpha byte is ignored.
//
// Errors:
//   - ErrInvalidGrid if either grid axis is outside 1..9
//   - ErrEmptyImage if width or height is zero
//   - a plain error if len(pix) does not match the dimensions
func Encode(pix []uint8, width, height int, grid Grid) (string, error) {
	if err := grid.Validate(); err != nil {
		return "", err
	}
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	if want := width * height * 4; len(pix) != want {
		return "", fmt.Errorf("blurhash: pixel buffer has %d bytes, want %d for %dx%d", len(pix), want, width, height)
	}

	factors := project(pix, width, height, grid)
	return assemble(factors, grid), nil
}

// project computes the first grid.X × grid.Y DCT-II coefficients of the image
// in a single pass over the pixels. Coefficients are stored row-major, Y outer.
func project(pix []uint8, width, height int, grid Grid) []factor {
	cosX := cosines(grid.X, width)
	cosY := cosines(grid.Y, height)
	factors := make([]factor, grid.Terms())

	stride := width * 4
	for y := 0; y < height; y++ {
		row := pix[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			p := row[x*4 : x*4+3 : x*4+3]
			r := srgbToLinear[p[0]]
			g := srgbToLinear[p[1]]
			b := srgbToLinear[p[2]]

			for j := 0; j < grid.Y; j++ {
				cy := cosY[j*height+y]
				for i := 0; i < grid.X; i++ {
					basis := cosX[i*width+x] * cy
					f := &factors[j*grid.X+i]
					f.r += basis * r
					f.g += basis * g
					f.b += basis * b
				}
			}
		}
	}

	scale := 1 / float64(width*height)
	for k := range factors {
		norm := 2 * scale
		if k == 0 {
			norm = scale
		}
		factors[k].r *= norm
		factors[k].g *= norm
		factors[k].b *= norm
	}
	return factors
}

// cosines returns cos(pi*c*n/size) for every component c < components and
// sample n < size, indexed c*size+n.
func cosines(components, size int) []float64 {
	table := make([]float64, components*size)
	for c := 0; c < components; c++ {
		for n := 0; n < size; n++ {
			table[c*size+n] = math.Cos(math.Pi * float64(c) * float64(n) / float64(size))
		}
	}
	return table
}

// assemble quantises the coefficients and writes the hash string.
func assemble(factors []factor, grid Grid) string {
	var sb strings.Builder
	sb.Grow(grid.HashLength())

	sb.WriteString(base83.MustEncode(grid.sizeFlag(), 1))

	dc, ac := factors[0], factors[1:]

	maxValue := 1.0
	quantisedMax := 0
	if len(ac) > 0 {
		actualMax := 0.0
		for _, f := range ac {
			actualMax = math.Max(actualMax, f.maxAbs())
		}
		quantisedMax = int(clamp(math.Floor(actualMax*166-0.5), 0, 82))
		maxValue = float64(quantisedMax+1) / 166
	}
	sb.WriteString(base83.MustEncode(quantisedMax, 1))

	sb.WriteString(base83.MustEncode(encodeDC(dc), 4))
	for _, f := range ac {
		sb.WriteString(base83.MustEncode(encodeAC(f, maxValue), 2))
	}
	return sb.String()
}

// encodeDC packs the average colour as a 24-bit sRGB integer.
func encodeDC(f factor) int {
	c := colorful.LinearRgb(clamp(f.r, 0, 1), clamp(f.g, 0, 1), clamp(f.b, 0, 1))
	r, g, b := c.Clamped().RGB255()
	return int(r)<<16 | int(g)<<8 | int(b)
}

// encodeAC packs three 0..18 channel digits into one integer below 19^3.
func encodeAC(f factor, maxValue float64) int {
	return quantiseAC(f.r, maxValue)*19*19 + quantiseAC(f.g, maxValue)*19 + quantiseAC(f.b, maxValue)
}

func quantiseAC(v, maxValue float64) int {
	return int(clamp(math.Floor(signPow(v/maxValue, 0.5)*9+9.5), 0, 18))
}

// signPow raises |v| to exp and keeps the sign of v.
func signPow(v, exp float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), exp), v)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
