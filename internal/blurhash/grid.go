package blurhash

import (
	"errors"
	"fmt"
)

const (
	// MinComponents is the smallest number of components per axis.
	MinComponents = 1

	// MaxComponents is the largest number of components per axis.
	MaxComponents = 9
)

var (
	// ErrInvalidGrid is returned when a component count is outside 1..9.
	ErrInvalidGrid = errors.New("blurhash: components must be between 1 and 9")

	// ErrEmptyImage is returned when the image has zero width or height.
	ErrEmptyImage = errors.New("blurhash: image has no pixels")

	// ErrInvalidHash is returned by Components for malformed hash strings.
	ErrInvalidHash = errors.New("blurhash: invalid hash")
)

// Grid is the number of horizontal (X) and vertical (Y) frequency bands kept.
type Grid struct {
	X int `json:"components_x" toml:"components_x"`
	Y int `json:"components_y" toml:"components_y"`
}

// DefaultGrid is 4 horizontal by 3 vertical components.
var DefaultGrid = Grid{X: 4, Y: 3}

// Validate reports ErrInvalidGrid if either axis is outside 1..9.
func (g Grid) Validate() error {
	if g.X < MinComponents || g.X > MaxComponents || g.Y < MinComponents || g.Y > MaxComponents {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, g.X, g.Y)
	}
	return nil
}

// Terms returns the number of basis terms, DC included.
func (g Grid) Terms() int {
	return g.X * g.Y
}

// HashLength returns the length of a hash encoded with this grid.
func (g Grid) HashLength() int {
	return 4 + 2*g.Terms()
}

// sizeFlag is the first digit of the hash.
func (g Grid) sizeFlag() int {
	return (g.X - 1) + (g.Y-1)*9
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.X, g.Y)
}
