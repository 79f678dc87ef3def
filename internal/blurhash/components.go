package blurhash

import (
	"fmt"

	"github.com/ironsheep/blurhash-tools/internal/base83"
)

// Components reads the grid size back from a hash and checks that the hash
// has the matching length and only alphabet symbols.
func Components(hash string) (Grid, error) {
	if len(hash) < 6 {
		return Grid{}, fmt.Errorf("%w: too short (%d characters)", ErrInvalidHash, len(hash))
	}

	flag, err := base83.Decode(hash[:1])
	if err != nil {
		return Grid{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	g := Grid{X: flag%9 + 1, Y: flag/9 + 1}
	if err := g.Validate(); err != nil {
		return Grid{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	if len(hash) != g.HashLength() {
		return Grid{}, fmt.Errorf("%w: %s grid needs %d characters, got %d",
			ErrInvalidHash, g, g.HashLength(), len(hash))
	}
	for i := 1; i < len(hash); i++ {
		if _, err := base83.Decode(hash[i : i+1]); err != nil {
			return Grid{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
		}
	}
	return g, nil
}
