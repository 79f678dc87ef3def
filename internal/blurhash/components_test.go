package blurhash

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComponents(t *testing.T) {
	pix := quadrantPixels(12, 12)
	for _, g := range []Grid{{1, 1}, {4, 3}, {9, 9}, {2, 7}} {
		hash, err := Encode(pix, 12, 12, g)
		if err != nil {
			t.Fatalf("Encode %s failed: %v", g, err)
		}
		got, err := Components(hash)
		if err != nil {
			t.Fatalf("Components(%q) failed: %v", hash, err)
		}
		if diff := cmp.Diff(g, got); diff != "" {
			t.Errorf("Components(%q) mismatch (-want +got):\n%s", hash, diff)
		}
	}
}

func TestComponents_Invalid(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"too short", "00TSU"},
		{"length mismatch", "L00TSUA"},
		{"bad symbol", "00TS/A"},
		{"size flag beyond grid", "~0TSUA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Components(tt.hash); !errors.Is(err, ErrInvalidHash) {
				t.Errorf("got %v, want ErrInvalidHash", err)
			}
		})
	}
}

func TestGrid_Validate(t *testing.T) {
	if err := DefaultGrid.Validate(); err != nil {
		t.Errorf("DefaultGrid invalid: %v", err)
	}
	if err := (Grid{9, 9}).Validate(); err != nil {
		t.Errorf("9x9 invalid: %v", err)
	}
	if err := (Grid{1, 10}).Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("1x10: got %v, want ErrInvalidGrid", err)
	}
}

func TestGrid_HashLength(t *testing.T) {
	tests := []struct {
		grid Grid
		want int
	}{
		{Grid{1, 1}, 6},
		{Grid{4, 3}, 28},
		{Grid{9, 9}, 166},
	}
	for _, tt := range tests {
		if got := tt.grid.HashLength(); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.grid, got, tt.want)
		}
	}
}
