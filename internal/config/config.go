package config

import (
	"errors"
	"fmt"

	"github.com/ironsheep/blurhash-tools/internal/blurhash"
	"github.com/ironsheep/blurhash-tools/internal/imaging"
	"github.com/ironsheep/blurhash-tools/internal/logging"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally [LoadFile], then [ParseFlags].
type Config struct {
	// Inputs are image files or directories (positional args). An empty
	// string or "." means the working directory.
	Inputs []string

	// Encoding.
	ComponentsX int  // Default: 4.
	ComponentsY int  // Default: 3.
	MaxSize     int  // Default: 0 (decode at full size).
	AutoOrient  bool // Apply EXIF orientation before hashing.

	// Scheduling.
	Workers int  // Default: 0 (one per CPU).
	Strict  bool // Exit non-zero when any file failed.
	DryRun  bool // Print hashes without writing artifacts.

	// Display and logging.
	Verbose   bool
	ColorMode logging.ColorMode // Default: "auto".
	LogFile   string            // Optional log file path.

	// Modes.
	ConfigFile  string // --config path, already applied when ParseFlags returns.
	ServeMCP    bool   // Run the MCP tool server on stdio instead of a batch.
	ShowVersion bool
}

// DefaultConfig returns a Config with the standard 4x3 grid and one worker
// per CPU.
func DefaultConfig() Config {
	return Config{
		ComponentsX: blurhash.DefaultGrid.X,
		ComponentsY: blurhash.DefaultGrid.Y,
		Workers:     0,
		MaxSize:     0,
		ColorMode:   logging.ColorAuto,
	}
}

// Grid returns the configured component grid.
func (c *Config) Grid() blurhash.Grid {
	return blurhash.Grid{X: c.ComponentsX, Y: c.ComponentsY}
}

// Loader returns the image loader matching the decode settings.
func (c *Config) Loader() imaging.Loader {
	return imaging.Loader{MaxSize: c.MaxSize, AutoOrient: c.AutoOrient}
}

// LoggingOptions returns the logger settings.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Color: c.ColorMode, Verbose: c.Verbose, LogFile: c.LogFile}
}

// Validate checks ranges and enum fields. Unless serving or printing the
// version, at least one input is required.
func (c *Config) Validate() error {
	if err := c.Grid().Validate(); err != nil {
		return fmt.Errorf("invalid components: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d (use 0 for one per CPU)", c.Workers)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("invalid max size %d (use 0 to disable)", c.MaxSize)
	}

	switch c.ColorMode {
	case logging.ColorAuto, logging.ColorAlways, logging.ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use auto, always or never)", c.ColorMode)
	}

	if c.ServeMCP || c.ShowVersion {
		return nil
	}
	if len(c.Inputs) == 0 {
		return errors.New("need at least one input file or directory")
	}
	return nil
}
