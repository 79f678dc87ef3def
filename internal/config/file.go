package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ironsheep/blurhash-tools/internal/logging"
)

// fileConfig mirrors the TOML keys. Pointer fields distinguish a missing key
// from a zero value so absent keys keep the current setting.
type fileConfig struct {
	Inputs      []string `toml:"inputs"`
	ComponentsX *int     `toml:"components_x"`
	ComponentsY *int     `toml:"components_y"`
	MaxSize     *int     `toml:"max_size"`
	AutoOrient  *bool    `toml:"auto_orient"`
	Workers     *int     `toml:"workers"`
	Strict      *bool    `toml:"strict"`
	DryRun      *bool    `toml:"dry_run"`
	Verbose     *bool    `toml:"verbose"`
	Color       *string  `toml:"color"`
	LogFile     *string  `toml:"log_file"`
}

// LoadFile applies the settings in a TOML file to cfg. Unknown keys are
// rejected so typos do not pass silently.
//
// Example:
//
//	components_x = 5
//	components_y = 4
//	workers = 2
//	strict = true
//	inputs = ["photos"]
func LoadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if len(fc.Inputs) > 0 {
		cfg.Inputs = fc.Inputs
	}
	setInt(&cfg.ComponentsX, fc.ComponentsX)
	setInt(&cfg.ComponentsY, fc.ComponentsY)
	setInt(&cfg.MaxSize, fc.MaxSize)
	setInt(&cfg.Workers, fc.Workers)
	setBool(&cfg.AutoOrient, fc.AutoOrient)
	setBool(&cfg.Strict, fc.Strict)
	setBool(&cfg.DryRun, fc.DryRun)
	setBool(&cfg.Verbose, fc.Verbose)
	if fc.Color != nil {
		cfg.ColorMode = logging.ColorMode(*fc.Color)
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
