package config

// This file implements CLI flag parsing and help text. Every flag's default
// is the current value in Config, so a second parse after loading --config
// lets command-line values override the file.

import (
	"flag"
	"fmt"
	"io"

	"github.com/ironsheep/blurhash-tools/internal/logging"
)

// ParseFlags parses args (without the program name) into cfg. Flags and
// positional arguments may be mixed; everything after "--" is positional.
// Positional arguments become cfg.Inputs unless none are given, in which case
// inputs from the config file are kept.
//
// For -h/--help it prints usage to out and returns flag.ErrHelp.
func ParseFlags(cfg *Config, args []string, out io.Writer) error {
	inputs, err := parseInterleaved(newFlagSet(cfg, out), args)
	if err != nil {
		return err
	}

	if cfg.ConfigFile != "" {
		path := cfg.ConfigFile
		if err := LoadFile(cfg, path); err != nil {
			return err
		}
		inputs, err = parseInterleaved(newFlagSet(cfg, out), args)
		if err != nil {
			return err
		}
		cfg.ConfigFile = path
	}

	if len(inputs) > 0 {
		cfg.Inputs = inputs
	}
	return nil
}

// parseInterleaved runs fs.Parse repeatedly, taking one positional argument
// each time flag parsing stops, so "photos -x 5" sets -x.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var inputs []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(inputs, rest...), nil
		}
		if len(rest) == 0 {
			return inputs, nil
		}
		inputs = append(inputs, rest[0])
		args = rest[1:]
	}
}

func newFlagSet(cfg *Config, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("blurhash-tools", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { printUsage(fs, out) }

	defineEncodingFlags(fs, cfg)
	defineSchedulingFlags(fs, cfg)
	defineDisplayFlags(fs, cfg)
	defineModeFlags(fs, cfg)
	return fs
}

// defineEncodingFlags registers -x/--components-x, -y/--components-y, --max-size, --auto-orient.
func defineEncodingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.ComponentsX, "components-x", cfg.ComponentsX, "Horizontal BlurHash components (1-9)")
	fs.IntVar(&cfg.ComponentsX, "x", cfg.ComponentsX, "Same as --components-x")
	fs.IntVar(&cfg.ComponentsY, "components-y", cfg.ComponentsY, "Vertical BlurHash components (1-9)")
	fs.IntVar(&cfg.ComponentsY, "y", cfg.ComponentsY, "Same as --components-y")
	fs.IntVar(&cfg.MaxSize, "max-size", cfg.MaxSize, "Downsample so the longer side is at most N pixels (0 = off)")
	fs.BoolVar(&cfg.AutoOrient, "auto-orient", cfg.AutoOrient, "Apply EXIF orientation before hashing")
}

// defineSchedulingFlags registers -j/--workers, --strict, -n/--dry-run.
func defineSchedulingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Images processed in parallel (0 = one per CPU)")
	fs.IntVar(&cfg.Workers, "j", cfg.Workers, "Same as --workers")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Exit with status 1 if any image failed")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Print hashes without writing .bh files")
	fs.BoolVar(&cfg.DryRun, "n", cfg.DryRun, "Same as --dry-run")
}

// defineDisplayFlags registers -v/--verbose, --color, --no-color, --log-file.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.Var((*colorModeValue)(&cfg.ColorMode), "color", "Colored logs: auto | always | never")
	fs.BoolFunc("no-color", "Same as --color=never", func(string) error {
		cfg.ColorMode = logging.ColorNever
		return nil
	})
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to file")
}

// defineModeFlags registers --config, --serve, --version.
func defineModeFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Read settings from a TOML file")
	fs.BoolVar(&cfg.ServeMCP, "serve", cfg.ServeMCP, "Run as an MCP tool server on stdin/stdout")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "Print version and exit")
}

// colorModeValue adapts logging.ColorMode to flag.Value.
type colorModeValue logging.ColorMode

func (v *colorModeValue) String() string { return string(*v) }

func (v *colorModeValue) Set(s string) error {
	switch m := logging.ColorMode(s); m {
	case logging.ColorAuto, logging.ColorAlways, logging.ColorNever:
		*v = colorModeValue(m)
		return nil
	}
	return fmt.Errorf("invalid color mode %q (use auto, always or never)", s)
}

func printUsage(fs *flag.FlagSet, out io.Writer) {
	fmt.Fprintln(out, "blurhash-tools - compute BlurHash placeholders for image files")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage: blurhash-tools [options] <file|dir>...")
	fmt.Fprintln(out, "       blurhash-tools --serve")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Each image gets a sibling <name>.bh file holding its hash. Images that")
	fmt.Fprintln(out, "already have one are skipped. Directories are searched recursively for")
	fmt.Fprintln(out, "jpg, jpeg, png, gif, bmp and tiff files.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fs.PrintDefaults()
}
