package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/blurhash-tools/internal/blurhash"
	"github.com/ironsheep/blurhash-tools/internal/logging"
)

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.Grid(); got != blurhash.DefaultGrid {
		t.Errorf("default Grid = %v, want %v", got, blurhash.DefaultGrid)
	}
	if cfg.Workers != 0 {
		t.Errorf("default Workers = %d, want 0", cfg.Workers)
	}
	if cfg.MaxSize != 0 {
		t.Errorf("default MaxSize = %d, want 0", cfg.MaxSize)
	}
	if cfg.ColorMode != logging.ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, logging.ColorAuto)
	}
	if cfg.Strict {
		t.Error("default Strict should be false")
	}
}

func TestValidate_Components(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		wantErr bool
	}{
		{"default 4x3", 4, 3, false},
		{"minimum 1x1", 1, 1, false},
		{"maximum 9x9", 9, 9, false},
		{"zero x", 0, 3, true},
		{"ten y", 4, 10, true},
		{"negative", -1, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Inputs = []string{"."}
			cfg.ComponentsX, cfg.ComponentsY = tt.x, tt.y
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, blurhash.ErrInvalidGrid) {
				t.Errorf("Validate() error = %v, want ErrInvalidGrid", err)
			}
		})
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"workers zero", func(c *Config) { c.Workers = 0 }, false},
		{"workers positive", func(c *Config) { c.Workers = 8 }, false},
		{"workers negative", func(c *Config) { c.Workers = -1 }, true},
		{"max size negative", func(c *Config) { c.MaxSize = -5 }, true},
		{"color never", func(c *Config) { c.ColorMode = logging.ColorNever }, false},
		{"color empty", func(c *Config) { c.ColorMode = "" }, true},
		{"color unknown", func(c *Config) { c.ColorMode = "rainbow" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Inputs = []string{"."}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresInputs(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail without inputs")
	}

	cfg.ServeMCP = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass without inputs when serving, got: %v", err)
	}

	cfg.ServeMCP = false
	cfg.ShowVersion = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass without inputs for --version, got: %v", err)
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(*Config)
	}{
		{
			name: "positional inputs",
			args: []string{"a.png", "photos"},
			want: func(c *Config) { c.Inputs = []string{"a.png", "photos"} },
		},
		{
			name: "short flags",
			args: []string{"-x", "5", "-y", "2", "-j", "3", "-v", "-n", "img"},
			want: func(c *Config) {
				c.ComponentsX, c.ComponentsY, c.Workers, c.Verbose = 5, 2, 3, true
				c.DryRun = true
				c.Inputs = []string{"img"}
			},
		},
		{
			name: "long flags",
			args: []string{"--components-x=9", "--components-y=9", "--workers=1", "--max-size=64",
				"--auto-orient", "--strict", "--color=always", "--log-file=run.log", "img"},
			want: func(c *Config) {
				c.ComponentsX, c.ComponentsY, c.Workers, c.MaxSize = 9, 9, 1, 64
				c.AutoOrient, c.Strict = true, true
				c.ColorMode = logging.ColorAlways
				c.LogFile = "run.log"
				c.Inputs = []string{"img"}
			},
		},
		{
			name: "no-color",
			args: []string{"--no-color", "."},
			want: func(c *Config) {
				c.ColorMode = logging.ColorNever
				c.Inputs = []string{"."}
			},
		},
		{
			name: "flags after inputs",
			args: []string{"photos", "-x", "5", "more.png", "-y", "2", "--strict"},
			want: func(c *Config) {
				c.ComponentsX, c.ComponentsY, c.Strict = 5, 2, true
				c.Inputs = []string{"photos", "more.png"}
			},
		},
		{
			name: "double dash ends flags",
			args: []string{"-x", "2", "--", "-odd.png", "-y"},
			want: func(c *Config) {
				c.ComponentsX = 2
				c.Inputs = []string{"-odd.png", "-y"}
			},
		},
		{
			name: "serve",
			args: []string{"--serve"},
			want: func(c *Config) { c.ServeMCP = true },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultConfig()
			if err := ParseFlags(&got, tt.args, io.Discard); err != nil {
				t.Fatalf("ParseFlags(%q) error: %v", tt.args, err)
			}
			want := DefaultConfig()
			tt.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ParseFlags(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad color", []string{"--color=rainbow"}},
		{"non-numeric", []string{"-x", "four"}},
		{"unknown flag", []string{"--frobnicate"}},
		{"unknown flag after input", []string{"photos", "--frobnicate"}},
		{"missing value after input", []string{"photos", "-x"}},
		{"missing config", []string{"--config", "/nonexistent/blurhash.toml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ParseFlags(&cfg, tt.args, io.Discard); err == nil {
				t.Errorf("ParseFlags(%q) should fail", tt.args)
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseFlags(-h) error = %v, want flag.ErrHelp", err)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blurhash.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
inputs = ["photos", "more"]
components_x = 6
components_y = 5
workers = 2
max_size = 128
auto_orient = true
strict = true
dry_run = true
color = "never"
log_file = "out.log"
`)
	got := DefaultConfig()
	if err := LoadFile(&got, path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	want := DefaultConfig()
	want.Inputs = []string{"photos", "more"}
	want.ComponentsX, want.ComponentsY = 6, 5
	want.Workers, want.MaxSize = 2, 128
	want.AutoOrient, want.Strict, want.DryRun = true, true, true
	want.ColorMode = logging.ColorNever
	want.LogFile = "out.log"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadFile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "components_x = 7\n")
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ComponentsX != 7 || cfg.ComponentsY != blurhash.DefaultGrid.Y {
		t.Errorf("grid = %dx%d, want 7x%d", cfg.ComponentsX, cfg.ComponentsY, blurhash.DefaultGrid.Y)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "colour = \"never\"\n"},
		{"wrong type", "workers = \"many\"\n"},
		{"malformed", "components_x = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := LoadFile(&cfg, writeConfig(t, tt.body)); err == nil {
				t.Errorf("LoadFile(%q) should fail", tt.body)
			}
		})
	}
}

func TestParseFlags_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
inputs = ["from-file"]
components_x = 6
workers = 2
strict = true
`)
	cfg := DefaultConfig()
	args := []string{"--config", path, "-x", "3", "--strict=false"}
	if err := ParseFlags(&cfg, args, io.Discard); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.ComponentsX != 3 {
		t.Errorf("ComponentsX = %d, want 3 (flag wins)", cfg.ComponentsX)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2 (from file)", cfg.Workers)
	}
	if cfg.Strict {
		t.Error("Strict should be false (flag wins)")
	}
	if diff := cmp.Diff([]string{"from-file"}, cfg.Inputs); diff != "" {
		t.Errorf("Inputs mismatch (-want +got):\n%s", diff)
	}
	if cfg.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", cfg.ConfigFile, path)
	}
}
