// Package config holds runtime configuration for blurhash-tools.
//
// Settings come from three layers, lowest precedence first: [DefaultConfig],
// an optional TOML file named by --config ([LoadFile]), and command-line
// flags ([ParseFlags]). [Config.Validate] runs once all layers are applied.
package config
