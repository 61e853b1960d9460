// Package config handles viewer configuration loading.
package config

import (
	"github.com/philipparndt/minevis/pkg/flowgraph"
	"github.com/philipparndt/minevis/pkg/profile"
)

// Config holds all viewer settings. The view tuning values are
// configuration defaults, not hard-coded literals, so sites can
// calibrate them per project.
type Config struct {
	Profile profile.Config   `yaml:"profile"`
	Flow    flowgraph.Config `yaml:"flow"`
	Mesh    MeshConfig       `yaml:"mesh"`
	Blocks  BlocksConfig     `yaml:"blocks"`
	Logging LoggingConfig    `yaml:"logging"`
}

// MeshConfig holds surface mesh build settings.
type MeshConfig struct {
	// CacheEntries bounds the memoized mesh cache.
	CacheEntries int `yaml:"cache_entries"`

	// Ramp overrides the ramp implied by the surface type when non-empty.
	Ramp string `yaml:"ramp"`
}

// BlocksConfig holds block model display settings.
type BlocksConfig struct {
	AutoCenter bool `yaml:"auto_center"`

	// BlockSize is the rendered cube edge length in meters.
	BlockSize float64 `yaml:"block_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the standard values.
func Default() *Config {
	return &Config{
		Profile: profile.DefaultConfig(),
		Flow:    flowgraph.DefaultConfig(),
		Mesh: MeshConfig{
			CacheEntries: 32,
		},
		Blocks: BlocksConfig{
			AutoCenter: true,
			BlockSize:  10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
