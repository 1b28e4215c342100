// Package config loads the service configuration from YAML with sane
// defaults, so the server runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"voxelforge.dev/internal/voxel"
)

// Limits bound what a single generation request may ask for. They are
// service policy on top of the engine's own hard volume cap.
type Limits struct {
	MaxWidth  int `yaml:"max_width"`
	MaxLength int `yaml:"max_length"`
	MaxFloors int `yaml:"max_floors"`
	MaxVoxels int `yaml:"max_voxels"`
}

// Config holds all application configuration.
type Config struct {
	Addr         string `yaml:"addr"`
	DataDir      string `yaml:"data_dir"`
	DBPath       string `yaml:"db_path"`
	SchemaDir    string `yaml:"schema_dir"`
	DefaultStyle string `yaml:"default_style"`
	Limits       Limits `yaml:"limits"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() Config {
	return Config{
		Addr:         ":8080",
		DataDir:      "./data",
		SchemaDir:    "./schemas",
		DefaultStyle: "fantasy",
		Limits: Limits{
			MaxWidth:  200,
			MaxLength: 200,
			MaxFloors: 12,
			MaxVoxels: 8_000_000,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path skips
// the file entirely. SERVER_ADDR overrides the listen address either way.
func Load(path string) (Config, error) {
	c := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		c.Addr = addr
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, "generations.db")
	}
	if err := c.validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: addr must not be empty")
	}
	if c.Limits.MaxWidth <= 0 || c.Limits.MaxLength <= 0 || c.Limits.MaxFloors <= 0 {
		return fmt.Errorf("config: limits must be positive, got %+v", c.Limits)
	}
	if c.Limits.MaxVoxels <= 0 || c.Limits.MaxVoxels > voxel.MaxVolume {
		return fmt.Errorf("config: max_voxels %d outside (0, %d]", c.Limits.MaxVoxels, voxel.MaxVolume)
	}
	return nil
}
