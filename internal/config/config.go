package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds the service settings read from a YAML file.
type Config struct {
	Addr      string `yaml:"addr"`
	DataPath  string `yaml:"data_path"`
	StaticDir string `yaml:"static_dir"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the settings used when no configuration file is given.
func Default() Config {
	return Config{
		Addr:      ":8000",
		DataPath:  "data/crop_data.json",
		StaticDir: "static",
		LogLevel:  "info",
	}
}

// Load reads the YAML file at path on top of the defaults, so fields
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps the configured log level to a slog level. Unknown values
// fall back to info.
func (c Config) SlogLevel() slog.Level {
	level := slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return level
}
