// Package config handles inspector configuration loading and management.
package config

import "time"

// Config holds all inspector settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds collision source locations.
type DataConfig struct {
	DecompRoot  string `yaml:"decomp_root"`  // Root of the sm64 decomp source tree
	Variant     string `yaml:"variant"`      // Build variant: "jp" or "us"
	CatalogPath string `yaml:"catalog_path"` // Optional object catalog override
}

// ServerConfig holds viewer server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	StaticDir       string        `yaml:"static_dir"` // Browser viewer files
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			DecompRoot: ".",
			Variant:    "us",
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8000",
			StaticDir:       "viewer",
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
