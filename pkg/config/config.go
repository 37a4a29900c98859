package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const ConfigFileName = "letteragent.yml"

// Storage backend names.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config defines the tool-wide settings loaded from letteragent.yml.
type Config struct {
	DataDir         string       `yaml:"data_dir,omitempty"`          // where persisted records live
	Store           string       `yaml:"store,omitempty"`             // "file" or "sqlite"
	DefaultTone     string       `yaml:"default_tone,omitempty"`      // preselected tone label
	ThinkingDelayMS int          `yaml:"thinking_delay_ms,omitempty"` // fixed delay before generation
	Export          ExportConfig `yaml:"export,omitempty"`
}

// ExportConfig holds document export settings.
type ExportConfig struct {
	FontPath string  `yaml:"font_path,omitempty"` // TTF/OTF for PDF rendering; system serif when empty
	FontSize float64 `yaml:"font_size,omitempty"` // point size (defaults to 12)
}

// Default returns the configuration used when no file is present.
func Default() Config {
	dataDir := ".letteragent"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".letteragent")
	}
	return Config{
		DataDir:         dataDir,
		Store:           StoreFile,
		DefaultTone:     "Formal",
		ThinkingDelayMS: 1500,
		Export: ExportConfig{
			FontSize: 12,
		},
	}
}

// ThinkingDelay returns the generation delay as a duration.
func (c Config) ThinkingDelay() time.Duration {
	return time.Duration(c.ThinkingDelayMS) * time.Millisecond
}

// Load reads a letteragent.yml from the given directory. It returns
// os.ErrNotExist when the file is absent so callers can fall back to
// defaults.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path and fills unset
// fields from the defaults.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault loads the config from path when set, otherwise from
// the current directory, otherwise returns the defaults.
func LoadOrDefault(path string) Config {
	if path != "" {
		if cfg, err := LoadFile(path); err == nil {
			return *cfg
		}
		return Default()
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Default()
	}
	cfg, err := Load(cwd)
	if err != nil {
		return Default()
	}
	return *cfg
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.Store == "" {
		c.Store = def.Store
	}
	if c.DefaultTone == "" {
		c.DefaultTone = def.DefaultTone
	}
	if c.ThinkingDelayMS == 0 {
		c.ThinkingDelayMS = def.ThinkingDelayMS
	}
	if c.Export.FontSize == 0 {
		c.Export.FontSize = def.Export.FontSize
	}
}
