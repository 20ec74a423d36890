package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

const (
	DefaultFile         = ".minishell.yml"
	DefaultHistoryFile  = ".minishell_history"
	DefaultHistorySize  = 1000
	DefaultMaxLineBytes = 4096
	DefaultMaxArgs      = 2048
)

type Config struct {
	HistoryFile  string `yaml:"history_file"`
	HistorySize  int    `yaml:"history_size"`
	MaxLineBytes int    `yaml:"max_line_bytes"`
	MaxArgs      int    `yaml:"max_args"`
	PlainPrompt  bool   `yaml:"plain_prompt"`
	Debug        bool   `yaml:"debug"`
}

// DefaultPath returns the config file in the user's home directory, or ""
// when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFile)
}

// Load reads file and fills in defaults. A missing file yields the defaults.
func Load(file string) (*Config, error) {
	cfg := &Config{}
	if file != "" {
		data, err := os.ReadFile(file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.UnmarshalStrict(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.HistorySize < 0:
		return fmt.Errorf("history_size must not be negative: %d", c.HistorySize)
	case c.MaxLineBytes != 0 && c.MaxLineBytes < 2:
		return fmt.Errorf("max_line_bytes must be at least 2: %d", c.MaxLineBytes)
	case c.MaxArgs < 0:
		return fmt.Errorf("max_args must not be negative: %d", c.MaxArgs)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.HistoryFile = filepath.Join(home, DefaultHistoryFile)
		}
	}
	if c.HistorySize == 0 {
		c.HistorySize = DefaultHistorySize
	}
	if c.MaxLineBytes == 0 {
		c.MaxLineBytes = DefaultMaxLineBytes
	}
	if c.MaxArgs == 0 {
		c.MaxArgs = DefaultMaxArgs
	}
}
