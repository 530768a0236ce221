// Package config resolves runtime settings from defaults, an optional YAML
// file and TADA_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultFileName = "tada.yaml"

type Config struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir"`
	Selector string `yaml:"selector"`
	Theme    string `yaml:"theme"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		Backend:  "json",
		DataDir:  ".",
		Selector: "#app",
		Theme:    "classic",
		LogLevel: "info",
	}
}

// DefaultPath is ~/.tada/tada.yaml, or tada.yaml when there is no home.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(home, ".tada", DefaultFileName)
}

// Load overlays the YAML file at path on base. A missing file leaves base
// untouched; empty fields in the file do not override.
func Load(path string, base Config) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(b, &file); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return merge(base, file), nil
}

// FromEnv overlays TADA_BACKEND, TADA_DATA_DIR, TADA_SELECTOR, TADA_THEME,
// TADA_LOG_LEVEL and TADA_LOG_FILE.
func FromEnv(base Config) Config {
	return merge(base, Config{
		Backend:  getEnv("TADA_BACKEND"),
		DataDir:  getEnv("TADA_DATA_DIR"),
		Selector: getEnv("TADA_SELECTOR"),
		Theme:    getEnv("TADA_THEME"),
		LogLevel: getEnv("TADA_LOG_LEVEL"),
		LogFile:  getEnv("TADA_LOG_FILE"),
	})
}

func merge(base, over Config) Config {
	out := base
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&out.Backend, over.Backend)
	set(&out.DataDir, over.DataDir)
	set(&out.Selector, over.Selector)
	set(&out.Theme, over.Theme)
	set(&out.LogLevel, over.LogLevel)
	set(&out.LogFile, over.LogFile)
	return out
}

func getEnv(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}
