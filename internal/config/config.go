package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the codegen.json configuration file
type Config struct {
	Schema SchemaConfig `json:"schema"`
}

// SchemaConfig locates the schema emitter command and the committed schema
// file the guard compares against.
type SchemaConfig struct {
	Command  string   `json:"command"`
	Args     []string `json:"args"`
	Baseline string   `json:"baseline"`
}

// LoadConfig loads codegen.json from the current directory or a parent
// directory. When no file is found, defaults are returned with the current
// directory as root.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

func loadConfigFromDir(dir string) (*Config, string, error) {
	for {
		configPath := filepath.Join(dir, "codegen.json")
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return cfg, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, "", fmt.Errorf("failed to get current directory: %w", err)
			}
			return DefaultConfig(), cwd, nil
		}
		dir = parent
	}
}

// LoadConfigFromPath loads the codegen.json configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

// DefaultConfig returns the configuration used when no codegen.json exists.
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Schema.Command == "" {
		config.Schema.Command = "compass-schema"
	}
	if config.Schema.Baseline == "" {
		config.Schema.Baseline = filepath.Join("schema", "compass-config.schema.json")
	}
}
