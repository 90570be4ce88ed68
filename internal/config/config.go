// Package config loads the user's application configuration: key mappings
// and theme colors
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	Theme       Theme       `yaml:"theme"`
}

// Load loads config from ~/.phoenix/config.yaml.
// Returns the default config if the file doesn't exist or can't be parsed
// partially; missing values are filled with defaults.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to ~/.phoenix/config.yaml
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

func defaultConfig() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Theme:       DefaultTheme(),
	}
}

func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.Theme.applyDefaults()
}

func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".phoenix", "config.yaml"), nil
}
