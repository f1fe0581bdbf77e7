// Package config loads optional settings for the animdata command line tool from a
// YAML file. Explicit command line flags take precedence over file values.
package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

// Config - Settings for the animdata command line tool
//   - Sort sorts records alphabetically by COF name before saving
//   - Strict promotes integrity warnings to errors
type Config struct {
	Sort   bool `yaml:"sort"`
	Strict bool `yaml:"strict"`
}

// Default - Returns the default configuration: no sorting, warnings stay warnings
func Default() *Config {
	return &Config{}
}

// Load - Loads configuration from the YAML file at path
func Load(path string) (config *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("cannot read config file: %w", err)
		return
	}

	config = Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		config = nil
		err = fmt.Errorf("cannot parse config file: %w", err)
		return
	}

	return
}
