package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the solver settings shared by all entry points.
type Config struct {
	// Workers is the number of goroutines interpolating share
	// combinations; 1 keeps the solver fully sequential.
	Workers int `yaml:"workers"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"loglevel"`
	// HTTPAddr is the listen address of the daemon mode.
	HTTPAddr string `yaml:"httpaddr"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Workers:  1,
		LogLevel: "info",
		HTTPAddr: "127.0.0.1:8080",
	}
}

// ConfigFromYAML loads a config file, filling unset fields from the
// defaults.
func ConfigFromYAML(path string) (Config, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	conf := DefaultConfig()
	err = yaml.Unmarshal(yamlFile, &conf)
	if err != nil {
		return Config{}, err
	}

	return conf, nil
}

// ZerologLevel maps the configured level name to a zerolog level,
// defaulting to info on unknown names.
func (c Config) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
