// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// File name (without extension), type and env prefix.
const (
	ConfigName = "qs_config"
	ConfigType = "yaml"
	EnvPrefix  = "QS"
)

// Keys and defaults.
const (
	KeyFactorBaseSize = "factor_base_size"
	KeyIntervalSize   = "interval_size"
	KeyWorkers        = "workers"
	KeyTable          = "table"
	KeyChart          = "chart"

	DefaultFactorBaseSize = 5
	DefaultIntervalSize   = 50
	DefaultWorkers        = 1
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the parameters of one factorization run.
type Config struct {
	FactorBaseSize int    `mapstructure:"factor_base_size"`
	IntervalSize   int    `mapstructure:"interval_size"`
	Workers        int    `mapstructure:"workers"`
	Table          bool   `mapstructure:"table"`
	Chart          string `mapstructure:"chart"`

	// Source is the file the values were read from, empty when none.
	Source string `mapstructure:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		FactorBaseSize: DefaultFactorBaseSize,
		IntervalSize:   DefaultIntervalSize,
		Workers:        DefaultWorkers,
	}
}

// Validate rejects non-positive sizes and worker counts.
func (c *Config) Validate() error {
	switch {
	case c.FactorBaseSize <= 0:
		return fmt.Errorf("%w: %s = %d", ErrInvalidConfig, KeyFactorBaseSize, c.FactorBaseSize)
	case c.IntervalSize <= 0:
		return fmt.Errorf("%w: %s = %d", ErrInvalidConfig, KeyIntervalSize, c.IntervalSize)
	case c.Workers <= 0:
		return fmt.Errorf("%w: %s = %d", ErrInvalidConfig, KeyWorkers, c.Workers)
	}

	return nil
}

// Load reads the configuration. With path == "" the search paths are tried
// and a missing file is not an error; an explicit path must exist.
// A malformed file is always an error.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	return cfg, nil
}

// WriteDefault writes the default configuration to path. An existing file
// is left untouched and reported as an error.
func WriteDefault(path string) error {
	v := newViper()
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("config: write %q: %w", path, err)
	}

	return nil
}

// newViper returns an isolated viper instance with defaults and env binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyFactorBaseSize, DefaultFactorBaseSize)
	v.SetDefault(KeyIntervalSize, DefaultIntervalSize)
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetDefault(KeyTable, false)
	v.SetDefault(KeyChart, "")

	return v
}

// searchPaths lists the directories probed for qs_config.yaml.
func searchPaths() []string {
	var paths []string

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" && homeDir != "" {
		xdgConfigHome = filepath.Join(homeDir, ".config")
	}
	if xdgConfigHome != "" {
		paths = append(paths, filepath.Join(xdgConfigHome, "qsieve"))
	}
	if homeDir != "" {
		paths = append(paths, filepath.Join(homeDir, ".qsieve"))
	}

	return append(paths, ".")
}
