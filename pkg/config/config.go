// Package config loads ambient defaults for the CLI from environment
// variables and an optional config file. The scan pipeline itself never
// sees viper; resolved values are copied into an explicit ScanConfig.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the tool's ambient settings.
type Config struct {
	Format         string   `mapstructure:"format"`           // default output format
	MaxFileSizeKB  int64    `mapstructure:"max_file_size_kb"` // size cap for scanned files
	IgnoreDirs     []string `mapstructure:"ignore_dirs"`      // extra directory basenames to prune
	IgnoreExts     []string `mapstructure:"ignore_exts"`      // extra extensions to exclude
	ExcludeFolders []string `mapstructure:"exclude_folders"`  // default excluded folder paths
	Verbose        bool     `mapstructure:"verbose"`          // development logging
}

// Load resolves configuration from defaults, an optional config file, and
// COMPENDEX_* environment variables, in increasing precedence.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("format", "markdown")
	v.SetDefault("max_file_size_kb", 1024)
	v.SetDefault("ignore_dirs", []string{})
	v.SetDefault("ignore_exts", []string{})
	v.SetDefault("exclude_folders", []string{})
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("COMPENDEX")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}
