package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level ideation configuration.
type Config struct {
	Focus          string   `mapstructure:"focus"`
	MaxFiles       int      `mapstructure:"max_files"`
	IgnorePatterns []string `mapstructure:"ignore_patterns"`
	Concurrency    int      `mapstructure:"concurrency"`
	Output         Output   `mapstructure:"output"`
	Report         Report   `mapstructure:"report"`

	// File is the config file that was read, or "" when only defaults and
	// environment applied.
	File string `mapstructure:"-"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Report defines report preferences.
type Report struct {
	Format string `mapstructure:"format"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration and returns a Config with all defaults applied.
// cfgFile wins when set. Otherwise .ideation.yaml in root is used if it
// exists, then the user-wide file. Environment variables prefixed with
// IDEATION_ override file values.
func Load(cfgFile, root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("focus", DefaultFocus)
	v.SetDefault("max_files", DefaultMaxFiles)
	v.SetDefault("ignore_patterns", DefaultIgnorePatterns)
	v.SetDefault("concurrency", DefaultConcurrency)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("report.format", DefaultReport.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case cfgFile != "":
		v.SetConfigFile(expandPath(cfgFile))
	case root != "" && fileExists(filepath.Join(root, ProjectConfigFile)):
		v.SetConfigFile(filepath.Join(root, ProjectConfigFile))
		v.SetConfigType("yaml")
	default:
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName(strings.TrimSuffix(DefaultConfigFile, filepath.Ext(DefaultConfigFile)))
		v.SetConfigType("yaml")
	}

	// A missing file is not an error unless it was asked for explicitly.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			if cfgFile != "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if cfg.File != "" && !fileExists(cfg.File) {
		cfg.File = ""
	}

	return &cfg, nil
}

// ConfigDir returns the expanded user-wide configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
