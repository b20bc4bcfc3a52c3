package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Name is the config file base name searched for when no path is given.
const Name = "expense-tracker"

// Config represents the application configuration
type Config struct {
	DataFile string `mapstructure:"data_file"` // JSON file holding all expenses
	Currency string `mapstructure:"currency"`  // label printed after amounts
	LogLevel string `mapstructure:"log_level"` // debug, info, warn or error
}

// LoadConfig loads configuration from a TOML file and any bound flags.
// An explicit configPath must exist; with an empty path the file is looked
// up in the working directory and $HOME/.config/expense-tracker and is
// optional.
func LoadConfig(configPath string, flags ...*pflag.Flag) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	// Set defaults
	v.SetDefault("data_file", "expenses.json")
	v.SetDefault("currency", "ETB")
	v.SetDefault("log_level", "warn")

	for _, f := range flags {
		if f == nil {
			continue
		}
		if err := v.BindPFlag(flagKey(f.Name), f); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	}

	if configPath == "" {
		configPath = findConfig()
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// findConfig returns the first Name+".toml" found in the working directory
// or $HOME/.config/expense-tracker, or "" when there is none.
func findConfig() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", Name))
	}
	for _, dir := range dirs {
		path := filepath.Join(dir, Name+".toml")
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// flagKey maps command-line flag names onto config keys.
func flagKey(name string) string {
	switch name {
	case "file":
		return "data_file"
	case "log-level":
		return "log_level"
	default:
		return name
	}
}
