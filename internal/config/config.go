// Package config loads client configuration from an optional YAML file,
// environment variables (TAPDECK_*), and a local .env file, in ascending
// precedence of env over file over defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production backend.
const DefaultBaseURL = "https://api.tapdeck.app/api/v1"

// DefaultTimeout is the fixed per-request HTTP timeout.
const DefaultTimeout = 15 * time.Second

// Config holds the client settings.
type Config struct {
	// BaseURL is the backend API root.
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds every HTTP request.
	Timeout time.Duration `mapstructure:"timeout"`
	// DataDir is where the credential store and device key live.
	DataDir string `mapstructure:"data_dir"`
	// Debug enables verbose logging.
	Debug bool `mapstructure:"debug"`
}

// DefaultDataDir returns ~/.tapdeck, falling back to the working directory
// when the home directory cannot be determined.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tapdeck"
	}
	return filepath.Join(home, ".tapdeck")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// Load reads the configuration. cfgFile overrides the default config file
// location; a missing config file is not an error, the defaults stand.
func Load(cfgFile string) (*Config, error) {
	// Pick up a local .env first so its values are visible to viper.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout.String())
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("debug", false)

	v.SetEnvPrefix("TAPDECK")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDataDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &cfg, nil
}

// WriteDefault writes a starter config file at path. It refuses to overwrite
// an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	doc := map[string]string{
		"base_url": DefaultBaseURL,
		"timeout":  DefaultTimeout.String(),
		"data_dir": DefaultDataDir(),
	}
	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
