package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/paperlang/paper/format"
	"github.com/spf13/viper"
)

//go:embed defaults.toml
var defaultsToml string

var (
	cfg     *Config
	styles  Styles
	once    sync.Once
	loadErr error
)

// Load initializes configuration from embedded defaults and user config
// files. Safe to call multiple times; only loads once.
func Load() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = load()
		if cfg != nil {
			styles = cfg.TUI.Theme.BuildStyles()
		}
	})
	return cfg, loadErr
}

// Get returns the loaded configuration. Panics if Load hasn't been
// called successfully first.
func Get() *Config {
	if cfg == nil {
		panic("config.Load() must be called before config.Get()")
	}
	return cfg
}

// GetStyles returns the pre-built lipgloss styles from the loaded theme.
func GetStyles() Styles {
	if cfg == nil {
		panic("config.Load() must be called before config.GetStyles()")
	}
	return styles
}

func load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if err := v.ReadConfig(strings.NewReader(defaultsToml)); err != nil {
		panic("config: invalid embedded defaults.toml: " + err.Error())
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		fallback := filepath.Join(home, ".paperrc.toml")
		if _, statErr := os.Stat(fallback); statErr == nil {
			v.SetConfigFile(fallback)
			_ = v.MergeInConfig()
		}

		xdg := filepath.Join(home, ".config", "paper", "config.toml")
		if _, statErr := os.Stat(xdg); statErr == nil {
			v.SetConfigFile(xdg)
			_ = v.MergeInConfig()
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if _, ok := format.ValidateLocale(c.Calculator.UserLocale); !ok {
		return nil, fmt.Errorf("config: invalid user_locale %q", c.Calculator.UserLocale)
	}
	return &c, nil
}

// Reload forces a fresh config load. Intended for tests only.
func Reload() (*Config, error) {
	once = sync.Once{}
	cfg = nil
	styles = Styles{}
	loadErr = nil
	return Load()
}

// Error returns any error from the last load attempt.
func Error() error {
	return loadErr
}
