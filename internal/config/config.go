package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "code-reader"
	configFileName = "config.yaml"

	// Sidebar width bounds in pixels.
	MinSidebarWidth = 100
	MaxSidebarWidth = 400
)

// Config holds the settings read at startup. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Theme        string   `yaml:"theme"`         // chroma style name
	SidebarWidth float32  `yaml:"sidebar_width"` // width restored by Toggle File Explorer
	WindowWidth  float32  `yaml:"window_width"`
	WindowHeight float32  `yaml:"window_height"`
	Ignore       []string `yaml:"ignore"` // globs matched against entry names while scanning
	LogLevel     string   `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings: monokai theme, a 250px sidebar
// and a 1280x720 window.
func DefaultConfig() *Config {
	return &Config{
		Theme:        "monokai",
		SidebarWidth: 250,
		WindowWidth:  1280,
		WindowHeight: 720,
		// Windows system folders that are never readable by a normal user
		Ignore:   []string{"System Volume Information", "$Recycle.Bin"},
		LogLevel: "info",
	}
}

// Path returns the location of the config file under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load reads the config file from its default location.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFile(path)
}

// LoadConfigFile merges the YAML file at path over the defaults. A missing
// file yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	if fileCfg.SidebarWidth != 0 {
		cfg.SidebarWidth = fileCfg.SidebarWidth
	}
	if fileCfg.WindowWidth != 0 {
		cfg.WindowWidth = fileCfg.WindowWidth
	}
	if fileCfg.WindowHeight != 0 {
		cfg.WindowHeight = fileCfg.WindowHeight
	}
	if fileCfg.Ignore != nil {
		cfg.Ignore = fileCfg.Ignore
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks sizes and ignore globs.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %gx%g", c.WindowWidth, c.WindowHeight)
	}
	if c.SidebarWidth < MinSidebarWidth || c.SidebarWidth > MaxSidebarWidth {
		return fmt.Errorf("sidebar width must be between %d and %d, got %g", MinSidebarWidth, MaxSidebarWidth, c.SidebarWidth)
	}
	if _, err := c.IgnoreMatchers(); err != nil {
		return err
	}
	return nil
}

// IgnoreMatchers compiles the ignore globs.
func (c *Config) IgnoreMatchers() ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(c.Ignore))
	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}

// ClampSidebarWidth limits w to the allowed sidebar range.
func ClampSidebarWidth(w float32) float32 {
	switch {
	case w < MinSidebarWidth:
		return MinSidebarWidth
	case w > MaxSidebarWidth:
		return MaxSidebarWidth
	}
	return w
}
