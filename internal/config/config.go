// Package config holds the command line tool's configuration: defaults, the
// YAML configuration file and validation.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/pptxhtml/internal/log"
	"github.com/tsawler/pptxhtml/model"
)

// AppName is the application name used for XDG directory paths.
const AppName = "pptxhtml"

// DefaultConfigFile is the configuration file name inside the XDG config
// directory.
const DefaultConfigFile = "config.yaml"

// Default configuration values.
const (
	DefaultPageTag    = "div"
	DefaultLeftDelim  = "<"
	DefaultRightDelim = ">"
	DefaultLogLevel   = "warn"
)

var (
	// ErrConfigNotFound is returned when an explicitly named configuration
	// file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrEmptyPageTag is returned when page_tag is empty.
	ErrEmptyPageTag = errors.New("invalid page tag: must not be empty")
	// ErrEmptyDelimiter is returned when left_delim or right_delim is empty.
	ErrEmptyDelimiter = errors.New("invalid delimiter: must not be empty")
	// ErrInvalidConcurrency is returned when concurrency is below 1.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be at least 1")
	// ErrInvalidLogLevel is returned for an unknown log_level.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidBulletStyle is returned for an unknown default_bullet_style.
	ErrInvalidBulletStyle = errors.New("invalid default bullet style")
)

// Config holds the tool's options. Field tags name the YAML keys.
type Config struct {
	PageTag            string `yaml:"page_tag"`
	LeftDelim          string `yaml:"left_delim"`
	RightDelim         string `yaml:"right_delim"`
	ExplicitLeftAlign  bool   `yaml:"explicit_left_align"`
	DefaultBulletStyle string `yaml:"default_bullet_style"`
	Concurrency        int    `yaml:"concurrency"`

	// Cache enables the conversion cache at CacheDir.
	Cache    bool   `yaml:"cache"`
	CacheDir string `yaml:"cache_dir"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		PageTag:            DefaultPageTag,
		LeftDelim:          DefaultLeftDelim,
		RightDelim:         DefaultRightDelim,
		DefaultBulletStyle: model.NoBullets.String(),
		Concurrency:        4,
		Cache:              true,
		CacheDir:           XDGCacheDir(),
		LogLevel:           DefaultLogLevel,
	}
}

// XDGConfigDir returns the XDG config directory for pptxhtml.
// On Linux: ~/.config/pptxhtml
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for pptxhtml.
// On Linux: ~/.cache/pptxhtml
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// DefaultPath returns the path of the default configuration file.
func DefaultPath() string {
	return filepath.Join(XDGConfigDir(), DefaultConfigFile)
}

// Load reads the configuration file at path over the defaults. An empty path
// loads the default file, whose absence is not an error. A missing explicit
// file returns ErrConfigNotFound.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, ErrConfigNotFound
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate returns the first problem found in the configuration.
func (c *Config) Validate() error {
	if c.PageTag == "" {
		return ErrEmptyPageTag
	}
	if c.LeftDelim == "" || c.RightDelim == "" {
		return ErrEmptyDelimiter
	}
	if c.Concurrency < 1 {
		return ErrInvalidConcurrency
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return ErrInvalidLogLevel
	}
	if _, err := c.BulletStyle(); err != nil {
		return ErrInvalidBulletStyle
	}
	return nil
}

// BulletStyle parses DefaultBulletStyle. An empty value is NoBullets.
func (c *Config) BulletStyle() (model.BulletStyle, error) {
	if c.DefaultBulletStyle == "" {
		return model.NoBullets, nil
	}
	return model.ParseBulletStyle(c.DefaultBulletStyle)
}
