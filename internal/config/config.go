// Package config loads the YAML configuration of the mdlines CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-mdlines/internal/dateutil"
	"github.com/alnah/go-mdlines/internal/fileutil"
	"github.com/alnah/go-mdlines/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-mdlines"

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxNameLength      = 64   // theme, style, format, color, page size
	MaxTitleLength     = 200  // HTML title
	MaxUserAgentLength = 256  // HTTP User-Agent
	MaxStyleLength     = 4096 // style name, path, or inline CSS
	MaxDurationLength  = 20   // "30s", "1m30s"
)

// Value bounds.
const (
	MaxWidth  = 1000
	MinMargin = 0.25
	MaxMargin = 3.0
)

var (
	formats      = []string{"text", "html", "pdf"}
	colorModes   = []string{"auto", "always", "never"}
	pageSizes    = []string{"letter", "a4", "legal"}
	orientations = []string{"portrait", "landscape"}
)

// Config holds all configuration for the CLI.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Text   TextConfig   `yaml:"text"`
	HTML   HTMLConfig   `yaml:"html"`
	Assets AssetsConfig `yaml:"assets"`
	Fetch  FetchConfig  `yaml:"fetch"`
	PDF    PDFConfig    `yaml:"pdf"`
}

// OutputConfig defines output format and destination.
type OutputConfig struct {
	Format     string `yaml:"format"`     // "text", "html", "pdf" (default: "text")
	DefaultDir string `yaml:"defaultDir"` // empty = stdout, or next to the source for pdf
}

// TextConfig defines terminal rendering.
type TextConfig struct {
	Theme string `yaml:"theme"` // chroma style name or "classic"
	Width int    `yaml:"width"` // 0 = terminal width
	Color string `yaml:"color"` // "auto", "always", "never"
}

// HTMLConfig defines HTML and PDF document options.
type HTMLConfig struct {
	Title string `yaml:"title"` // empty = first header
	Style string `yaml:"style"` // style name, CSS file path, or inline CSS
	Date  string `yaml:"date"`  // literal, "auto" or "auto:FORMAT"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded styles only
}

// FetchConfig defines remote document retrieval.
type FetchConfig struct {
	Timeout   string `yaml:"timeout"`   // Go duration, e.g. "30s"
	MaxBytes  int64  `yaml:"maxBytes"`  // 0 = library default
	UserAgent string `yaml:"userAgent"` // empty = library default
}

// PDFConfig defines PDF page settings.
type PDFConfig struct {
	PageSize    string  `yaml:"pageSize"`    // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches, 0 = default
	Timeout     string  `yaml:"timeout"`     // Go duration for the whole conversion
}

// FetchTimeout returns the parsed fetch timeout, or zero when unset.
func (c *Config) FetchTimeout() time.Duration {
	d, _ := parseDuration(c.Fetch.Timeout)
	return d
}

// PDFTimeout returns the parsed conversion timeout, or zero when unset.
func (c *Config) PDFTimeout() time.Duration {
	d, _ := parseDuration(c.PDF.Timeout)
	return d
}

// Validate checks field lengths, enumerations and ranges.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"output.format", c.Output.Format, MaxNameLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"text.theme", c.Text.Theme, MaxNameLength},
		{"text.color", c.Text.Color, MaxNameLength},
		{"html.title", c.HTML.Title, MaxTitleLength},
		{"html.style", c.HTML.Style, MaxStyleLength},
		{"html.date", c.HTML.Date, MaxTitleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"fetch.timeout", c.Fetch.Timeout, MaxDurationLength},
		{"fetch.userAgent", c.Fetch.UserAgent, MaxUserAgentLength},
		{"pdf.pageSize", c.PDF.PageSize, MaxNameLength},
		{"pdf.orientation", c.PDF.Orientation, MaxNameLength},
		{"pdf.timeout", c.PDF.Timeout, MaxDurationLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if err := validateEnum("output.format", c.Output.Format, formats); err != nil {
		return err
	}
	if err := validateEnum("text.color", c.Text.Color, colorModes); err != nil {
		return err
	}
	if err := validateEnum("pdf.pageSize", c.PDF.PageSize, pageSizes); err != nil {
		return err
	}
	if err := validateEnum("pdf.orientation", c.PDF.Orientation, orientations); err != nil {
		return err
	}

	if c.Text.Width < 0 || c.Text.Width > MaxWidth {
		return fmt.Errorf("%w: text.width must be between 0 and %d, got %d", ErrInvalidValue, MaxWidth, c.Text.Width)
	}
	if c.Fetch.MaxBytes < 0 {
		return fmt.Errorf("%w: fetch.maxBytes must not be negative, got %d", ErrInvalidValue, c.Fetch.MaxBytes)
	}
	if c.PDF.Margin != 0 && (c.PDF.Margin < MinMargin || c.PDF.Margin > MaxMargin) {
		return fmt.Errorf("%w: pdf.margin must be between %.2f and %.2f, got %.2f", ErrInvalidValue, MinMargin, MaxMargin, c.PDF.Margin)
	}

	if _, err := parseDuration(c.Fetch.Timeout); err != nil {
		return fmt.Errorf("%w: fetch.timeout: %v", ErrInvalidValue, err)
	}
	if _, err := parseDuration(c.PDF.Timeout); err != nil {
		return fmt.Errorf("%w: pdf.timeout: %v", ErrInvalidValue, err)
	}

	if _, err := dateutil.Resolve(c.HTML.Date, time.Now()); err != nil {
		return fmt.Errorf("%w: html.date: %v", ErrInvalidValue, err)
	}

	if c.Assets.BasePath != "" {
		info, err := os.Stat(c.Assets.BasePath)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: assets.basePath: directory does not exist: %s", ErrInvalidValue, c.Assets.BasePath)
			}
			return fmt.Errorf("%w: assets.basePath: %v", ErrInvalidValue, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: assets.basePath: not a directory: %s", ErrInvalidValue, c.Assets.BasePath)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, ignoring case.
func validateEnum(fieldName, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, strings.ToLower(value)) {
		return nil
	}
	return fmt.Errorf("%w: %s %q (must be %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// parseDuration parses a positive Go duration. Empty means unset.
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}

// DefaultConfig returns a configuration where every field falls back to the
// library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-mdlines/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// Marshal renders cfg as YAML, for "mdlines config" output.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}
