package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-mdlines/internal/config"
)

// envPrefix marks the environment variables read by mdlines.
const envPrefix = "MDLINES_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // MDLINES_CONFIG: config file name or path
	Format     string        // MDLINES_FORMAT: text, html, pdf
	Theme      string        // MDLINES_THEME: terminal theme
	Color      string        // MDLINES_COLOR: auto, always, never
	Style      string        // MDLINES_STYLE: CSS style name or path
	Date       string        // MDLINES_DATE: document date
	OutputDir  string        // MDLINES_OUTPUT_DIR: default output directory
	UserAgent  string        // MDLINES_USER_AGENT: HTTP User-Agent
	Timeout    time.Duration // MDLINES_TIMEOUT: per-document timeout
	Workers    int           // MDLINES_WORKERS: parallel workers
}

// knownEnvVars lists valid MDLINES_* environment variables.
var knownEnvVars = map[string]bool{
	"MDLINES_CONFIG":     true,
	"MDLINES_FORMAT":     true,
	"MDLINES_THEME":      true,
	"MDLINES_COLOR":      true,
	"MDLINES_STYLE":      true,
	"MDLINES_DATE":       true,
	"MDLINES_OUTPUT_DIR": true,
	"MDLINES_USER_AGENT": true,
	"MDLINES_TIMEOUT":    true,
	"MDLINES_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and counts are logged and ignored.
func loadEnvConfig(logger *slog.Logger) *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDLINES_CONFIG"),
		Format:     os.Getenv("MDLINES_FORMAT"),
		Theme:      os.Getenv("MDLINES_THEME"),
		Color:      os.Getenv("MDLINES_COLOR"),
		Style:      os.Getenv("MDLINES_STYLE"),
		Date:       os.Getenv("MDLINES_DATE"),
		OutputDir:  os.Getenv("MDLINES_OUTPUT_DIR"),
		UserAgent:  os.Getenv("MDLINES_USER_AGENT"),
	}

	if v := os.Getenv("MDLINES_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		} else {
			logger.Warn("ignoring invalid environment variable", "name", "MDLINES_TIMEOUT", "value", v)
		}
	}

	if v := os.Getenv("MDLINES_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		} else {
			logger.Warn("ignoring invalid environment variable", "name", "MDLINES_WORKERS", "value", v)
		}
	}

	return cfg
}

// warnUnknownEnvVars logs unrecognized MDLINES_* variables, usually typos.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			logger.Warn("unknown environment variable", "name", name)
		}
	}
}

// applyEnvConfig copies environment values into empty config fields.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIfEmpty(&cfg.Output.Format, env.Format)
	setIfEmpty(&cfg.Output.DefaultDir, env.OutputDir)
	setIfEmpty(&cfg.Text.Theme, env.Theme)
	setIfEmpty(&cfg.Text.Color, env.Color)
	setIfEmpty(&cfg.HTML.Style, env.Style)
	setIfEmpty(&cfg.HTML.Date, env.Date)
	setIfEmpty(&cfg.Fetch.UserAgent, env.UserAgent)
}

func setIfEmpty(dst *string, v string) {
	if v != "" && *dst == "" {
		*dst = v
	}
}
