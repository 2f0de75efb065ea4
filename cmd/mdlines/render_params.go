package main

import (
	"fmt"
	"strings"
	"time"

	mdlines "github.com/alnah/go-mdlines"
	"github.com/alnah/go-mdlines/internal/config"
	"github.com/alnah/go-mdlines/internal/dateutil"
)

// renderParams groups everything resolved once for a whole batch.
type renderParams struct {
	format    string
	outputDir string
	workers   int
	opts      []mdlines.Option
	input     mdlines.Input
}

// loadConfig loads the config named by the flag or MDLINES_CONFIG and
// applies environment overrides. Without a name, defaults are used.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags copies explicitly set render flags into cfg (CLI wins).
func mergeFlags(f *renderFlags, cfg *config.Config) {
	setIfGiven(&cfg.Output.Format, f.format)
	setIfGiven(&cfg.Text.Theme, f.text.theme)
	setIfGiven(&cfg.Text.Color, f.text.color)
	setIfGiven(&cfg.HTML.Title, f.html.title)
	setIfGiven(&cfg.HTML.Style, f.html.style)
	setIfGiven(&cfg.HTML.Date, f.html.date)
	setIfGiven(&cfg.Assets.BasePath, f.assetPath)
	setIfGiven(&cfg.PDF.PageSize, f.page.size)
	setIfGiven(&cfg.PDF.Orientation, f.page.orientation)

	if f.text.width != 0 {
		cfg.Text.Width = f.text.width
	}
	if f.page.margin != 0 {
		cfg.PDF.Margin = f.page.margin
	}
	if f.timeout > 0 {
		cfg.PDF.Timeout = f.timeout.String()
	}

	mergeFetchFlags(&f.fetch, cfg)
}

// mergeFetchFlags copies explicitly set fetch flags into cfg.
func mergeFetchFlags(f *fetchFlags, cfg *config.Config) {
	if f.timeout > 0 {
		cfg.Fetch.Timeout = f.timeout.String()
	}
	if f.maxBytes != 0 {
		cfg.Fetch.MaxBytes = f.maxBytes
	}
	setIfGiven(&cfg.Fetch.UserAgent, f.userAgent)
}

// setIfGiven overwrites dst when the flag was given.
func setIfGiven(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

// buildRenderParams resolves cfg into converter options and the per-document
// input template.
func buildRenderParams(f *renderFlags, cfg *config.Config, envCfg *envConfig, env *Environment) (*renderParams, error) {
	format := strings.ToLower(cfg.Output.Format)
	if format == "" {
		format = mdlines.FormatText
	}
	if err := mdlines.ValidateFormat(format); err != nil {
		return nil, err
	}

	date, err := dateutil.Resolve(cfg.HTML.Date, env.Now())
	if err != nil {
		return nil, err
	}

	timeout := resolveTimeout(f.timeout, envCfg.Timeout, cfg.PDFTimeout())

	workers := f.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return nil, err
	}

	outputDir := f.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	opts := []mdlines.Option{
		mdlines.WithStyle(cfg.HTML.Style),
		mdlines.WithAssetPath(cfg.Assets.BasePath),
		mdlines.WithTextSettings(buildTextSettings(cfg, env, writesToStdout(outputDir, format))),
		mdlines.WithPageSettings(buildPageSettings(cfg)),
		mdlines.WithSource(buildSource(cfg)),
	}
	if timeout > 0 {
		opts = append(opts, mdlines.WithTimeout(timeout))
	}

	return &renderParams{
		format:    format,
		outputDir: outputDir,
		workers:   workers,
		opts:      opts,
		input: mdlines.Input{
			Format:            format,
			NormalizeNewlines: f.crlf,
			Title:             cfg.HTML.Title,
			Date:              date,
		},
	}, nil
}

// buildTextSettings falls back to the terminal width when none is configured
// and resolves the "auto" color mode.
func buildTextSettings(cfg *config.Config, env *Environment, toStdout bool) *mdlines.TextSettings {
	width := cfg.Text.Width
	if width == 0 && env.TermWidth != nil {
		width = min(env.TermWidth(), mdlines.MaxWidth)
	}
	return &mdlines.TextSettings{
		Theme: cfg.Text.Theme,
		Width: width,
		Color: env.colorFor(cfg.Text.Color, toStdout),
	}
}

// writesToStdout reports whether documents of format go to stdout.
func writesToStdout(outputDir, format string) bool {
	return outputDir == stdio || (outputDir == "" && format != mdlines.FormatPDF)
}

// buildPageSettings overlays configured values on the default page.
func buildPageSettings(cfg *config.Config) *mdlines.PageSettings {
	page := mdlines.DefaultPageSettings()
	if cfg.PDF.PageSize != "" {
		page.Size = strings.ToLower(cfg.PDF.PageSize)
	}
	if cfg.PDF.Orientation != "" {
		page.Orientation = strings.ToLower(cfg.PDF.Orientation)
	}
	if cfg.PDF.Margin != 0 {
		page.Margin = cfg.PDF.Margin
	}
	return page
}

// buildSource creates the document source used for files and URLs.
func buildSource(cfg *config.Config) mdlines.DocumentSource {
	var opts []mdlines.FetchOption
	if d := cfg.FetchTimeout(); d > 0 {
		opts = append(opts, mdlines.WithFetchTimeout(d))
	}
	opts = append(opts,
		mdlines.WithMaxBytes(cfg.Fetch.MaxBytes),
		mdlines.WithUserAgent(cfg.Fetch.UserAgent),
	)

	return &mdlines.AutoSource{
		Remote: mdlines.NewHTTPSource(opts...),
		Local:  &mdlines.FileSource{MaxBytes: cfg.Fetch.MaxBytes},
	}
}

// resolveTimeout returns the first positive duration.
func resolveTimeout(candidates ...time.Duration) time.Duration {
	for _, d := range candidates {
		if d > 0 {
			return d
		}
	}
	return 0
}
