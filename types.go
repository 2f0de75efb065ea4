package mdlines

import (
	"fmt"
	"strings"
	"time"
)

// Output formats.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatHTML, FormatPDF}
}

// ValidateFormat checks that format is supported. Empty means FormatText.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "", FormatText, FormatHTML, FormatPDF:
		return nil
	}
	return fmt.Errorf("%w: %q (must be text, html, or pdf)", ErrUnknownFormat, format)
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // document text; may be empty
	Format   string // "text", "html", "pdf" (default: "text")

	// NormalizeNewlines converts \r\n and \r to \n before classification.
	// Without it a trailing \r stays part of each line.
	NormalizeNewlines bool

	Title string        // HTML/PDF title (empty = first header)
	Date  string        // HTML/PDF document date, used verbatim
	CSS   string        // extra CSS appended after the converter style
	Text  *TextSettings // terminal settings (nil = converter defaults)
	Page  *PageSettings // PDF page settings (nil = converter defaults)

	// BaseDir resolves relative image and link references in PDF output.
	// ConvertFrom sets it to the directory of a local file.
	BaseDir string
}

// Result holds the rendered output.
type Result struct {
	Format string
	Output []byte
	Stats  Stats
}

// Stats counts what the dispatcher produced.
type Stats struct {
	Lines  int
	Blocks map[Kind]int
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	styleInput    string
	resolvedStyle string
	assetPath     string
	text          *TextSettings
	page          *PageSettings
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdlines: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle sets the CSS used for HTML and PDF output. The value may be a
// style name, a file path, or literal CSS.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory whose styles/ override the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithTextSettings sets the default terminal settings.
func WithTextSettings(t *TextSettings) Option {
	return func(c *Converter) {
		c.cfg.text = t
	}
}

// WithPageSettings sets the default PDF page settings.
func WithPageSettings(p *PageSettings) Option {
	return func(c *Converter) {
		c.cfg.page = p
	}
}

// WithSource sets the DocumentSource used by ConvertFrom.
func WithSource(src DocumentSource) Option {
	return func(c *Converter) {
		if src != nil {
			c.source = src
		}
	}
}
