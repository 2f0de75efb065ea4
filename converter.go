package mdlines

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-mdlines/internal/assets"
	"github.com/alnah/go-mdlines/internal/fileutil"
)

// Line ending normalization, applied only when Input.NormalizeNewlines is set.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Converter renders Markdown documents to terminal text, HTML or PDF.
// Create with NewConverter, use Convert or ConvertFrom, and Close when done.
// A Converter is not safe for concurrent use; use a ConverterPool.
type Converter struct {
	cfg          converterConfig
	styleLoader  assets.StyleLoader
	source       DocumentSource
	pdfConverter pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Returns an error if the asset path or style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:         converterConfig{timeout: defaultTimeout},
		styleLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.text.Validate(); err != nil {
		return nil, err
	}
	if c.cfg.text != nil {
		if _, err := LoadTheme(c.cfg.text.Theme); err != nil {
			return nil, err
		}
	}
	if err := c.cfg.page.Validate(); err != nil {
		return nil, err
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.styleLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.source == nil {
		c.source = NewAutoSource()
	}

	// Browser connection is lazy; nothing is launched until a PDF is needed.
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert renders input.Markdown in the requested format.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	markdown := input.Markdown
	if input.NormalizeNewlines {
		markdown = NormalizeNewlines(markdown)
	}

	format := strings.ToLower(input.Format)
	if format == "" {
		format = FormatText
	}

	var counter Counter
	var out []byte
	switch format {
	case FormatText:
		out, err = c.renderText(ctx, markdown, input, &counter)
	case FormatHTML:
		out, err = c.renderHTML(ctx, markdown, input, "", &counter)
	case FormatPDF:
		out, err = c.renderPDF(ctx, markdown, input, &counter)
	}
	if err != nil {
		return nil, err
	}

	return &Result{Format: format, Output: out, Stats: counter.Stats()}, nil
}

// ConvertFrom fetches location through the converter's DocumentSource and
// renders it. input.Markdown is replaced by the fetched text. For local
// files an empty input.BaseDir defaults to the file's directory.
func (c *Converter) ConvertFrom(ctx context.Context, location string, input Input) (*Result, error) {
	text, err := c.source.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	input.Markdown = text
	if input.BaseDir == "" && !IsURL(location) {
		input.BaseDir = filepath.Dir(location)
	}
	return c.Convert(ctx, input)
}

func (c *Converter) renderText(ctx context.Context, markdown string, input Input, counter *Counter) ([]byte, error) {
	settings := input.Text
	if settings == nil {
		settings = c.cfg.text
	}

	var buf bytes.Buffer
	sink, err := NewTextSink(&buf, settings)
	if err != nil {
		return nil, err
	}

	if err := RenderContext(ctx, markdown, Tee(sink, counter)); err != nil {
		return nil, err
	}
	if err := sink.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSinkWrite, err)
	}
	return buf.Bytes(), nil
}

// renderHTML builds the HTML document. A non-empty baseDir turns relative
// image and link references into file:// URLs.
func (c *Converter) renderHTML(ctx context.Context, markdown string, input Input, baseDir string, counter *Counter) ([]byte, error) {
	sink := NewHTMLSink()
	if err := RenderContext(ctx, markdown, Tee(sink, counter)); err != nil {
		return nil, err
	}

	css := c.cfg.resolvedStyle
	if input.CSS != "" {
		css += "\n" + input.CSS
	}

	var buf bytes.Buffer
	if err := sink.WriteDocument(&buf, HTMLDocument{Title: input.Title, CSS: css, Date: input.Date, BaseDir: baseDir}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSinkWrite, err)
	}
	return buf.Bytes(), nil
}

func (c *Converter) renderPDF(ctx context.Context, markdown string, input Input, counter *Counter) ([]byte, error) {
	htmlContent, err := c.renderHTML(ctx, markdown, input, input.BaseDir, counter)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page == nil {
		page = c.cfg.page
	}

	pdf, err := c.pdfConverter.ToPDF(ctx, string(htmlContent), page)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdf, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS
// content. An empty input selects the default embedded style.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	if isCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	css, err := c.styleLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// NormalizeNewlines converts "\r\n" and lone "\r" line endings to "\n".
func NormalizeNewlines(s string) string {
	return crlfOrCR.ReplaceAllString(s, "\n")
}

// isCSS reports whether s is literal CSS rather than a name or path.
func isCSS(s string) bool {
	return strings.Contains(s, "{")
}

// validateInput checks format and per-call settings.
func (c *Converter) validateInput(input Input) error {
	if err := ValidateFormat(input.Format); err != nil {
		return err
	}
	if err := input.Text.Validate(); err != nil {
		return err
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return nil
}

// StyleNames lists the built-in HTML styles.
func StyleNames() []string {
	return assets.NewEmbeddedLoader().StyleNames()
}
