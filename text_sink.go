package mdlines

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Terminal layout defaults.
const (
	DefaultWidth = 80
	MaxWidth     = 1000
	listIndent   = 2
	bullet       = "•"
	ruleChar     = '─'
)

// TextSettings configures terminal output.
type TextSettings struct {
	Theme string // chroma style name or "classic" (default: DefaultThemeName)
	Width int    // columns for horizontal rules (0 = DefaultWidth)
	Color string // "auto", "always", "never" (default: "auto", detected from the writer)
}

// Validate checks that text settings are valid.
// Returns nil if t is nil (nil means use defaults).
func (t *TextSettings) Validate() error {
	if t == nil {
		return nil
	}
	switch strings.ToLower(t.Color) {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q (must be auto, always, or never)", ErrInvalidColorMode, t.Color)
	}
	if t.Width < 0 || t.Width > MaxWidth {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidWidth, t.Width, MaxWidth)
	}
	return nil
}

// TextSink writes blocks to a terminal as styled text.
// Write errors are sticky: after the first failure nothing more is written
// and Err reports it.
type TextSink struct {
	w     io.Writer
	width int
	err   error

	heading    [7]lipgloss.Style
	bullet     lipgloss.Style
	link       lipgloss.Style
	image      lipgloss.Style
	rule       lipgloss.Style
	text       lipgloss.Style
	ruleString string
}

// Compile-time interface check.
var _ Sink = (*TextSink)(nil)

// NewTextSink creates a TextSink writing to w. A nil settings value uses
// defaults.
func NewTextSink(w io.Writer, settings *TextSettings) (*TextSink, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &TextSettings{}
	}

	theme, err := LoadTheme(settings.Theme)
	if err != nil {
		return nil, err
	}

	r := lipgloss.NewRenderer(w)
	switch strings.ToLower(settings.Color) {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	width := settings.Width
	if width == 0 {
		width = DefaultWidth
	}

	s := &TextSink{w: w, width: width}
	s.applyTheme(r, theme)
	return s, nil
}

// applyTheme builds the block styles. Tabs pass through unchanged.
func (s *TextSink) applyTheme(r *lipgloss.Renderer, theme *Theme) {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	s.heading[1] = base.Foreground(theme.Heading).Bold(true).Underline(true)
	s.heading[2] = base.Foreground(theme.Heading).Bold(true)
	for level := 3; level < len(s.heading); level++ {
		s.heading[level] = base.Foreground(theme.Subheading)
	}
	s.bullet = base.Foreground(theme.Bullet)
	s.link = base.Foreground(theme.Link)
	s.image = base.Foreground(theme.Image)
	s.rule = base.Foreground(theme.Rule)
	s.text = base.Foreground(theme.Text)

	n := s.width / max(1, runewidth.RuneWidth(ruleChar))
	s.ruleString = strings.Repeat(string(ruleChar), n)
}

// Err returns the first write error, if any.
func (s *TextSink) Err() error {
	return s.err
}

func (s *TextSink) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

// Header writes text in the heading style for level, clamped to 1-6.
func (s *TextSink) Header(text string, level int) {
	level = min(max(level, 1), len(s.heading)-1)
	s.write(s.heading[level].Render(text))
}

// UnorderedItem writes an indented bullet item.
func (s *TextSink) UnorderedItem(text string) {
	s.item(text)
}

// OrderedItem uses the same bullet as UnorderedItem: the ordinal is not
// known here.
func (s *TextSink) OrderedItem(text string) {
	s.item(text)
}

func (s *TextSink) item(text string) {
	s.write(strings.Repeat(" ", listIndent) + s.bullet.Render(bullet) + " " + s.text.Render(text))
}

// Link writes "[Link](url): label".
func (s *TextSink) Link(label, url string) {
	s.write(s.link.Render(fmt.Sprintf("[Link](%s): %s", url, label)))
}

// Image writes "[Image](url): alt".
func (s *TextSink) Image(alt, url string) {
	s.write(s.image.Render(fmt.Sprintf("[Image](%s): %s", url, alt)))
}

// HorizontalRule writes a rule spanning the configured width.
func (s *TextSink) HorizontalRule() {
	s.write(s.rule.Render(s.ruleString))
}

// Paragraph writes text as is. An empty line writes nothing.
func (s *TextSink) Paragraph(text string) {
	if text == "" {
		return
	}
	s.write(s.text.Render(text))
}

// Separator ends the current line.
func (s *TextSink) Separator() {
	s.write("\n")
}
