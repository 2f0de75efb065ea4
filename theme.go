package mdlines

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// DefaultThemeName is the chroma style used when no theme is configured.
const DefaultThemeName = "monokai"

// Theme holds the terminal colours for each block kind.
type Theme struct {
	Name       string
	Heading    lipgloss.Color
	Subheading lipgloss.Color
	Bullet     lipgloss.Color
	Link       lipgloss.Color
	Image      lipgloss.Color
	Rule       lipgloss.Color
	Text       lipgloss.Color
}

// fallbackTheme mirrors the classic viewer: red headers, blue links,
// green images.
var fallbackTheme = Theme{
	Name:       "classic",
	Heading:    lipgloss.Color("#ff0000"),
	Subheading: lipgloss.Color("#ff0000"),
	Bullet:     lipgloss.Color(""),
	Link:       lipgloss.Color("#0000ff"),
	Image:      lipgloss.Color("#00ff00"),
	Rule:       lipgloss.Color("#888888"),
	Text:       lipgloss.Color(""),
}

// ClassicTheme returns the fixed red/blue/green palette.
func ClassicTheme() *Theme {
	t := fallbackTheme
	return &t
}

// LoadTheme derives a Theme from the chroma style called name.
// "classic" selects ClassicTheme. Token colours a style leaves unset fall
// back to the classic palette.
func LoadTheme(name string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}
	if name == fallbackTheme.Name {
		return ClassicTheme(), nil
	}

	style, ok := styles.Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	return &Theme{
		Name:       name,
		Heading:    colourOf(style, chroma.GenericHeading, fallbackTheme.Heading),
		Subheading: colourOf(style, chroma.GenericSubheading, fallbackTheme.Subheading),
		Bullet:     colourOf(style, chroma.Keyword, fallbackTheme.Bullet),
		Link:       colourOf(style, chroma.NameTag, fallbackTheme.Link),
		Image:      colourOf(style, chroma.LiteralString, fallbackTheme.Image),
		Rule:       colourOf(style, chroma.Comment, fallbackTheme.Rule),
		Text:       colourOf(style, chroma.Text, fallbackTheme.Text),
	}, nil
}

// ThemeNames lists the accepted theme names.
func ThemeNames() []string {
	return append([]string{fallbackTheme.Name}, styles.Names()...)
}

func colourOf(style *chroma.Style, token chroma.TokenType, fallback lipgloss.Color) lipgloss.Color {
	entry := style.Get(token)
	if !entry.Colour.IsSet() {
		return fallback
	}
	return lipgloss.Color(entry.Colour.String())
}
