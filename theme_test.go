package mdlines

import (
	"errors"
	"slices"
	"testing"
)

func TestLoadTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		theme    string
		wantName string
		wantErr  error
	}{
		{"empty uses default", "", DefaultThemeName, nil},
		{"classic", "classic", "classic", nil},
		{"chroma style", "dracula", "dracula", nil},
		{"unknown", "not-a-theme", "", ErrUnknownTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadTheme(tt.theme)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTheme(%q) error = %v, want %v", tt.theme, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTheme(%q) unexpected error: %v", tt.theme, err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Heading == "" {
				t.Errorf("Heading colour is empty")
			}
		})
	}
}

func TestClassicTheme_IsACopy(t *testing.T) {
	t.Parallel()

	a := ClassicTheme()
	a.Heading = "#123456"

	if b := ClassicTheme(); b.Heading == a.Heading {
		t.Error("modifying a ClassicTheme result leaked into the next one")
	}
}

func TestThemeNames(t *testing.T) {
	t.Parallel()

	names := ThemeNames()
	if len(names) < 2 || names[0] != "classic" {
		t.Fatalf("ThemeNames() = %v, want classic first", names)
	}
	if !slices.Contains(names, DefaultThemeName) {
		t.Errorf("ThemeNames() missing default %q", DefaultThemeName)
	}
}
