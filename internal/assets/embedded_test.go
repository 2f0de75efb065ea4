package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		style     string
		wantErr   error
		wantMatch string
	}{
		{name: "default style", style: DefaultStyleName, wantMatch: "body"},
		{name: "dark style", style: "dark", wantMatch: "--bg"},
		{name: "missing style", style: "nonexistent", wantErr: ErrStyleNotFound},
		{name: "traversal rejected", style: "../default", wantErr: ErrInvalidAssetName},
	}

	loader := NewEmbeddedLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
			}
			if tt.wantErr == nil && !strings.Contains(got, tt.wantMatch) {
				t.Errorf("LoadStyle(%q) = %q, want it to contain %q", tt.style, got, tt.wantMatch)
			}
		})
	}
}

func TestEmbeddedLoader_StyleNames(t *testing.T) {
	t.Parallel()

	names := NewEmbeddedLoader().StyleNames()
	for _, want := range []string{"dark", "default"} {
		if !slices.Contains(names, want) {
			t.Errorf("StyleNames() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("StyleNames() = %v, want sorted", names)
	}
}
