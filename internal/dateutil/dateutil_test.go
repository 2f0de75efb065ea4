package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "four digit year", format: "YYYY", want: "2006"},
		{name: "two digit year", format: "YY", want: "06"},
		{name: "full month", format: "MMMM", want: "January"},
		{name: "short month", format: "MMM", want: "Jan"},
		{name: "padded month", format: "MM", want: "01"},
		{name: "month", format: "M", want: "1"},
		{name: "padded day", format: "DD", want: "02"},
		{name: "day", format: "D", want: "2"},
		{name: "iso", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "long", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "bracketed text is literal", format: "[Day] D", want: "Day 2"},
		{name: "empty brackets", format: "[]YYYY", want: "2006"},
		{name: "other characters kept", format: "YYYY.MM", want: "2006.01"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[Day D", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: strings.Repeat("Y", MaxFormatLength+1), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Layout(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Layout(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Layout(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("Layout(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "empty passes through", value: "", want: ""},
		{name: "literal passes through", value: "Q1 2024", want: "Q1 2024"},
		{name: "auto", value: "auto", want: "2024-03-05"},
		{name: "auto is case insensitive", value: "AUTO", want: "2024-03-05"},
		{name: "custom format", value: "auto:DD/MM/YYYY", want: "05/03/2024"},
		{name: "unpadded", value: "auto:D.M.YY", want: "5.3.24"},
		{name: "preset", value: "auto:long", want: "March 5, 2024"},
		{name: "preset is case insensitive", value: "auto:US", want: "03/05/2024"},
		{name: "missing colon", value: "automatic", wantErr: ErrInvalidDateFormat},
		{name: "empty format", value: "auto:", wantErr: ErrInvalidDateFormat},
		{name: "bad format", value: "auto:[YYYY", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.value, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
