// Package dateutil resolves the document date stamped into HTML output.
//
// Formats use the tokens YYYY, YY, MMMM, MMM, MM, M, DD and D. Text in
// square brackets is copied as is, so "[Week of] MMM D" keeps "Week of".
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat reports a malformed date format or "auto" value.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength caps user supplied formats.
const MaxFormatLength = 50

// DefaultFormat is used by a bare "auto".
const DefaultFormat = "YYYY-MM-DD"

// tokens are matched longest first.
var tokens = [...]struct{ name, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets name common formats. Lookup is case-insensitive.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout converts a token format to a time.Format layout.
func Layout(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var sb strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d",
					ErrInvalidDateFormat, len(format)-len(rest))
			}
			sb.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		if name, layout, ok := matchToken(rest); ok {
			sb.WriteString(layout)
			rest = rest[len(name):]
			continue
		}
		sb.WriteByte(rest[0])
		rest = rest[1:]
	}
	return sb.String(), nil
}

func matchToken(s string) (name, layout string, ok bool) {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.name) {
			return t.name, t.layout, true
		}
	}
	return "", "", false
}

// Resolve expands "auto" and "auto:FORMAT" against now. FORMAT may be a
// preset name. Any other value is returned unchanged.
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultFormat
	if lower != "auto" {
		rest, ok := strings.CutPrefix(value[len("auto"):], ":")
		if !ok {
			return "", fmt.Errorf("%w: %q (use \"auto\" or \"auto:FORMAT\")", ErrInvalidDateFormat, value)
		}
		if rest == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		format = rest
		if preset, ok := Presets[strings.ToLower(rest)]; ok {
			format = preset
		}
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
