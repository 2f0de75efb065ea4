package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdlines/internal/config"
)

func TestRunConfigCmd(t *testing.T) {
	t.Parallel()

	env, stdout, _ := newTestEnv("")
	err := runConfigCmd([]string{"-f", "pdf", "--theme", "classic", "--margin", "1"}, env)
	if err != nil {
		t.Fatalf("runConfigCmd() error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"output:", "format: pdf", "theme: classic", "margin: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunConfigCmd_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"bad color", []string{"--color", "rainbow"}, config.ErrInvalidValue},
		{"bad margin", []string{"--margin", "9"}, config.ErrInvalidValue},
		{"unknown flag", []string{"--nope"}, ErrFlagParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := newTestEnv("")
			if err := runConfigCmd(tt.args, env); !errors.Is(err, tt.wantErr) {
				t.Errorf("runConfigCmd(%v) error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestRunThemes(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	runThemes(&sb)

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if lines[0] != "classic" {
		t.Errorf("first theme = %q, want classic", lines[0])
	}
	defaults := 0
	for _, l := range lines {
		if strings.HasSuffix(l, " (default)") {
			defaults++
		}
	}
	if defaults != 1 {
		t.Errorf("got %d default themes, want 1", defaults)
	}
}
