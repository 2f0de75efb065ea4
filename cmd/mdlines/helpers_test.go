package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fixedNow is the clock used by test environments: 2024-03-05.
var fixedNow = time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)

// newTestEnv returns an environment writing to buffers, with stdin set to
// input and no terminal.
func newTestEnv(input string) (env *Environment, stdout, stderr *bytes.Buffer) {
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	env = &Environment{
		Now:        func() time.Time { return fixedNow },
		Stdin:      strings.NewReader(input),
		Stdout:     stdout,
		Stderr:     stderr,
		TermWidth:  func() int { return 0 },
		IsTerminal: func() bool { return false },
		NoColor:    func() bool { return false },
	}
	env.LogLevel = new(slog.LevelVar)
	env.LogLevel.Set(slog.LevelWarn)
	env.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: env.LogLevel}))
	return env, stdout, stderr
}

// writeFile creates dir/name with content, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
