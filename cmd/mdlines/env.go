package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	mdlines "github.com/alnah/go-mdlines"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// TermWidth returns the stdout terminal width, or 0 when stdout is not
	// a terminal.
	TermWidth func() int

	// IsTerminal reports whether stdout is a terminal.
	IsTerminal func() bool

	// NoColor reports whether the environment asks for plain output
	// (NO_COLOR and friends).
	NoColor func() bool

	Logger   *slog.Logger
	LogLevel *slog.LevelVar
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	env := &Environment{
		Now:        time.Now,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		TermWidth:  stdoutWidth,
		IsTerminal: stdoutIsTerminal,
		NoColor:    termenv.EnvNoColor,
	}
	env.initLogger()
	return env
}

// initLogger creates a text logger on Stderr at warning level.
func (e *Environment) initLogger() {
	e.LogLevel = new(slog.LevelVar)
	e.LogLevel.Set(slog.LevelWarn)
	e.Logger = slog.New(slog.NewTextHandler(e.Stderr, &slog.HandlerOptions{Level: e.LogLevel}))
}

// applyVerbosity adjusts the log level: --verbose shows debug records,
// --quiet shows errors only.
func (e *Environment) applyVerbosity(quiet, verbose bool) {
	switch {
	case verbose:
		e.LogLevel.Set(slog.LevelDebug)
	case quiet:
		e.LogLevel.Set(slog.LevelError)
	default:
		e.LogLevel.Set(slog.LevelWarn)
	}
}

// colorFor resolves the "auto" color mode against stdout. Output written to
// files never gets escape codes.
func (e *Environment) colorFor(mode string, toStdout bool) string {
	if mode != "" && !strings.EqualFold(mode, mdlines.ColorAuto) {
		return strings.ToLower(mode)
	}
	if toStdout && e.IsTerminal != nil && e.IsTerminal() &&
		(e.NoColor == nil || !e.NoColor()) {
		return mdlines.ColorAlways
	}
	return mdlines.ColorNever
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) // #nosec G115 -- file descriptors fit in int
}

func stdoutWidth() int {
	if !stdoutIsTerminal() {
		return 0
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd())) // #nosec G115 -- file descriptors fit in int
	if err != nil || w <= 0 {
		return 0
	}
	return w
}
