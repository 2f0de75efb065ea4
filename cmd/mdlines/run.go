package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	mdlines "github.com/alnah/go-mdlines"
	"github.com/alnah/go-mdlines/internal/fileutil"
)

// commands lists the command names recognized by runMain.
var commands = []string{
	"render", "stats", "themes", "styles", "config",
	"doctor", "completion", "version", "help",
}

// isCommand reports whether arg names a command. Matching is case sensitive.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

// looksLikeInput reports whether arg starts an implicit render: a flag, a
// markdown file, a URL, or "-" for stdin.
func looksLikeInput(arg string) bool {
	return arg == stdio ||
		strings.HasPrefix(arg, "-") ||
		fileutil.IsMarkdown(arg) ||
		mdlines.IsURL(arg)
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "-h", "--help":
		printUsage(env.Stdout)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdlines %s\n", Version)
		return ExitSuccess
	case "themes":
		runThemes(env.Stdout)
		return ExitSuccess
	case "styles":
		runStyles(env.Stdout)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(rest, env)
	case "render":
		return exitWith(env, runRenderCmd(rest, env))
	case "stats":
		return exitWith(env, runStatsCmd(rest, env))
	case "config":
		return exitWith(env, runConfigCmd(rest, env))
	case "completion":
		return exitWith(env, runCompletion(rest, env))
	}

	if looksLikeInput(cmd) {
		return exitWith(env, runRenderCmd(args[1:], env))
	}

	fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}

// exitWith reports err with a hint and maps it to an exit code.
func exitWith(env *Environment, err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	case errors.Is(err, ErrFlagParse):
		fmt.Fprintf(env.Stderr, "error: %v\nRun 'mdlines help' for usage.\n", err)
		return ExitUsage
	}

	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// setMaxProcs sizes GOMAXPROCS to the container CPU quota and logs the
// result at debug level.
func setMaxProcs(logger *slog.Logger) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
}
