package main

import (
	"os"
	"slices"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Verbosity is known before flag parsing so GOMAXPROCS logs show up.
	verbose := slices.Contains(os.Args, "-v") || slices.Contains(os.Args, "--verbose")
	env.applyVerbosity(false, verbose)
	setMaxProcs(env.Logger)

	os.Exit(runMain(os.Args, env))
}
