package main

import (
	"fmt"
	"io"

	mdlines "github.com/alnah/go-mdlines"
	"github.com/alnah/go-mdlines/internal/config"
)

// runThemes prints the terminal themes, marking the default.
func runThemes(w io.Writer) {
	for _, name := range mdlines.ThemeNames() {
		if name == mdlines.DefaultThemeName {
			fmt.Fprintf(w, "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(w, name)
	}
}

// runStyles prints the embedded HTML styles.
func runStyles(w io.Writer) {
	for _, name := range mdlines.StyleNames() {
		fmt.Fprintln(w, name)
	}
}

// runConfigCmd prints the effective configuration as YAML: the config
// file, then environment variables, then flags.
func runConfigCmd(args []string, env *Environment) error {
	flags, _, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	env.applyVerbosity(flags.common.quiet, flags.common.verbose)

	cfg, err := loadConfig(flags.common.config, loadEnvConfig(env.Logger))
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(out)
	return err
}
