package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	mdlines "github.com/alnah/go-mdlines"
	"github.com/alnah/go-mdlines/internal/config"
	"github.com/alnah/go-mdlines/internal/hints"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var fetchErr *mdlines.FetchError

	switch {
	case errors.Is(err, mdlines.ErrBodyTooLarge):
		return ""
	case errors.As(err, &fetchErr):
		return hints.ForFetch(fetchErr.StatusCode)
	case errors.Is(err, mdlines.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigPaths())
	case errors.Is(err, mdlines.ErrStyleNotFound):
		return hints.ForStyleNotFound(mdlines.StyleNames())
	case errors.Is(err, mdlines.ErrUnknownTheme):
		return hints.ForThemeNotFound(mdlines.ThemeNames())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// userConfigPaths lists where a named config is looked up outside the
// working directory.
func userConfigPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, config.AppDirName, "config.yaml")}
}
