package main

import (
	"errors"
	"os"

	mdlines "github.com/alnah/go-mdlines"
	"github.com/alnah/go-mdlines/internal/config"
	"github.com/alnah/go-mdlines/internal/dateutil"
)

// Exit codes for the mdlines CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All documents rendered
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitFetch   = 5 // Remote document could not be retrieved
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Fetch errors (exit 5)
	if errors.Is(err, mdlines.ErrFetch) {
		return ExitFetch
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdlines.ErrBrowserConnect) ||
		errors.Is(err, mdlines.ErrPageCreate) ||
		errors.Is(err, mdlines.ErrPageLoad) ||
		errors.Is(err, mdlines.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdlines.ErrBodyTooLarge) ||
		errors.Is(err, mdlines.ErrSinkWrite) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrFlagParse) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, mdlines.ErrUnknownFormat) ||
		errors.Is(err, mdlines.ErrUnknownTheme) ||
		errors.Is(err, mdlines.ErrInvalidColorMode) ||
		errors.Is(err, mdlines.ErrInvalidWidth) ||
		errors.Is(err, mdlines.ErrInvalidPageSize) ||
		errors.Is(err, mdlines.ErrInvalidOrientation) ||
		errors.Is(err, mdlines.ErrInvalidMargin) ||
		errors.Is(err, mdlines.ErrStyleNotFound) ||
		errors.Is(err, mdlines.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
