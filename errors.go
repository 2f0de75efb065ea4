package mdlines

import (
	"errors"

	"github.com/alnah/go-mdlines/internal/assets"
)

// Sentinel errors for library operations.
var (
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrSinkWrite      = errors.New("sink write failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Fetch errors. Every *FetchError matches ErrFetch.
	ErrFetch        = errors.New("fetch failed")
	ErrEmptySource  = errors.New("document location cannot be empty")
	ErrBadStatus    = errors.New("unexpected HTTP status")
	ErrBodyTooLarge = errors.New("response body too large")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Terminal output validation errors.
	ErrInvalidColorMode = errors.New("invalid color mode")
	ErrInvalidWidth     = errors.New("invalid width")
	ErrUnknownTheme     = errors.New("unknown theme")

	// Asset loading errors. ErrStyleNotFound is shared with the internal
	// loaders so errors.Is works across the boundary.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
