package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// ErrFlagParse wraps flag parsing failures.
var ErrFlagParse = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// textFlags holds terminal output flags.
type textFlags struct {
	theme string
	width int
	color string
}

// htmlFlags holds HTML and PDF document flags.
type htmlFlags struct {
	title string
	style string
	date  string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// fetchFlags holds remote retrieval flags.
type fetchFlags struct {
	timeout   time.Duration
	maxBytes  int64
	userAgent string
}

// renderFlags holds every flag of the render command.
type renderFlags struct {
	common    commonFlags
	format    string
	output    string
	workers   int
	timeout   time.Duration
	crlf      bool
	assetPath string
	text      textFlags
	html      htmlFlags
	page      pageFlags
	fetch     fetchFlags
}

// statsFlags holds the flags of the stats command.
type statsFlags struct {
	common commonFlags
	crlf   bool
	json   bool
	fetch  fetchFlags
}

// addCommonFlags adds flags shared by all commands to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addTextFlags adds terminal output flags to a FlagSet.
func addTextFlags(fs *flag.FlagSet, f *textFlags) {
	fs.StringVar(&f.theme, "theme", "", "terminal theme (chroma style name or classic)")
	fs.IntVar(&f.width, "width", 0, "terminal width for rules (0 = detect)")
	fs.StringVar(&f.color, "color", "", "color mode: auto, always, never")
}

// addHTMLFlags adds HTML and PDF document flags to a FlagSet.
func addHTMLFlags(fs *flag.FlagSet, f *htmlFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = first header)")
	fs.StringVarP(&f.style, "style", "s", "", "CSS style name, file path, or inline CSS")
	fs.StringVar(&f.date, "date", "", "document date (\"auto\" = today)")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addFetchFlags adds remote retrieval flags to a FlagSet.
func addFetchFlags(fs *flag.FlagSet, f *fetchFlags) {
	fs.DurationVar(&f.timeout, "fetch-timeout", 0, "HTTP timeout for remote documents")
	fs.Int64Var(&f.maxBytes, "max-bytes", 0, "maximum document size in bytes")
	fs.StringVar(&f.userAgent, "user-agent", "", "User-Agent for remote documents")
}

// buildRenderFlagSet registers every render flag on a new FlagSet.
// Shared by parseRenderFlags and shell completion.
func buildRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.format, "format", "f", "", "output format: text, html, pdf")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (\"-\" = stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "per-document timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.crlf, "crlf", false, "normalize CRLF and CR line endings")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles/")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addTextFlags(fs, &f.text)
	addHTMLFlags(fs, &f.html)
	addPageFlags(fs, &f.page)
	addFetchFlags(fs, &f.fetch)

	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := buildRenderFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printRenderUsage(stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// buildStatsFlagSet registers every stats flag on a new FlagSet.
func buildStatsFlagSet(f *statsFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.BoolVar(&f.crlf, "crlf", false, "normalize CRLF and CR line endings")
	fs.BoolVar(&f.json, "json", false, "print JSON instead of a table")
	addCommonFlags(fs, &f.common)
	addFetchFlags(fs, &f.fetch)
	return fs
}

// parseStatsFlags parses stats command flags and returns positional args.
func parseStatsFlags(args []string, stderr io.Writer) (*statsFlags, []string, error) {
	f := &statsFlags{}
	fs := buildStatsFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printStatsUsage(stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseFlagSet parses args, passing flag.ErrHelp through and wrapping every
// other failure in ErrFlagParse.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrFlagParse, err)
}
