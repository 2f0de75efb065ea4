package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	mdlines "github.com/alnah/go-mdlines"
	"github.com/alnah/go-mdlines/internal/fileutil"
)

// Sentinel errors for input discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputConflict     = errors.New("output file given for several documents")
)

// stdio marks standard input as a location and standard output as a
// destination.
const stdio = "-"

// job is a single document to render. An empty OutputPath means stdout.
type job struct {
	Location   string
	OutputPath string
}

// discoverJobs expands inputs into jobs. Directories are walked for
// markdown files; URLs and "-" are taken as is.
func discoverJobs(inputs []string, outputDir, format string) ([]job, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}

	var jobs []job
	for _, in := range inputs {
		if in == stdio || mdlines.IsURL(in) {
			jobs = append(jobs, job{Location: in, OutputPath: resolveOutputPath(in, outputDir, "", format)})
			continue
		}
		found, err := discoverFiles(in, outputDir, format)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, found...)
	}

	if len(jobs) > 1 && isOutputFile(outputDir, format) {
		return nil, fmt.Errorf("%w: %s", ErrOutputConflict, outputDir)
	}
	return jobs, nil
}

// discoverFiles finds all markdown files under inputPath.
func discoverFiles(inputPath, outputDir, format string) ([]job, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []job{{Location: inputPath, OutputPath: resolveOutputPath(inputPath, outputDir, "", format)}}, nil
	}

	var jobs []job
	err = filepath.WalkDir(inputPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", p, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(p) {
			return nil
		}
		jobs = append(jobs, job{Location: p, OutputPath: resolveOutputPath(p, outputDir, inputPath, format)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}
	return jobs, nil
}

// resolveOutputPath determines where a document is written.
// Without an output directory, text and HTML go to stdout and PDFs are
// written next to the source. A directory tree given as input is mirrored
// under outputDir.
func resolveOutputPath(location, outputDir, baseInputDir, format string) string {
	if outputDir == stdio {
		return ""
	}

	name := documentName(location) + extensionFor(format)

	if outputDir == "" {
		if format != mdlines.FormatPDF {
			return ""
		}
		if location == stdio || mdlines.IsURL(location) {
			return name
		}
		return filepath.Join(filepath.Dir(location), name)
	}

	if isOutputFile(outputDir, format) {
		return outputDir
	}

	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, location); err == nil {
			return filepath.Join(outputDir, filepath.Dir(rel), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// isOutputFile reports whether outputDir names a file of the given format.
func isOutputFile(outputDir, format string) bool {
	return outputDir != "" && outputDir != stdio &&
		strings.EqualFold(filepath.Ext(outputDir), extensionFor(format))
}

// documentName derives a file name without extension from a location.
func documentName(location string) string {
	if location == stdio {
		return "stdin"
	}

	if mdlines.IsURL(location) {
		u, err := url.Parse(location)
		if err != nil {
			return "document"
		}
		base := path.Base(u.Path)
		if base == "/" || base == "." {
			if host := u.Hostname(); host != "" {
				return host
			}
			return "document"
		}
		return strings.TrimSuffix(base, path.Ext(base))
	}

	base := filepath.Base(location)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// extensionFor returns the file extension written for a format.
func extensionFor(format string) string {
	switch format {
	case mdlines.FormatHTML:
		return ".html"
	case mdlines.FormatPDF:
		return ".pdf"
	default:
		return ".txt"
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > mdlines.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, mdlines.MaxPoolSize)
	}
	return nil
}
