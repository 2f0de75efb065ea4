package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	mdlines "github.com/alnah/go-mdlines"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// converterPool abstracts mdlines.ConverterPool for testability.
type converterPool interface {
	Acquire() (*mdlines.Converter, error)
	Release(*mdlines.Converter)
	Size() int
}

// Compile-time interface implementation check.
var _ converterPool = (*mdlines.ConverterPool)(nil)

// renderResult holds the outcome of a single document.
// Output is only kept for documents written to stdout.
type renderResult struct {
	Location   string
	OutputPath string
	Output     []byte
	Stats      mdlines.Stats
	Err        error
	Duration   time.Duration
}

// renderBatch renders jobs concurrently using the converter pool. Results
// keep the order of jobs. stdin holds the text for the "-" location.
func renderBatch(ctx context.Context, pool converterPool, jobs []job, input mdlines.Input, stdin string, logger *slog.Logger) []renderResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(jobs))
	results := make([]renderResult, len(jobs))
	indexes := make(chan int, len(jobs))

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range indexes {
					results[idx] = renderResult{
						Location: jobs[idx].Location,
						Err:      fmt.Errorf("creating converter: %w", err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range indexes {
				if err := ctx.Err(); err != nil {
					results[idx] = renderResult{Location: jobs[idx].Location, Err: err}
					continue
				}
				results[idx] = renderJob(ctx, conv, jobs[idx], input, stdin)
				logger.Debug("rendered",
					"input", results[idx].Location,
					"output", results[idx].OutputPath,
					"duration", results[idx].Duration.Round(time.Millisecond),
					"lines", results[idx].Stats.Lines,
					"error", results[idx].Err)
			}
		}()
	}

	for i := range jobs {
		indexes <- i
	}
	close(indexes)

	wg.Wait()
	return results
}

// renderJob renders one document and writes it when it has an output path.
func renderJob(ctx context.Context, conv *mdlines.Converter, j job, input mdlines.Input, stdin string) renderResult {
	start := time.Now()
	result := renderResult{Location: j.Location, OutputPath: j.OutputPath}

	var res *mdlines.Result
	var err error
	if j.Location == stdio {
		input.Markdown = stdin
		res, err = conv.Convert(ctx, input)
	} else {
		res, err = conv.ConvertFrom(ctx, j.Location, input)
	}
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Stats = res.Stats

	if j.OutputPath == "" {
		result.Output = res.Output
	} else if err := writeOutput(j.OutputPath, res.Output); err != nil {
		result.Err = err
	}

	result.Duration = time.Since(start)
	return result
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating directory: %v", ErrWriteOutput, err)
	}
	// #nosec G306 -- rendered documents are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// resultSummary holds the count of succeeded and failed documents.
type resultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed documents.
func countResults(results []renderResult) resultSummary {
	var summary resultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes stdout documents in input order and reports files
// created. Failures are only listed for batches; a single failure is
// returned to the caller instead.
func printResults(results []renderResult, quiet, verbose bool, env *Environment) resultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.Location, r.Err, hintFor(r.Err))
			}
			continue
		}

		if r.OutputPath == "" {
			if _, err := env.Stdout.Write(r.Output); err != nil {
				env.Logger.Error("writing to stdout", "error", err)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Location, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stderr, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}
