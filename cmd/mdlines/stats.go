package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	mdlines "github.com/alnah/go-mdlines"
)

// documentStats is the stats command output for one document.
type documentStats struct {
	Document string         `json:"document"`
	Lines    int            `json:"lines"`
	Blocks   map[string]int `json:"blocks"`
}

// runStatsCmd parses stats flags and prints block counts per document.
func runStatsCmd(args []string, env *Environment) error {
	flags, positional, err := parseStatsFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runStats(ctx, positional, flags, env)
}

// runStats counts blocks without rendering any output format.
func runStats(ctx context.Context, inputs []string, flags *statsFlags, env *Environment) error {
	env.applyVerbosity(flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(env.Logger)

	envCfg := loadEnvConfig(env.Logger)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeFetchFlags(&flags.fetch, cfg)

	jobs, err := discoverJobs(inputs, stdio, mdlines.FormatText)
	if err != nil {
		return err
	}

	source := buildSource(cfg)
	stats := make([]documentStats, 0, len(jobs))
	for _, j := range jobs {
		text, err := readDocument(ctx, source, j.Location, env.Stdin)
		if err != nil {
			return err
		}
		if flags.crlf {
			text = mdlines.NormalizeNewlines(text)
		}

		var counter mdlines.Counter
		if err := mdlines.RenderContext(ctx, text, &counter); err != nil {
			return err
		}
		stats = append(stats, newDocumentStats(j.Location, counter.Stats()))
	}

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	printStatsTable(env.Stdout, stats)
	return nil
}

// readDocument reads "-" from stdin and anything else through source.
func readDocument(ctx context.Context, source mdlines.DocumentSource, location string, stdin io.Reader) (string, error) {
	if location != stdio {
		return source.Fetch(ctx, location)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}
	return string(data), nil
}

func newDocumentStats(location string, s mdlines.Stats) documentStats {
	blocks := make(map[string]int, len(mdlines.Kinds()))
	for _, k := range mdlines.Kinds() {
		blocks[k.String()] = s.Blocks[k]
	}
	return documentStats{Document: location, Lines: s.Lines, Blocks: blocks}
}

// printStatsTable prints one row per document, plus a total row when there
// are several.
func printStatsTable(w io.Writer, stats []documentStats) {
	kinds := mdlines.Kinds()

	headers := make([]string, 0, len(kinds)+2)
	headers = append(headers, "DOCUMENT", "LINES")
	for _, k := range kinds {
		headers = append(headers, k.String())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	total := documentStats{Document: "total", Blocks: map[string]int{}}
	for _, s := range stats {
		t.Row(statsRow(s, kinds)...)
		total.Lines += s.Lines
		for name, n := range s.Blocks {
			total.Blocks[name] += n
		}
	}
	if len(stats) > 1 {
		t.Row(statsRow(total, kinds)...)
	}

	fmt.Fprintln(w, t.String())
}

func statsRow(s documentStats, kinds []mdlines.Kind) []string {
	row := make([]string, 0, len(kinds)+2)
	row = append(row, s.Document, strconv.Itoa(s.Lines))
	for _, k := range kinds {
		row = append(row, strconv.Itoa(s.Blocks[k.String()]))
	}
	return row
}
