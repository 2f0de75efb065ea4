package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	mdlines "github.com/alnah/go-mdlines"
)

// runRenderCmd parses render flags and renders every input.
func runRenderCmd(args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runRender(ctx, positional, flags, env)
}

// runRender orchestrates a render run: config, discovery, batch, report.
func runRender(ctx context.Context, inputs []string, flags *renderFlags, env *Environment) error {
	env.applyVerbosity(flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(env.Logger)

	envCfg := loadEnvConfig(env.Logger)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	params, err := buildRenderParams(flags, cfg, envCfg, env)
	if err != nil {
		return err
	}

	jobs, err := discoverJobs(inputs, params.outputDir, params.format)
	if err != nil {
		return err
	}

	var stdin string
	if slices.ContainsFunc(jobs, func(j job) bool { return j.Location == stdio }) {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		stdin = string(data)
	}

	poolSize := min(mdlines.ResolvePoolSize(params.workers), len(jobs))
	env.Logger.Debug("starting render", "documents", len(jobs), "format", params.format, "workers", poolSize)

	pool := mdlines.NewConverterPool(poolSize, params.opts...)
	defer pool.Close()

	// Create one converter up front so style and asset errors fail the run
	// instead of every document.
	conv, err := pool.Acquire()
	if err != nil {
		return err
	}
	pool.Release(conv)

	results := renderBatch(ctx, pool, jobs, params.input, stdin, env.Logger)
	summary := printResults(results, flags.common.quiet, flags.common.verbose, env)

	switch {
	case summary.Failed == 0:
		return nil
	case len(results) == 1:
		return results[0].Err
	default:
		return fmt.Errorf("%d of %d documents failed", summary.Failed, len(results))
	}
}
