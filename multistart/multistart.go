// SPDX-License-Identifier: MIT
// Package: kmnpairs/multistart
//
// multistart.go — independent repair runs from one snapshot.
//
// Every run owns its engine and its RNG, derived from (Seed, run index), so
// the outcome of run i does not depend on scheduling or on Workers.

package multistart

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kmnpairs/assign"
)

// ErrNoRuns indicates a Config with Runs < 1.
var ErrNoRuns = errors.New("multistart: no runs requested")

// Config describes one multistart batch.
type Config struct {
	Runs      int
	Workers   int // <= 0 means GOMAXPROCS
	Seed      int64
	Strategy  assign.Strategy
	Selector  assign.Selector
	MaxTrials int
	// Shuffle randomizes both permutations before searching.
	Shuffle bool
	// Switch runs BreakSkeleton after the search.
	Switch bool
	Logger assign.Logger
}

// RunResult is the outcome of one run.
type RunResult struct {
	Index       int
	Seed        int64
	Search      assign.SearchResult
	Switch      assign.SwitchResult
	Forbidden   int
	Fingerprint uint64
}

// Report is the outcome of a batch.
type Report struct {
	Runs []RunResult
	// Best is the index of the run with the fewest forbidden pairs; ties go
	// to the lower index.
	Best     int
	Distinct int
	Engine   *assign.Engine
}

// Run executes cfg.Runs repairs of base. Runs not yet started when ctx is
// cancelled are skipped and ctx.Err() is returned.
func Run(ctx context.Context, base assign.Snapshot, cfg Config) (Report, error) {
	if cfg.Runs < 1 {
		return Report{}, fmt.Errorf("multistart.Run: runs=%d: %w", cfg.Runs, ErrNoRuns)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Logger == nil {
		cfg.Logger = assign.NopLogger()
	}
	// Reject a broken base once instead of once per run.
	if _, err := assign.FromSnapshot(base); err != nil {
		return Report{}, fmt.Errorf("multistart.Run: %w", err)
	}

	results := make([]RunResult, cfg.Runs)
	engines := make([]*assign.Engine, cfg.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Runs; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e, res, err := runOne(base, cfg, i)
			if err != nil {
				return err
			}
			engines[i], results[i] = e, res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("multistart.Run: %w", err)
	}

	rep := Report{Runs: results}
	seen := make(map[uint64]struct{}, len(results))
	for i, r := range results {
		seen[r.Fingerprint] = struct{}{}
		if r.Forbidden < results[rep.Best].Forbidden {
			rep.Best = i
		}
	}
	rep.Distinct = len(seen)
	rep.Engine = engines[rep.Best]
	cfg.Logger.Info("multistart done",
		"runs", cfg.Runs, "best", rep.Best, "forbidden", results[rep.Best].Forbidden, "distinct", rep.Distinct)
	return rep, nil
}

func runOne(base assign.Snapshot, cfg Config, i int) (*assign.Engine, RunResult, error) {
	seed := assign.DeriveSeed(cfg.Seed, uint64(i))
	e, err := assign.FromSnapshot(base, assign.WithSeed(seed), assign.WithLogger(cfg.Logger))
	if err != nil {
		return nil, RunResult{}, err
	}
	res := RunResult{Index: i, Seed: seed}
	if cfg.Shuffle {
		e.ShuffleLeft(e.Rand())
		e.ShuffleRight(e.Rand())
	}
	res.Search, err = e.Search(cfg.Strategy, cfg.Selector, cfg.MaxTrials, nil)
	if err != nil {
		return nil, RunResult{}, fmt.Errorf("run %d: %w", i, err)
	}
	if err := e.RestoreBackup(); err != nil {
		return nil, RunResult{}, fmt.Errorf("run %d: %w", i, err)
	}
	if cfg.Switch {
		res.Switch, err = e.BreakSkeleton()
		if err != nil && !errors.Is(err, assign.ErrSwitchRejected) {
			return nil, RunResult{}, fmt.Errorf("run %d: %w", i, err)
		}
	}
	res.Forbidden = e.ForbiddenUsed()
	res.Fingerprint = e.Fingerprint()
	return e, res, nil
}
