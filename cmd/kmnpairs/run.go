package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/kmnpairs/assign"
	"github.com/katalvlaran/kmnpairs/internal/config"
	"github.com/katalvlaran/kmnpairs/internal/report"
	"github.com/katalvlaran/kmnpairs/multistart"
	"github.com/katalvlaran/kmnpairs/rank"
	"github.com/katalvlaran/kmnpairs/skeleton"
)

// run executes job, printing tables to stdout.
func run(ctx context.Context, job *config.Job, stdout io.Writer, logger *log.Logger) error {
	e, err := buildEngine(job, logger)
	if err != nil {
		return err
	}
	if err := applyForbidden(e, job.Forbidden, logger); err != nil {
		return err
	}
	e.CheckForbidden()

	for i, st := range job.Steps {
		if err := runStep(ctx, e, st, logger); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}

	if ms := job.Multistart; ms != nil {
		e, err = runMultistart(ctx, e, job.Seed, ms, stdout, logger)
		if err != nil {
			return err
		}
	}

	if err := e.Validate(); err != nil {
		logger.Warn("final assignment is invalid", "err", err)
	}
	logger.Info("assignment ready", "forbidden", e.ForbiddenUsed(), "fingerprint", fmt.Sprintf("%016x", e.Fingerprint()))
	if err := writeOutput(job.Output.Assignments, stdout, e.Snapshot().Encode); err != nil {
		return fmt.Errorf("write assignments: %w", err)
	}

	if job.Ranking != nil {
		if err := runRanking(e, job.Ranking, job.Output.Ranking, stdout, logger); err != nil {
			return err
		}
	}
	return nil
}

func buildEngine(job *config.Job, logger *log.Logger) (*assign.Engine, error) {
	opts := []assign.Option{assign.WithSeed(job.Seed), assign.WithLogger(logger)}
	a := job.Assignment
	switch {
	case a.Snapshot != "":
		f, err := os.Open(a.Snapshot)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		s, err := assign.DecodeSnapshot(f)
		if err != nil {
			return nil, err
		}
		return assign.FromSnapshot(s, opts...)
	case a.P != 0:
		return assign.NewMNP(a.M, a.N, a.P, opts...)
	default:
		return assign.New(a.K, a.M, a.N, opts...)
	}
}

// applyForbidden adds the configured pairs. Duplicates are logged and
// skipped; out-of-range ids fail the job.
func applyForbidden(e *assign.Engine, fc config.ForbiddenConfig, logger *log.Logger) error {
	tolerate := func(err error) error {
		if err == nil || errors.Is(err, assign.ErrIndexOutOfRange) {
			return err
		}
		logger.Warn("forbidden pair skipped", "err", err)
		return nil
	}
	for _, pr := range fc.Pairs {
		if err := tolerate(e.AddForbidden(skeleton.Left(pr[0]), skeleton.Right(pr[1]))); err != nil {
			return err
		}
	}
	for _, c := range fc.Cross {
		lr := assign.LeftRight{
			Left:  make([]skeleton.Left, len(c.Left)),
			Right: make([]skeleton.Right, len(c.Right)),
		}
		for i, l := range c.Left {
			lr.Left[i] = skeleton.Left(l)
		}
		for i, r := range c.Right {
			lr.Right[i] = skeleton.Right(r)
		}
		_, err := e.AddForbiddenCross(lr)
		if err := tolerate(err); err != nil {
			return err
		}
	}
	if fc.Random > 0 {
		added := e.AddRandomForbidden(e.Rand(), fc.Random)
		logger.Debug("random forbidden", "requested", fc.Random, "added", added)
	}
	for _, rb := range fc.RandomLeft {
		if _, err := e.AddRandomForbiddenLeft(e.Rand(), rb.Count, skeleton.Left(rb.ID)); err != nil {
			return err
		}
	}
	for _, rb := range fc.RandomRight {
		if _, err := e.AddRandomForbiddenRight(e.Rand(), rb.Count, skeleton.Right(rb.ID)); err != nil {
			return err
		}
	}
	logger.Info("forbidden set", "size", len(e.Forbidden()), "used", e.ForbiddenUsed())
	return nil
}

func runStep(ctx context.Context, e *assign.Engine, st config.Step, logger *log.Logger) error {
	switch st.Op {
	case config.OpPermute, config.OpSwap, config.OpBackSwap:
		strategy, err := assign.ParseStrategy(st.Op)
		if err != nil {
			return err
		}
		sel, err := st.Selector()
		if err != nil {
			return err
		}
		_, err = e.Search(strategy, sel, st.Max, nil)
		return err
	case config.OpBack:
		return e.RestoreBackup()
	case config.OpSwitch:
		_, err := e.BreakSkeleton()
		if errors.Is(err, assign.ErrSwitchRejected) {
			return nil
		}
		return err
	case config.OpValidate:
		return e.Validate()
	case config.OpFlow:
		ok, err := e.SolveFlow(ctx)
		if err != nil {
			return err
		}
		logger.Info("flow", "feasible", ok, "forbidden", e.ForbiddenUsed())
		return nil
	}
	return fmt.Errorf("unknown op %q", st.Op)
}

func runMultistart(ctx context.Context, e *assign.Engine, seed int64, ms *config.MultistartConfig, stdout io.Writer, logger *log.Logger) (*assign.Engine, error) {
	strategy, err := assign.ParseStrategy(ms.Strategy)
	if err != nil {
		return nil, err
	}
	sel, err := assign.ParseSelector(ms.Side)
	if err != nil {
		return nil, err
	}
	rep, err := multistart.Run(ctx, e.Snapshot(), multistart.Config{
		Runs:      ms.Runs,
		Workers:   ms.Workers,
		Seed:      seed,
		Strategy:  strategy,
		Selector:  sel,
		MaxTrials: ms.Max,
		Shuffle:   ms.Shuffle,
		Switch:    ms.Switch,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	if err := report.Runs(stdout, rep); err != nil {
		return nil, err
	}
	if rep.Runs[rep.Best].Forbidden >= e.ForbiddenUsed() {
		logger.Info("multistart kept the current assignment", "forbidden", e.ForbiddenUsed())
		return e, nil
	}
	return rep.Engine, nil
}

func runRanking(e *assign.Engine, rc *config.RankingConfig, out string, stdout io.Writer, logger *log.Logger) error {
	r, err := buildRanking(e, rc, logger)
	if err != nil {
		return err
	}
	if sim := rc.Simulate; sim != nil {
		score := func(x skeleton.Right) float64 {
			if int(x) < len(sim.Scores) {
				return sim.Scores[x]
			}
			return 0
		}
		if err := r.SimulateRankings(e.Rand(), sim.MaxDev, score); err != nil {
			return fmt.Errorf("simulate rankings: %w", err)
		}
	}

	items, warns, err := r.CollectedScores(rc.Force)
	if err != nil {
		return fmt.Errorf("collect scores: %w", err)
	}
	if len(warns) > 0 {
		logger.Warn("forced aggregation", "warnings", len(warns))
	}
	positions := rank.Group(items, rank.Epsilon(e.Params()), float64(e.P()))
	if err := report.Standings(stdout, r, positions, items); err != nil {
		return err
	}
	if err := writeOutput(out, stdout, r.Snapshot().Encode); err != nil {
		return fmt.Errorf("write ranking: %w", err)
	}
	return nil
}

// buildRanking wraps e. A ranking snapshot contributes labels and
// orderings; its own assignment is replaced by e.
func buildRanking(e *assign.Engine, rc *config.RankingConfig, logger *log.Logger) (*rank.Ranking, error) {
	if rc.Snapshot == "" {
		r, err := rank.New(e, rank.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		for i, name := range rc.RankerNames {
			if err := r.SetRankerInfo(skeleton.Left(i), name); err != nil {
				return nil, err
			}
		}
		for i, name := range rc.RankedNames {
			if err := r.SetRankedInfo(skeleton.Right(i), name); err != nil {
				return nil, err
			}
		}
		return r, nil
	}

	f, err := os.Open(rc.Snapshot)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := rank.DecodeSnapshot(f)
	if err != nil {
		return nil, err
	}
	data := e.Snapshot()
	s.AssignmentsData = &data
	return rank.FromSnapshot(s, rank.WithLogger(logger))
}

// writeOutput encodes to path; "-" is stdout and "" skips.
func writeOutput(path string, stdout io.Writer, encode func(io.Writer) error) error {
	switch path {
	case "":
		return nil
	case "-":
		return encode(stdout)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
