// Command kmnpairs runs one assignment job described by a YAML file.
//
// Usage:
//
//	kmnpairs -config job.yaml [-env .env]
//
// The job builds or loads a balanced assignment, applies forbidden pairs,
// runs the listed repair steps, optionally runs a multistart batch, writes
// the assignment snapshot and, when a ranking block is present, prints the
// standings and writes the ranking snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/kmnpairs/internal/config"
	"github.com/katalvlaran/kmnpairs/internal/logging"
)

func main() {
	configPath := flag.String("config", "job.yaml", "Path to the job file")
	envPath := flag.String("env", "", "Optional .env file with KMNPAIRS_* overrides")
	flag.Parse()

	job, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kmnpairs: %v\n", err)
		os.Exit(2)
	}

	runID := logging.NewRunID()
	logger, err := logging.New(os.Stderr, job.LogLevel, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kmnpairs: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("job started", "config", *configPath, "seed", job.Seed)
	if err := run(ctx, job, os.Stdout, logger); err != nil {
		logger.Error("job failed", "err", err)
		stop()
		os.Exit(1)
	}
	logger.Info("job done")
}
