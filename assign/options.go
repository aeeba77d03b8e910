// SPDX-License-Identifier: MIT
// Package: kmnpairs/assign
//
// options.go — functional options for Engine construction.
//
// Contract:
//   • Options are functional (type Option func(*engineConfig)).
//   • Option constructors panic on nil arguments (programmer error);
//     Engine methods never panic on caller input.
//   • Defaults are deterministic: a silent logger and a seed-1 RNG that is
//     handed out by Engine.Rand to callers without a source of their own.

package assign

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Logger is the structured logging surface used by the engine. It is
// satisfied by *log.Logger from github.com/charmbracelet/log.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}

// Option customizes an Engine at construction time.
type Option func(*engineConfig)

// engineConfig is resolved once per Engine and then copied into it.
type engineConfig struct {
	logger Logger
	rng    *rand.Rand
}

// NopLogger returns a logger that discards everything.
func NopLogger() Logger {
	return log.New(io.Discard)
}

// newEngineConfig applies opts over deterministic defaults (last wins).
func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		logger: NopLogger(),
		rng:    nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = NewRNG(0)
	}
	return cfg
}

// WithLogger routes engine diagnostics (advisory warnings, rejected switching
// results) to l. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("assign: WithLogger(nil)")
	}
	return func(c *engineConfig) { c.logger = l }
}

// WithRand attaches the RNG returned by Engine.Rand. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("assign: WithRand(nil)")
	}
	return func(c *engineConfig) { c.rng = r }
}

// WithSeed is WithRand(NewRNG(seed)).
func WithSeed(seed int64) Option {
	return func(c *engineConfig) { c.rng = NewRNG(seed) }
}
