// SPDX-License-Identifier: MIT
// Package: kmnpairs/rank

package rank

import "github.com/katalvlaran/kmnpairs/assign"

// Logger is the structured logging surface shared with package assign.
type Logger = assign.Logger

// Option customizes a Ranking at construction time.
type Option func(*rankingConfig)

type rankingConfig struct {
	logger        Logger
	defaultLabels bool
}

func newRankingConfig(opts ...Option) rankingConfig {
	cfg := rankingConfig{logger: assign.NopLogger(), defaultLabels: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes aggregation warnings to l. Panics on nil.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("rank: WithLogger(nil)")
	}
	return func(c *rankingConfig) { c.logger = l }
}

// WithDefaultLabels controls whether rankers and ranked items start with
// their decimal id as label (default true).
func WithDefaultLabels(on bool) Option {
	return func(c *rankingConfig) { c.defaultLabels = on }
}
