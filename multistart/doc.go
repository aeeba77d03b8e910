// SPDX-License-Identifier: MIT

// Package multistart runs many independent repair attempts of one
// assignment and keeps the best.
//
// Each run restores its own assign.Engine from a shared assign.Snapshot,
// seeds it with assign.DeriveSeed(Seed, index), optionally shuffles both
// permutations, searches with the configured strategy, installs the best
// pairs found and optionally applies the switching reduction. Runs execute
// on a bounded errgroup pool; engines are never shared between goroutines.
// The Logger, if set, must be safe for concurrent use (a charmbracelet
// *log.Logger is).
//
// Results are deterministic for a given Config regardless of Workers.
package multistart
