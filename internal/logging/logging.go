// Package logging builds the driver's charmbracelet/log logger.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Prefix tags every driver log line.
const Prefix = "kmnpairs"

// New returns a logger writing to w at level ("debug", "info", "warn",
// "error") with every line tagged by runID.
func New(w io.Writer, level, runID string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
		Prefix:          Prefix,
	})
	return l.With("run", runID), nil
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}
