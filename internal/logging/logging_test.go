package logging_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kmnpairs/internal/logging"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "warn", "run-1")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "forbidden", 3)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "forbidden=3")
	assert.Contains(t, out, "run=run-1")
	assert.Contains(t, out, logging.Prefix)

	_, err = logging.New(&buf, "loud", "x")
	assert.Error(t, err)
}

func TestNewRunID(t *testing.T) {
	a, b := logging.NewRunID(), logging.NewRunID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
