package log

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevelString(t *testing.T) {
	t.Cleanup(func() {
		SetLevel(InfoLevel)
		SetOutput(io.Discard)
	})

	var buf bytes.Buffer
	SetOutput(&buf)

	require.NoError(t, SetLevelString("warn"))
	Info("hidden")
	Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetLevelStringRejectsUnknown(t *testing.T) {
	assert.Error(t, SetLevelString("loud"))
}

func TestDebugfFormats(t *testing.T) {
	t.Cleanup(func() {
		SetLevel(InfoLevel)
		SetOutput(io.Discard)
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(DebugLevel)

	Debugf("tick %d/%d", 42, 100)
	assert.Contains(t, buf.String(), "tick 42/100")
}
