package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	cases := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.level.String())
	}
}

func TestInitForCLILogsToWriter(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Info("engine", "run %s: starting module %s", "abc123", "arith_tests")

	output := buf.String()
	assert.True(t, strings.Contains(output, "starting module arith_tests"))
	assert.True(t, strings.Contains(output, "engine"))
}

func TestCLILevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("capture", "debug message")
	Info("capture", "info message")

	output := buf.String()
	assert.False(t, strings.Contains(output, "debug message"))
	assert.True(t, strings.Contains(output, "info message"))
}

func TestTruncateRunID(t *testing.T) {
	assert.Equal(t, "short", TruncateRunID("short"))
	assert.Equal(t, "abcdefgh...", TruncateRunID("abcdefghijklmnop"))
}

func TestLogrBeforeInitReturnsDiscard(t *testing.T) {
	defaultHandler = nil
	assert.NotPanics(t, func() {
		Logr().Info("discarded")
	})
}

func TestLogrAfterInitWritesThroughSameHandler(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Logr().Info("bridged message")

	assert.True(t, strings.Contains(buf.String(), "bridged message"))
}
