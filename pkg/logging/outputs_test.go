package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleOutputWrite(t *testing.T) {
	var buf bytes.Buffer
	output := &ConsoleOutput{writer: &buf, color: false}

	entry := LogEntry{
		Time:       time.Now().UnixNano(),
		Severity:   INFO,
		Message:    "generation complete",
		File:       "engine.go",
		Line:       42,
		Generation: 3,
		RunID:      "run-1",
	}

	require.NoError(t, output.Write(entry))

	line := buf.String()
	assert.Contains(t, line, "generation complete")
	assert.Contains(t, line, "engine.go:42")
	assert.Contains(t, line, "[run=run-1]")
	assert.Contains(t, line, "[gen=3]")
	assert.NotContains(t, line, "\033[")
}

func TestConsoleOutputColor(t *testing.T) {
	var buf bytes.Buffer
	output := &ConsoleOutput{writer: &buf, color: true}

	entry := LogEntry{
		Time:       time.Now().UnixNano(),
		Severity:   ERROR,
		Message:    "evaluation failed",
		Generation: -1,
	}

	require.NoError(t, output.Write(entry))
	assert.Contains(t, buf.String(), getSeverityColor(ERROR))
}

func TestConsoleOutputFields(t *testing.T) {
	var buf bytes.Buffer
	output := &ConsoleOutput{writer: &buf, color: false}

	entry := LogEntry{
		Time:       time.Now().UnixNano(),
		Severity:   INFO,
		Message:    "stats",
		Generation: -1,
		Fields:     map[string]interface{}{"min": 2.0},
	}

	require.NoError(t, output.Write(entry))
	assert.Contains(t, buf.String(), "min=2")
}

func TestNewConsoleOutputOptions(t *testing.T) {
	output := NewConsoleOutput(false, WithColor(false))
	assert.False(t, output.color)

	output = NewConsoleOutput(true)
	assert.True(t, output.color)
}
