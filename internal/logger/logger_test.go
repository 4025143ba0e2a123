package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/coachmark/pkg/coachmark"
)

type logEntry map[string]any

var (
	_ coachmark.Logger = (*Logger)(nil)
	_ coachmark.Logger = (*Console)(nil)
)

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"component": "coachmark", "tour": "mail"})
	log.Info("session started", "stops", 4)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "session started", entry["message"])
	require.Equal(t, "coachmark", entry["component"])
	require.Equal(t, "mail", entry["tour"])
	require.Equal(t, float64(4), entry["stops"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear", "order", 1)
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.With("order", 3)
	log.Error(errors.New("boom"), "failed", "dangling")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, float64(3), entry["order"])
	require.Equal(t, "boom", entry["error"])
	require.Contains(t, entry, "dangling")
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Warn("ignored")
		log.Error(errors.New("x"), "ignored")
		require.Nil(t, log.With("k", "v"))
	})
	Nop().Info("discarded")
}

func TestConsoleJSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	console, err := NewConsole(ConsoleOptions{Writer: buf, JSON: true, Component: "validate"})
	require.NoError(t, err)

	console.With("file", "tour.yaml").Error(errors.New("bad colour"), "invalid mark", "order", 2)

	var entry logEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "invalid mark", entry["msg"])
	require.Equal(t, "tour.yaml", entry["file"])
	require.Contains(t, entry, "err")
	require.Equal(t, "validate", entry["prefix"])
}

func TestConsoleTextRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	console, err := NewConsole(ConsoleOptions{Writer: buf, Level: "warn"})
	require.NoError(t, err)

	console.Info("hidden")
	console.Warn("shown", "order", 1)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "order=1")
}
