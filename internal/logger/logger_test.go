package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	color.NoColor = true
	var buf bytes.Buffer
	l := &Logger{w: &buf, level: level, now: func() time.Time {
		return time.Date(2024, 1, 2, 9, 5, 0, 0, time.UTC)
	}}
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelDebug, ParseLevel("trace"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, LevelWarn, ParseLevel(" warn "))
	assert.Equal(t, LevelError, ParseLevel("error"))
}

func TestFormat(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)
	l.Info("found %d files", 3)
	assert.Equal(t, "09:05 - INFO: found 3 files\n", buf.String())
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)
	l.Debug("d")
	l.Info("i")
	l.Success("s")
	l.Warning("w")
	l.Error("e")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"09:05 - WARNING: w", "09:05 - ERROR: e"}, lines)
}

func TestDiscardAndNil(t *testing.T) {
	Discard().Error("nothing")

	var l *Logger
	assert.NotPanics(t, func() { l.Info("nil logger") })
}
