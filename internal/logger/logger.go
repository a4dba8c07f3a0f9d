// Package logger prints timestamped, colourised status lines on stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level orders messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name to a Level. Unknown or empty names mean info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug", "trace":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes one line per message: "HH:MM - LEVEL: message".
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
	now   func() time.Time
}

// New returns a Logger writing to w. The DEBUG environment variable lowers
// the level to debug.
func New(w io.Writer, level Level) *Logger {
	if os.Getenv("DEBUG") != "" {
		level = LevelDebug
	}
	return &Logger{w: w, level: level, now: time.Now}
}

// Discard returns a Logger that prints nothing.
func Discard() *Logger {
	return &Logger{w: io.Discard, level: LevelError + 1, now: time.Now}
}

var (
	debugColor   = color.New(color.FgYellow)
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func (l *Logger) log(level Level, c *color.Color, label, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	now := l.now()
	line := fmt.Sprintf("%02d:%02d - %s: %s", now.Hour(), now.Minute(), label, fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()
	c.Fprintln(l.w, line)
}

func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, debugColor, "DEBUG", format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, infoColor, "INFO", format, args...)
}

// Success reports a completed step. It is printed at info level.
func (l *Logger) Success(format string, args ...any) {
	l.log(LevelInfo, successColor, "SUCCESS", format, args...)
}

func (l *Logger) Warning(format string, args ...any) {
	l.log(LevelWarn, warnColor, "WARNING", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, errorColor, "ERROR", format, args...)
}
