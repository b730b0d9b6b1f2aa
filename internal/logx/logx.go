// Package logx is a small leveled logger used by the cpu and rom packages
// to report recoverable anomalies (unknown opcodes, rejected ROM
// loads) without pulling in a structured-logging dependency.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Level is the logging level.
type Level int

const (
	// Debug is for developer-facing detail (every fetched opcode, etc).
	Debug Level = iota - 1
	// Info is for state and status changes.
	Info
	// Warn is for recoverable anomalies: unknown opcodes, rejected ROM loads.
	Warn
	// Error is for conditions a caller should know failed.
	Error
)

// String returns an upper-case name for the level.
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", l)
	}
}

// ParseLevel converts a case-insensitive level name, defaulting to Info.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return Debug
	case "WARN", "WARNING":
		return Warn
	case "ERROR":
		return Error
	default:
		return Info
	}
}

// Logger is a minimal leveled logger writing timestamped lines to an
// io.Writer.
type Logger struct {
	level  Level
	writer io.Writer
	now    func() time.Time
}

// New creates a Logger at Info level writing to os.Stderr.
func New() *Logger {
	return &Logger{
		level:  Info,
		writer: os.Stderr,
		now:    time.Now,
	}
}

// SetLevel sets the minimum level that will be written.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// SetOutput redirects future log lines.
func (l *Logger) SetOutput(w io.Writer) {
	l.writer = w
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "%s %-5s %s\n", l.now().Format("15:04:05.000"), level, msg)
}

// Debugf logs at Debug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(Debug, format, args...) }

// Infof logs at Info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.log(Info, format, args...) }

// Warnf logs at Warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.log(Warn, format, args...) }

// Errorf logs at Error level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(Error, format, args...) }

var defaultLogger = New()

// Default returns the package-level logger shared by core components that
// don't take an explicit Logger (keeps cpu.CPU/memory.Memory constructors
// free of a logging dependency in the common case).
func Default() *Logger {
	return defaultLogger
}
