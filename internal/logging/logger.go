// Package logging provides the leveled, optionally colored console logger
// shared by the CLI, the batch pipeline and the MCP server.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colors when stdout is a terminal (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // No colors.
)

const (
	red    = "\033[1;91m"
	green  = "\033[1;92m"
	yellow = "\033[1;93m"
	blue   = "\033[1;94m"
	cyan   = "\033[1;96m"
	reset  = "\033[0m"
)

// Options configures a Logger.
type Options struct {
	Color   ColorMode
	Verbose bool   // Emit DEBUG lines.
	LogFile string // Optional append-only copy of every line, without colors.

	// Out and ErrOut default to os.Stdout and os.Stderr.
	Out    io.Writer
	ErrOut io.Writer
}

// Logger writes timestamped lines. INFO, SUCCESS, WARN and DEBUG go to out;
// ERROR goes to errOut. It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	color   bool
	verbose bool
	file    *os.File
	now     func() time.Time
}

// New creates a Logger on opts.Out/opts.ErrOut. Call Close when done if
// LogFile was set.
func New(opts Options) (*Logger, error) {
	out, errOut := opts.Out, opts.ErrOut
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	l := NewWriterLogger(out, errOut)
	l.verbose = opts.Verbose

	switch opts.Color {
	case ColorAlways:
		l.color = true
	case ColorNever:
		l.color = false
	case ColorAuto, "":
		l.color = isTerminal(out) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	default:
		return nil, fmt.Errorf("invalid color mode %q (use auto, always or never)", opts.Color)
	}

	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
	}
	return l, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewWriterLogger creates an uncolored Logger writing to the given writers.
// Either writer may be io.Discard.
func NewWriterLogger(out, errOut io.Writer) *Logger {
	return &Logger{out: out, errOut: errOut, now: time.Now}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewWriterLogger(io.Discard, io.Discard)
}

// SetVerbose toggles DEBUG output.
func (l *Logger) SetVerbose(v bool) {
	l.mu.Lock()
	l.verbose = v
	l.mu.Unlock()
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	plain := ts + " [" + level + "] " + text + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	if l.color {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+reset+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red) to the error writer.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.mu.Lock()
	verbose := l.verbose
	l.mu.Unlock()
	if !verbose {
		return
	}
	l.line("DEBUG", cyan, fmt.Sprintf(format, args...))
}
