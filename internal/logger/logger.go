package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/viewer.log"

// defaultHistory is how many lines the console can scroll back through.
const defaultHistory = 200

// Options configures New.
type Options struct {
	Level    slog.Level
	FilePath string    // empty disables the log file
	Stderr   io.Writer // nil disables console output
	History  int       // 0 uses defaultHistory
}

// History stores the most recent log lines, formatted for the in-window console.
type History struct {
	mu    sync.Mutex
	lines []string
	max   int
}

// NewHistory returns an empty history keeping at most max lines.
func NewHistory(max int) *History {
	if max <= 0 {
		max = defaultHistory
	}
	return &History{max: max}
}

// Add appends one line, dropping the oldest when full.
func (h *History) Add(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = append(h.lines, line)
	if over := len(h.lines) - h.max; over > 0 {
		h.lines = append(h.lines[:0], h.lines[over:]...)
	}
}

// Lines returns a copy of all stored lines, oldest first.
func (h *History) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

// New returns a logger writing text records to the log file and stderr,
// and short "[hh:mm:ss] message k=v" lines into the returned History.
// The close func releases the log file.
func New(opts Options) (*slog.Logger, *History, func() error, error) {
	hist := NewHistory(opts.History)
	var writers []io.Writer
	closeFn := func() error { return nil }
	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0755); err != nil {
			return nil, nil, nil, fmt.Errorf("logger: %w", err)
		}
		f, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("logger: %w", err)
		}
		writers = append(writers, f)
		closeFn = f.Close
	}
	if opts.Stderr != nil {
		writers = append(writers, opts.Stderr)
	}

	var inner slog.Handler
	if len(writers) > 0 {
		inner = slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: opts.Level})
	}
	h := &historyHandler{hist: hist, level: opts.Level, inner: inner}
	return slog.New(h), hist, closeFn, nil
}

// historyHandler records into a History and forwards to an optional inner handler.
type historyHandler struct {
	hist   *History
	level  slog.Level
	inner  slog.Handler
	attrs  []slog.Attr
	groups []string
}

func (h *historyHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *historyHandler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString("[" + r.Time.Format(time.TimeOnly) + "] ")
	if r.Level >= slog.LevelWarn {
		b.WriteString(r.Level.String() + " ")
	}
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	write := func(a slog.Attr) bool {
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", key, a.Value.Resolve())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	h.hist.Add(b.String())

	if h.inner != nil {
		return h.inner.Handle(ctx, r)
	}
	return nil
}

func (h *historyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	if h.inner != nil {
		c.inner = h.inner.WithAttrs(attrs)
	}
	return &c
}

func (h *historyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(append([]string(nil), h.groups...), name)
	if h.inner != nil {
		c.inner = h.inner.WithGroup(name)
	}
	return &c
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}
