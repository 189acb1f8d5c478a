package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/DeRuina/timberjack"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/config"
)

// Logger owns the process-wide slog handlers.
type Logger struct {
	mu       sync.Mutex
	handlers []slog.Handler
	file     *timberjack.Logger
}

// Setup installs a JSON logger on stdout and, when LOG_FILE_PATH is set,
// on a size-rotated file as well.
func Setup(cfg *config.Config) *Logger {
	return SetupTo(cfg, os.Stdout)
}

// SetupTo is Setup with the console output sent to w.
func SetupTo(cfg *config.Config, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}
	l := &Logger{handlers: []slog.Handler{slog.NewJSONHandler(w, opts)}}

	if cfg.LogFilePath != "" {
		if dir := filepath.Dir(cfg.LogFilePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				slog.Error("failed to create log directory", "dir", dir, "error", err)
			}
		}
		l.file = &timberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   true,
		}
		l.handlers = append(l.handlers, slog.NewJSONHandler(l.file, opts))
	}

	l.install()
	return l
}

// Attach adds h to the fan-out, e.g. the database handler once the DB is open.
func (l *Logger) Attach(h slog.Handler) {
	l.mu.Lock()
	l.handlers = append(l.handlers, h)
	l.mu.Unlock()
	l.install()
}

func (l *Logger) install() {
	l.mu.Lock()
	defer l.mu.Unlock()
	handlers := make([]slog.Handler, len(l.handlers))
	copy(handlers, l.handlers)
	slog.SetDefault(slog.New(NewMultiHandler(handlers...)))
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
