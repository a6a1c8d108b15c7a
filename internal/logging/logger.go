// Package logging provides config-driven categorized logging for AuraQuest.
// Logs are JSON lines written by zap to <workspace>/.quest/logs/quest.log, never
// to stdout, because the terminal UI owns the screen.
// Logging is controlled by debug_mode in the logging config - when false, nothing is written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"auraquest/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, config resolution
	CategoryWizard Category = "wizard" // Step transitions, validation failures
	CategoryAPI    Category = "api"    // Generation service calls
	CategoryPrint  Category = "print"  // Print/export backends
	CategoryUI     Category = "ui"     // Terminal UI events
)

// Logger is a category-scoped sugared zap logger.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	cfg     config.LoggingConfig
	logPath string
	loggers = make(map[Category]*Logger)
)

// Initialize sets up the log file under workspace and applies c.
// Should be called once at startup. With debug mode off it is a silent no-op.
func Initialize(workspace string, c config.LoggingConfig) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	mu.Lock()
	defer mu.Unlock()

	cfg = c
	loggers = make(map[Category]*Logger)
	if !c.DebugMode {
		base = zap.NewNop()
		logPath = ""
		return nil
	}

	path := c.File
	if path == "" {
		path = filepath.Join(workspace, ".quest", "logs", "quest.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	level := zapcore.InfoLevel
	if c.Level != "" {
		parsed, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Level, err)
		}
		level = parsed
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	if c.Format == "console" {
		zc.Encoding = "console"
	}

	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	base = logger
	logPath = path

	base.Info("=== AuraQuest logging initialized ===", zap.String("category", string(CategoryBoot)))
	return nil
}

// Path returns the active log file, or "" when logging is disabled.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.DebugMode
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	z := zap.NewNop()
	if cfg.IsCategoryEnabled(string(category)) {
		z = base.With(zap.String("category", string(category)))
	}
	l := &Logger{category: category, sugar: z.Sugar()}
	loggers[category] = l
	return l
}

// Sync flushes buffered entries.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	return base.Sync()
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

// With returns a child logger carrying key/value fields on every entry.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{category: l.category, sugar: l.sugar.With(keysAndValues...)}
}

// Category returns the logger's category.
func (l *Logger) Category() Category {
	return l.category
}
