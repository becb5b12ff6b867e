// Package logger provides structured logging for metastudio
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog with metastudio-specific functionality
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	Pretty     bool   // pretty-print for development
	Output     io.Writer
	WithCaller bool
}

// NewLogger creates a new structured logger
func NewLogger(cfg Config) *Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	// Pretty printing for development
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zlog := zerolog.New(output).
		With().
		Timestamp().
		Str("service", "metastudio").
		Logger()

	if cfg.WithCaller {
		zlog = zlog.With().Caller().Logger()
	}

	return &Logger{zlog: zlog}
}

// GetZerolog returns the underlying zerolog logger
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zlog
}

// Info logs an info message
func (l *Logger) Info(msg string) *zerolog.Event {
	return l.zlog.Info().Str("msg", msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) *zerolog.Event {
	return l.zlog.Debug().Str("msg", msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) *zerolog.Event {
	return l.zlog.Warn().Str("msg", msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) *zerolog.Event {
	return l.zlog.Error().Str("msg", msg)
}

// ComponentLogger returns a logger scoped to one component
func (l *Logger) ComponentLogger(component string) *Logger {
	return &Logger{
		zlog: l.zlog.With().
			Str("component", component).
			Logger(),
	}
}

// LogAttributeRemoved logs an attribute removal. A removal of a key that
// never existed is reported here rather than surfaced as an error.
func (l *Logger) LogAttributeRemoved(key string, existed bool) {
	if !existed {
		l.zlog.Warn().
			Str("component", "attrs").
			Str("key", key).
			Msg("Attribute does not exist, nothing removed")
		return
	}
	l.zlog.Debug().
		Str("component", "attrs").
		Str("key", key).
		Msg("Attribute removed")
}

// LogRecordBuilt logs construction of one metadata record
func (l *Logger) LogRecordBuilt(kind, class, name string) {
	l.zlog.Debug().
		Str("component", "builder").
		Str("kind", kind).
		Str("class", class).
		Str("name", name).
		Msg("Metadata record built")
}

// LogRecordUpdated logs an update applied to a metadata record
func (l *Logger) LogRecordUpdated(kind, name, event string) {
	l.zlog.Debug().
		Str("component", "record").
		Str("kind", kind).
		Str("name", name).
		Str("event", event).
		Msg("Metadata record updated")
}

// LogTaxonomyLookup logs a taxonomy lookup with its outcome
func (l *Logger) LogTaxonomyLookup(kind string, hit bool) {
	event := l.zlog.Debug()
	if !hit {
		event = l.zlog.Warn()
	}
	event.
		Str("component", "taxonomy").
		Str("kind", kind).
		Bool("hit", hit).
		Msg("Taxonomy lookup")
}

// Global logger instance
var globalLogger *Logger

// InitGlobalLogger initializes the global logger
func InitGlobalLogger(cfg Config) {
	globalLogger = NewLogger(cfg)
	log.Logger = *globalLogger.GetZerolog()
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		// Initialize with defaults if not set
		InitGlobalLogger(Config{
			Level: "info",
		})
	}
	return globalLogger
}
