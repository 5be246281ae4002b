package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatPretty  = "pretty"
	FormatJSON    = "json"
)

// Logger wraps zerolog.Logger with a service name.
type Logger struct {
	logger  zerolog.Logger
	service string
}

// Init initializes the global logger from config.
func Init(cfg Config) {
	cfg.ApplyDefaults()
	globalLogger = New(&cfg, cfg.ServiceName)
}

// New creates a new logger instance with configuration.
func New(cfg *Config, serviceName string) *Logger {
	return NewWithWriter(cfg, serviceName, outputWriter(cfg.Output))
}

// NewWithWriter creates a logger writing to w instead of the configured output.
func NewWithWriter(cfg *Config, serviceName string, w io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case FormatConsole, FormatPretty:
		zl = newConsoleLogger(w, cfg.NoColor)
	default:
		zl = zerolog.New(w)
	}
	zl = zl.Level(level)

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}
	if serviceName != "" {
		zl = zl.With().Str("service", serviceName).Logger()
	}

	return &Logger{logger: zl, service: serviceName}
}

// NewDefault creates a logger with default configuration.
func NewDefault(serviceName string) *Logger {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return New(cfg, serviceName)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		logger:  l.logger.With().Str(FieldComponent, name).Logger(),
		service: l.service,
	}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger(), service: l.service}
}

// GetLogger returns the underlying zerolog.Logger.
func (l *Logger) GetLogger() zerolog.Logger {
	return l.logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	emit(l.logger.Debug(), msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	emit(l.logger.Info(), msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	emit(l.logger.Warn(), msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]any) {
	emit(l.logger.Error(), msg, fields...)
}

// --- Global logger ---

var globalLogger *Logger

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) { globalLogger = l }

// GetGlobalLogger returns the global logger, creating a default one if needed.
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		globalLogger = NewDefault("apistruct")
	}
	return globalLogger
}

// Package-level convenience functions delegate to the global logger.

func Debug(msg string, fields ...map[string]any) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...map[string]any) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...map[string]any) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(msg string, fields ...map[string]any) {
	GetGlobalLogger().Error(msg, fields...)
}

// --- internal helpers ---

func emit(event *zerolog.Event, msg string, fields ...map[string]any) {
	for _, fm := range fields {
		event.Fields(fm)
	}
	event.Msg(msg)
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

func newConsoleLogger(w io.Writer, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
		FormatLevel: func(i any) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(fmt.Sprintf("%.3s", i)))
		},
		FormatFieldName: func(i any) string {
			return fmt.Sprintf("%s:", i)
		},
	})
}
