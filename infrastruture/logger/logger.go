// Package logger provides the named, colored component loggers used across the
// application. Each component gets its own logger created with New and writes
// single line console entries (or JSON) through zap.
package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	ErrEmptyName     = errors.New("logger name is empty")
	ErrNilWriter     = errors.New("logger writer is nil")
	ErrUnknownFormat = errors.New("unknown log format")
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Logger is a component scoped logger.
type Logger struct {
	zap *zap.Logger
}

var _ i.Logger = (*Logger)(nil)

type options struct {
	level  zapcore.Level
	format string
	file   io.Writer
}

// Option configures New.
type Option func(*options) error

// WithLevel sets the minimum level. Accepts debug, info, warn and error.
func WithLevel(level string) Option {
	return func(o *options) error {
		if level == "" {
			return nil
		}
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("parsing log level: %w", err)
		}
		o.level = lvl
		return nil
	}
}

// WithFormat selects the console or JSON encoding for the main writer.
func WithFormat(format string) Option {
	return func(o *options) error {
		switch strings.ToLower(format) {
		case "", FormatConsole:
			o.format = FormatConsole
		case FormatJSON:
			o.format = FormatJSON
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
		}
		return nil
	}
}

// WithFile tees every entry as JSON into w, usually a rotating file from
// NewRotatingFile.
func WithFile(w io.Writer) Option {
	return func(o *options) error {
		o.file = w
		return nil
	}
}

// NewRotatingFile returns a size rotated log file. The returned writer is safe
// to share between loggers.
func NewRotatingFile(cfg config.LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// New creates a logger for the component name. color is an ANSI escape used
// for the component name in console output; an empty color disables it.
func New(name, color string, w io.Writer, opts ...Option) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	o := &options{level: zapcore.InfoLevel, format: FormatConsole}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	var encoder zapcore.Encoder
	if o.format == FormatJSON {
		encoder = zapcore.NewJSONEncoder(jsonEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(consoleEncoderConfig(color))
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), o.level),
	}
	if o.file != nil {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(jsonEncoderConfig()),
			zapcore.AddSync(o.file),
			o.level,
		))
	}

	z := zap.New(zapcore.NewTee(cores...)).Named(name)
	return &Logger{zap: z}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

func (l *Logger) Debug(msg string) {
	l.zap.Debug(msg)
}

func (l *Logger) Info(msg string) {
	l.zap.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.zap.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.zap.Error(msg)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// Zap exposes the underlying logger for libraries that take one.
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

func consoleEncoderConfig(color string) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	cfg.EncodeLevel = colorizedLevel(color != "")
	cfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		if color == "" {
			enc.AppendString("[" + name + "]")
			return
		}
		enc.AppendString(color + "[" + name + "]" + config.ColorReset)
	}
	return cfg
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func colorizedLevel(enabled bool) zapcore.LevelEncoder {
	return func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		label := "[" + strings.ToUpper(level.String()) + "]"
		if !enabled {
			enc.AppendString(label)
			return
		}

		color := config.LogInfoColor
		switch level {
		case zapcore.DebugLevel:
			color = config.ColorCyan
		case zapcore.WarnLevel:
			color = config.LogWarnColor
		case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
			color = config.LogErrorColor
		}
		enc.AppendString(color + label + config.LogColorReset)
	}
}
