package log

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelDebug // Default to DEBUG
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Logger keeps the printf-style API used across the code base on top of a
// zerolog logger.
type Logger struct {
	zl    zerolog.Logger
	level Level
}

// New writes JSON lines to out.
func New(out io.Writer, level Level) *Logger {
	return &Logger{
		zl:    zerolog.New(out).Level(level.zerolog()).With().Timestamp().Logger(),
		level: level,
	}
}

// NewConsole writes human readable lines, for terminals.
func NewConsole(out io.Writer, level Level) *Logger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}
	return &Logger{
		zl:    zerolog.New(cw).Level(level.zerolog()).With().Timestamp().Logger(),
		level: level,
	}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop(), level: LevelNone}
}

// With returns a child logger carrying a component field.
func (l *Logger) With(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger(), level: l.level}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
	l.zl = l.zl.Level(level.zerolog())
}

func (l *Logger) Level() Level {
	return l.level
}
