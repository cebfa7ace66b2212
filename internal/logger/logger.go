// Package logger is crew's zerolog front end. Loggers are scoped per
// component and take trailing key/value pairs, so call sites read
//
//	log := root.Component("loader")
//	log.Info("users loaded", "count", 12)
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ComponentKey is the field every component-scoped entry carries.
const ComponentKey = "component"

// Options selects the sink and verbosity. When File is set entries are
// appended to it as JSON and Writer is ignored.
type Options struct {
	Level   string
	Console bool
	Writer  io.Writer
	File    string
}

// Logger writes structured entries. The zero value and nil discard output.
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
	ok     bool
}

// New builds a Logger. Callers that set Options.File must Close it.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var (
		sink   io.Writer = opts.Writer
		closer io.Closer
	)
	if opts.File != "" {
		file, err := openAppend(opts.File)
		if err != nil {
			return nil, err
		}
		sink, closer = file, file
	} else if sink == nil {
		sink = os.Stderr
	}

	if opts.Console {
		sink = zerolog.ConsoleWriter{Out: sink, TimeFormat: time.Kitchen}
	}

	return &Logger{
		zl:     zerolog.New(sink).Level(level).With().Timestamp().Logger(),
		closer: closer,
		ok:     true,
	}, nil
}

// Nop returns a logger that drops everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop(), ok: true}
}

// Close releases the log file, if New opened one.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Component scopes the logger to a named part of the program.
func (l *Logger) Component(name string) *Logger {
	return l.With(ComponentKey, name)
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(kv ...any) *Logger {
	if !l.usable() {
		return l
	}
	return &Logger{zl: l.zl.With().Fields(kv).Logger(), ok: true}
}

func (l *Logger) Debug(msg string, kv ...any) { l.emit(zerolog.DebugLevel, nil, msg, kv) }
func (l *Logger) Info(msg string, kv ...any)  { l.emit(zerolog.InfoLevel, nil, msg, kv) }
func (l *Logger) Warn(msg string, kv ...any)  { l.emit(zerolog.WarnLevel, nil, msg, kv) }

// Error logs msg at error level with err attached.
func (l *Logger) Error(err error, msg string, kv ...any) {
	l.emit(zerolog.ErrorLevel, err, msg, kv)
}

func (l *Logger) emit(level zerolog.Level, err error, msg string, kv []any) {
	if !l.usable() {
		return
	}
	event := l.zl.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	if len(kv) > 0 {
		event = event.Fields(kv)
	}
	event.Msg(msg)
}

func (l *Logger) usable() bool {
	return l != nil && l.ok
}

func parseLevel(raw string) (zerolog.Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

func openAppend(path string) (*os.File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
