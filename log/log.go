// Package log provides structured logging with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nextep-cli/nextep/filesystem"
	"github.com/nextep-cli/nextep/key"
	"github.com/nextep-cli/nextep/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// enabled indicates whether log emissions reach the backend for this process.
var enabled bool

// Setup initializes the logging subsystem from the global configuration.
// If logging is disabled, all subsequent log emissions are silently discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Entry is a log emitter carrying structured fields.
type Entry struct {
	fields logrus.Fields
}

// WithField starts an Entry with a single structured field.
func WithField(k string, v any) *Entry {
	return &Entry{fields: logrus.Fields{k: v}}
}

// WithField returns a copy of the entry with one more field.
func (e *Entry) WithField(k string, v any) *Entry {
	fields := make(logrus.Fields, len(e.fields)+1)
	for fk, fv := range e.fields {
		fields[fk] = fv
	}
	fields[k] = v
	return &Entry{fields: fields}
}

func (e *Entry) Debugf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Debugf(format, args...)
	}
}

func (e *Entry) Infof(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Infof(format, args...)
	}
}

func (e *Entry) Warnf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Warnf(format, args...)
	}
}

func (e *Entry) Errorf(format string, args ...any) {
	if enabled {
		logrus.WithFields(e.fields).Errorf(format, args...)
	}
}

// Severity-specific emissions on the package logger.

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}
func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
