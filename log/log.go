// Package log provides structured logging infrastructure with optional filesystem-based persistence.
//
// Standard output carries the MCP protocol stream, so log records go to standard error
// unless logs.write redirects them to a daily file.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cinemcp/cinemcp/filesystem"
	"github.com/cinemcp/cinemcp/key"
	"github.com/cinemcp/cinemcp/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Setup initializes the logging subsystem: output, formatting and severity level based on global configuration.
func Setup() error {
	out, err := output()
	if err != nil {
		return err
	}
	logrus.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.WarnLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

func output() (io.Writer, error) {
	if !viper.GetBool(key.LogsWrite) {
		return os.Stderr, nil
	}

	dir := where.Logs()
	if dir == "" {
		return nil, errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return f, nil
}

// WithField returns an entry carrying a single structured field.
func WithField(k string, v any) *logrus.Entry {
	return logrus.WithField(k, v)
}

// Severity-Specific Log Emissions - these functions proxy messages to the configured backend.

func Error(args ...interface{}) {
	logrus.Error(args...)
}
func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
func Warn(args ...interface{}) {
	logrus.Warn(args...)
}
func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}
func Info(args ...interface{}) {
	logrus.Info(args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
func Debug(args ...interface{}) {
	logrus.Debug(args...)
}
func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

// Writer returns a writer that forwards each line it receives as an error record.
// The caller closes it.
func Writer() *io.PipeWriter {
	return logrus.StandardLogger().WriterLevel(logrus.ErrorLevel)
}
