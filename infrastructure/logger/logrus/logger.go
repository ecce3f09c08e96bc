// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Text or JSON output to stdout, or to a rotating file when one is configured

package logrus

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/stevedylandev/wholenote-server/pkg/config"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	logger *log.Logger
	closer io.Closer
}

// NewLogger builds a logger from configuration. With a file set, output goes
// to a lumberjack-rotated file instead of stdout.
func NewLogger(cfg config.LogConfig) *Logger {
	if cfg.File == "" {
		return NewLoggerWithWriter(os.Stdout, cfg.Level, cfg.Format)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    500, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	l := NewLoggerWithWriter(file, cfg.Level, cfg.Format)
	l.closer = file
	return l
}

// NewLoggerWithWriter builds a logger that writes to w. An unknown level means info.
func NewLoggerWithWriter(w io.Writer, level, format string) *Logger {
	logger := log.New()
	logger.SetOutput(w)

	if format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)

	return &Logger{logger: logger}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Error(msg)
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
