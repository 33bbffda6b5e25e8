// ABOUTME: Logrus-backed logger implementation with structured JSON output
// ABOUTME: Provides leveled logging with fields for the Logger interface

package logrus

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using sirupsen/logrus
type LogrusLogger struct {
	logger *log.Logger
}

// NewLogrusLogger creates a new logrus logger at the given level.
// Unknown level strings fall back to info.
func NewLogrusLogger(level string) *LogrusLogger {
	logger := log.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&log.JSONFormatter{})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)

	return &LogrusLogger{logger: logger}
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Error(msg)
}
