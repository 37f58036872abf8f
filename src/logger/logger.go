package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	Log          *logrus.Logger
	currentFile  *os.File
	logDirectory = "logs"
)

// InitLogger initializes the logger with JSON output to stdout and a
// timestamped file under the log directory.
func InitLogger() error {
	Log = logrus.New()

	Log.SetLevel(logrus.InfoLevel)

	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	if err := os.MkdirAll(logDirectory, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}

	if err := rotateLogFile(); err != nil {
		return fmt.Errorf("failed to create log file: %v", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, currentFile)
	Log.SetOutput(multiWriter)

	Log.Info("logger initialized")
	return nil
}

// SetLevel adjusts the log level from its config string
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("unknown log level, keeping info")
		return
	}
	Log.SetLevel(parsed)
}

// rotateLogFile opens a fresh timestamped log file
func rotateLogFile() error {
	if currentFile != nil {
		currentFile.Close()
	}

	filename := fmt.Sprintf("app_%s.log", time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(logDirectory, filename)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	currentFile = file
	Log.WithField("file", path).Info("opened new log file")
	return nil
}

// GetCurrentLogFile returns the active log file path
func GetCurrentLogFile() string {
	if currentFile != nil {
		return currentFile.Name()
	}
	return ""
}

// CloseLogger flushes and closes the active log file
func CloseLogger() {
	if currentFile != nil {
		Log.Info("closing log file")
		currentFile.Close()
	}
}

// WithFields creates a log entry with multiple fields
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}

// WithField creates a log entry with a single field
func WithField(key string, value interface{}) *logrus.Entry {
	return Log.WithField(key, value)
}
