// Package log provides structured logging backed by logrus with filesystem-based persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is an alias so callers don't import logrus directly.
type Fields = logrus.Fields

var (
	enabled bool
	logger  = logrus.New()
)

func init() {
	logger.SetOutput(io.Discard)
}

// Setup configures the log file, formatter and level from the global configuration.
// When logs.write is false every emission is discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logger.SetOutput(io.Discard)
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	configure(f, viper.GetBool(key.LogsJson), viper.GetString(key.LogsLevel))
	return nil
}

func configure(out io.Writer, asJson bool, level string) {
	logger.SetOutput(out)

	if asJson {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
}

// WithFields returns an entry carrying structured context.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logger.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logger.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logger.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logger.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logger.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logger.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
