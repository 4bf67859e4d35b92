// pkg/logger/logger.go

package logger

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// L returns the process-wide logger, falling back to zap's global so
// callers never receive nil.
func L() *zap.Logger {
	if log != nil {
		return log
	}
	return zap.L()
}

// Sync flushes any buffered log entries.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}

// ParseLogLevel maps a LOG_LEVEL string to a zap level, defaulting to info.
func ParseLogLevel(raw string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// FindWritableLogPath returns the first log file location we can create
// and write to. System path first, then the user's state directory.
func FindWritableLogPath() (string, error) {
	candidates := []string{"/var/log/dotkit/dotkit.log"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".local", "state", "dotkit", "dotkit.log"))
	}

	var lastErr error
	for _, path := range candidates {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			lastErr = err
			continue
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			lastErr = err
			continue
		}
		_ = f.Close()
		return path, nil
	}
	return "", lastErr
}

// GetLogFileWriter opens the log file for appending as a zap sync target.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(f), nil
}
