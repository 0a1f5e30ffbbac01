// Package logger writes the client's debug log under the user's home
// directory. A terminal UI owns stdout, so everything goes to a file.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

const (
	logDirName  = ".hexhaven"
	logFileName = "debug.log"
	maxLogSize  = 10 << 20
)

var (
	debugLog *os.File
	logPath  string
)

// Init opens (or creates) the debug log and points the standard logger at
// it. Call once at startup, before any connection is opened.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, logDirName)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath = filepath.Join(logDir, logFileName)
	debugLog, err = openAppend(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if info, err := debugLog.Stat(); err == nil && info.Size() > maxLogSize {
		if debugLog, err = rotate(logDir); err != nil {
			return err
		}
	}

	log.SetOutput(debugLog)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// rotate moves an oversized log aside under a timestamped name and reopens
// a fresh one at the same path.
func rotate(logDir string) (*os.File, error) {
	_ = debugLog.Close()
	backupPath := filepath.Join(logDir,
		fmt.Sprintf("%s.%d", logFileName, time.Now().Unix()))
	_ = os.Rename(logPath, backupPath)

	f, err := openAppend(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create new log file: %w", err)
	}
	return f, nil
}

func openAppend(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Close flushes and closes the debug log file.
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
	}
}

// LogInfo logs an info message.
func LogInfo(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

// LogError logs an error message.
func LogError(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}

// LogPanic logs a recovered panic value with its stack trace.
func LogPanic(r interface{}) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath returns the current log file path.
func GetLogPath() string {
	return logPath
}
