package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	logFile *os.File
	enabled bool
	once    sync.Once
	mu      sync.Mutex
)

// setup opens the log file named by FLEXCELL_DEBUG. Logging stays disabled
// when the variable is unset or the file cannot be opened.
func setup() {
	path := os.Getenv("FLEXCELL_DEBUG")
	if path == "" {
		return
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	logFile = f
	enabled = true
}

// Init enables logging to the given file path regardless of the
// environment. An empty path means "debug.log" in the current directory.
func Init(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	once.Do(func() {})
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	enabled = true
	return nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		enabled = false
		return err
	}
	return nil
}

// Logf writes a timestamped message to the debug log. It is a no-op unless
// FLEXCELL_DEBUG names a writable file path.
func Logf(format string, args ...any) {
	once.Do(setup)
	if !enabled {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}
