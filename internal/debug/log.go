// Package debug is a tiny category logger shared by the hashwave packages.
//
// Logging is off until Enable or EnableEnv is called. Lines look like
//
//	[15:04:05.000] nibble     hash 0x00 is hexadecimal
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// EnvVar names the environment variable holding a log file path.
const EnvVar = "HASHWAVE_DEBUG"

var (
	out     io.Writer
	file    *os.File
	mu      sync.Mutex
	enabled bool
)

// Enable starts logging to w. It replaces any previous destination.
func Enable(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeFile()
	out = w
	enabled = w != nil
}

// EnableFile truncates path and logs into it.
func EnableFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	closeFile()
	file = f
	out = f
	enabled = true

	// can't call Log, we hold the mutex
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(file, "[%s] %-10s %s\n", ts, "debug", "=== Debug logging started ===")
	return nil
}

// EnableEnv enables file logging when HASHWAVE_DEBUG is set.
func EnableEnv() error {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil
	}
	return EnableFile(path)
}

// Disable stops logging and closes the log file, if any.
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	closeFile()
	out = nil
	enabled = false
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a message under category.
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || out == nil {
		return
	}

	ts := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %-10s %s\n", ts, category, msg)
	if file != nil {
		file.Sync() // flush so the log survives a crash mid-playback
	}
}

func closeFile() {
	if file != nil {
		file.Close()
		file = nil
	}
}
