// Package debug provides optional file-based debug logging.
//
// When the PANE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
// A rendering core owns the terminal, so it must never log to stdout or
// stderr.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	file *os.File
	once sync.Once
)

func target() *os.File {
	once.Do(func() {
		path := os.Getenv("PANE_DEBUG")
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return
		}
		file = f
	})
	return file
}

// Logf writes a formatted message to the debug file, if one is configured.
func Logf(format string, args ...any) {
	f := target()
	if f == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(f, "%s ", time.Now().Format("15:04:05.000"))
	fmt.Fprintf(f, format, args...)
	fmt.Fprintln(f)
}

// Enabled reports whether debug logging is active.
func Enabled() bool {
	return target() != nil
}
