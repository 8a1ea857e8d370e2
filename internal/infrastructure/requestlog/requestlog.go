// Package requestlog appends one plain-text line per API request to a
// shared log file, independent of the process logger.
package requestlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05.000000"

type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// New opens the log file at path in append mode, creating it if needed.
func New(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open request log: %w", err)
	}

	return &Logger{file: file}, nil
}

// Log appends a single line describing one request. A nil or empty payload
// is recorded as None. The line is written with one call under the lock so
// concurrent requests cannot interleave.
func (l *Logger) Log(method, endpoint string, payload []byte) error {
	data := "None"
	if len(payload) > 0 {
		data = flatten(string(payload))
	}

	line := fmt.Sprintf("[%s] %s %s | Data: %s\n",
		time.Now().Format(timeLayout), method, endpoint, data)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.file.WriteString(line); err != nil {
		return fmt.Errorf("failed to append request log: %w", err)
	}

	return nil
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.file.Close()
}

// flatten keeps multi-line payloads on a single log line.
func flatten(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)
}
