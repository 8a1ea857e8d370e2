package requestlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func newTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "api_logs.txt")
	logger, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { logger.Close() })

	return logger, path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

func TestLogLineFormat(t *testing.T) {
	logger, path := newTestLogger(t)

	if err := logger.Log("POST", "/tasks", []byte(`{"task_title": "x"}`)); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	if !strings.HasSuffix(line, `] POST /tasks | Data: {"task_title": "x"}`) {
		t.Errorf("unexpected line layout: %q", line)
	}

	// The bracketed prefix must hold a microsecond timestamp
	end := strings.Index(line, "]")
	if !strings.HasPrefix(line, "[") || end < 0 {
		t.Fatalf("expected [timestamp] prefix, got %q", line)
	}
	if _, err := time.Parse("2006-01-02 15:04:05.000000", line[1:end]); err != nil {
		t.Errorf("unparseable timestamp %q: %v", line[1:end], err)
	}
}

func TestLogWithoutPayload(t *testing.T) {
	logger, path := newTestLogger(t)

	if err := logger.Log("GET", "/tasks", nil); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "GET /tasks | Data: None") {
		t.Errorf("expected None placeholder, got %q", lines[0])
	}
}

func TestLogFlattensMultilinePayload(t *testing.T) {
	logger, path := newTestLogger(t)

	if err := logger.Log("POST", "/tasks", []byte("{\n  \"task_title\": \"x\"\r\n}")); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected multi-line payload on a single line, got %d lines", len(lines))
	}
}

func TestLogAppendsAcrossReopen(t *testing.T) {
	logger, path := newTestLogger(t)

	if err := logger.Log("GET", "/tasks", nil); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	logger.Close()

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("New() after close error = %v", err)
	}
	defer reopened.Close()

	if err := reopened.Log("DELETE", "/tasks/1", nil); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("expected history preserved across reopen, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "GET /tasks") || !strings.Contains(lines[1], "DELETE /tasks/1") {
		t.Errorf("expected chronological append, got %v", lines)
	}
}

func TestNewFailsWithoutParentDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "api_logs.txt"))
	if err == nil {
		t.Fatal("expected error for unwritable path, got nil")
	}
}

func TestLogConcurrentWritesStayIntact(t *testing.T) {
	logger, path := newTestLogger(t)

	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			payload := fmt.Sprintf(`{"task_title": "task %d"}`, n)
			if err := logger.Log("POST", "/tasks", []byte(payload)); err != nil {
				t.Errorf("Log() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	lines := readLines(t, path)
	if len(lines) != writers {
		t.Fatalf("expected %d lines, got %d", writers, len(lines))
	}

	for _, line := range lines {
		if !strings.HasPrefix(line, "[") || !strings.Contains(line, "] POST /tasks | Data: ") {
			t.Errorf("interleaved or malformed line: %q", line)
		}
	}
}
