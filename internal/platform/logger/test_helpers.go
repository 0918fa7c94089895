package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
)

// LogCapture collects the JSON lines written by a test logger.
type LogCapture struct {
	mu  sync.Mutex
	out bytes.Buffer
}

func (c *LogCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

// String returns everything captured so far.
func (c *LogCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.String()
}

// Reset drops captured output.
func (c *LogCapture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.Reset()
}

// Entries decodes each captured line. A line that is not a JSON object fails
// the test.
func (c *LogCapture) Entries(t *testing.T) []map[string]any {
	t.Helper()

	scanner := bufio.NewScanner(bytes.NewReader([]byte(c.String())))
	var entries []map[string]any
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("captured log line is not JSON: %v\n%s", err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

// Messages returns the msg field of each captured entry, in order.
func (c *LogCapture) Messages(t *testing.T) []string {
	t.Helper()

	entries := c.Entries(t)
	msgs := make([]string, 0, len(entries))
	for _, e := range entries {
		msg, _ := e[slog.MessageKey].(string)
		msgs = append(msgs, msg)
	}
	return msgs
}

// NewTestLogger returns a debug-level JSON logger and the capture it writes to.
func NewTestLogger(t *testing.T) (*slog.Logger, *LogCapture) {
	t.Helper()

	capture := &LogCapture{}
	handler := slog.NewJSONHandler(capture, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), capture
}
