package diag

import "sync"

// Entry is one recorded diagnostic.
type Entry struct {
	Severity string
	Message  string
	Context  []any
}

// Capture records diagnostics in order, for assertions in tests and for the
// audit surfaces that report how many operations were skipped or dropped.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
}

var _ Sink = (*Capture)(nil)

// Info records an info-severity entry.
func (c *Capture) Info(msg string, keysAndValues ...any) {
	c.record("info", msg, keysAndValues)
}

// Warn records a warning-severity entry.
func (c *Capture) Warn(msg string, keysAndValues ...any) {
	c.record("warn", msg, keysAndValues)
}

func (c *Capture) record(severity, msg string, kv []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{
		Severity: severity,
		Message:  msg,
		Context:  append([]any(nil), kv...),
	})
}

// Entries returns a copy of the recorded diagnostics in arrival order.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.entries...)
}

// Count reports how many entries were recorded at the given severity.
func (c *Capture) Count(severity string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, entry := range c.entries {
		if entry.Severity == severity {
			total++
		}
	}
	return total
}
