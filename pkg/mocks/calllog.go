package mocks

import "sync"

// CallLog records calls across several mocks so tests can assert ordering.
// A nil *CallLog ignores Add.
type CallLog struct {
	mu      sync.Mutex
	entries []string
}

// Add appends an entry.
func (l *CallLog) Add(entry string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the recorded entries.
func (l *CallLog) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}
