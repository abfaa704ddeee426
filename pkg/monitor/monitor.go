// Package monitor records recent analysis runs in a fixed-capacity ring
// buffer. The buffer is owned by whoever constructs it and injected where
// needed; there is no package-level state.
package monitor

import (
	"sync"
	"time"
)

// Entry is one recorded analysis run.
type Entry struct {
	DocumentID   string
	Trade        string
	OverallScore int
	IssueCount   int
	Duration     time.Duration
	At           time.Time
}

// Log is a bounded, concurrency-safe ring of analysis entries. Once capacity
// is reached the oldest entry is overwritten.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
}

// DefaultCapacity is used when NewLog is given a non-positive capacity.
const DefaultCapacity = 100

// NewLog builds a log holding at most capacity entries.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{entries: make([]Entry, capacity)}
}

// Record appends an entry, evicting the oldest when the ring is full.
func (l *Log) Record(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[l.next] = e
	l.next = (l.next + 1) % len(l.entries)
	if l.next == 0 {
		l.full = true
	}
}

// Len returns the number of recorded entries, capped at capacity.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.full {
		return len(l.entries)
	}
	return l.next
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := l.next
	if l.full {
		count = len(l.entries)
	}
	if n > count {
		n = count
	}
	if n <= 0 {
		return nil
	}

	out := make([]Entry, 0, n)
	idx := l.next
	for i := 0; i < n; i++ {
		idx--
		if idx < 0 {
			idx = len(l.entries) - 1
		}
		out = append(out, l.entries[idx])
	}
	return out
}
