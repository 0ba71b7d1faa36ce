package sink

import (
	"fmt"
	"strings"
	"sync"
)

// Buffer captures report lines in memory. It is the sink of choice
// for asserting on the exact report transcript in tests.
type Buffer struct {
	mu   sync.Mutex
	sb   strings.Builder
	verb string
}

// NewBuffer creates an empty in-memory capture sink.
func NewBuffer() *Buffer {
	return &Buffer{verb: DefaultVerb}
}

// Printf appends a formatted line to the capture.
func (b *Buffer) Printf(format string, args ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(&b.sb, format, args...)
}

// Verb returns the current value-formatting verb.
func (b *Buffer) Verb() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.verb
}

// SetVerb replaces the value-formatting verb.
func (b *Buffer) SetVerb(verb string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.verb = verb
}

// String returns everything captured so far.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

// Reset discards the captured transcript. The verb is kept.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sb.Reset()
}

// Close is a no-op.
func (*Buffer) Close() error { return nil }
