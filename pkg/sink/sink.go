// Package sink provides text-output destinations for expectation
// reporting with console, discard, fan-out, and in-memory capture
// implementations.
package sink

// Sink defines the interface for report-line destinations. Besides
// formatted writes a Sink carries a value-formatting verb which the
// expectation engine saves, temporarily overrides, and restores
// around boolean expectations.
type Sink interface {
	// Printf writes a formatted line to the destination.
	Printf(format string, args ...any)

	// Verb returns the current value-formatting verb.
	Verb() string

	// SetVerb replaces the value-formatting verb.
	SetVerb(verb string)

	// Close flushes any buffers and releases resources.
	Close() error
}

// DefaultVerb is the value-formatting verb a freshly created sink
// starts with.
const DefaultVerb = "%v"
