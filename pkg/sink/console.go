package sink

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Console writes report lines to an io.Writer, by default the
// process standard output. Writes and verb changes are serialized
// with a mutex so a Console may be shared between goroutines even
// though the expectation engine itself is single-threaded.
type Console struct {
	mu     sync.Mutex
	output io.Writer
	verb   string
}

// NewConsole creates a Console writing to standard output.
func NewConsole() *Console {
	return NewConsoleTo(os.Stdout)
}

// NewConsoleTo creates a Console writing to the given writer.
func NewConsoleTo(w io.Writer) *Console {
	return &Console{
		output: w,
		verb:   DefaultVerb,
	}
}

// Printf writes a formatted line to the underlying writer.
func (c *Console) Printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.output, format, args...)
}

// Verb returns the current value-formatting verb.
func (c *Console) Verb() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.verb
}

// SetVerb replaces the value-formatting verb.
func (c *Console) SetVerb(verb string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verb = verb
}

// Close is a no-op for Console; the underlying writer is borrowed,
// not owned.
func (c *Console) Close() error {
	return nil
}
