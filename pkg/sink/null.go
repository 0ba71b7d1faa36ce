package sink

// Null discards all report output. It is useful for tests and
// benchmarks where reporting overhead is not desired. The
// value-formatting verb is still tracked so save/restore round
// trips behave like on any other sink.
type Null struct {
	verb string
}

// NewNull creates a sink that discards everything written to it.
func NewNull() *Null {
	return &Null{verb: DefaultVerb}
}

// Printf is a no-op.
func (*Null) Printf(_ string, _ ...any) {}

// Verb returns the current value-formatting verb.
func (n *Null) Verb() string { return n.verb }

// SetVerb replaces the value-formatting verb.
func (n *Null) SetVerb(verb string) { n.verb = verb }

// Close is a no-op.
func (*Null) Close() error { return nil }
