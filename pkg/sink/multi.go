package sink

// Multi fans out report lines to multiple sinks, for example a
// console sink plus an in-memory capture. The verb is tracked
// locally and pushed to every child so the engine's save/restore
// reaches all destinations.
type Multi struct {
	verb  string
	sinks []Sink
}

// NewMulti creates a sink that writes to multiple destinations.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{
		verb:  DefaultVerb,
		sinks: sinks,
	}
}

// Printf writes to all sinks.
func (m *Multi) Printf(format string, args ...any) {
	for _, s := range m.sinks {
		s.Printf(format, args...)
	}
}

// Verb returns the current value-formatting verb.
func (m *Multi) Verb() string { return m.verb }

// SetVerb replaces the value-formatting verb on this sink and on
// every child.
func (m *Multi) SetVerb(verb string) {
	m.verb = verb
	for _, s := range m.sinks {
		s.SetVerb(verb)
	}
}

// Close closes all sinks, returning the first error encountered.
func (m *Multi) Close() error {
	var first error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
