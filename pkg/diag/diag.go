// Package diag defines the diagnostic sink the collection pipeline reports
// through. The sink is an injected capability rather than global state so
// callers can substitute a capturing implementation in tests.
package diag

// Sink receives structured diagnostics at info and warning severities.
// Key/value pairs follow the usual alternating convention.
type Sink interface {
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
}

type nopSink struct{}

func (nopSink) Info(string, ...any) {}
func (nopSink) Warn(string, ...any) {}

// Nop returns a sink that discards every diagnostic.
func Nop() Sink {
	return nopSink{}
}
