// Package metrics counts what happens on the keypad. Sessions take a Recorder; the
// NoopRecorder is the default so callers never check for nil.
package metrics

// Recorder defines the observability hooks used by sessions.
type Recorder interface {
	IncAction(action string)
	IncFault()
	IncRejectedKey()
	SetTapeLength(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncAction(string)  {}
func (NoopRecorder) IncFault()         {}
func (NoopRecorder) IncRejectedKey()   {}
func (NoopRecorder) SetTapeLength(int) {}
