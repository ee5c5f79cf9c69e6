package materialize

import "sync"

// Status is the state reported for a phase.
type Status string

const (
	StatusStarted   Status = "started"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Event is one progress notification.
type Event struct {
	Phase   Phase
	Status  Status
	Message string
}

// Sink receives progress events in order. Implementations must not panic
// and must return promptly.
type Sink interface {
	Event(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Event calls f(e).
func (f SinkFunc) Event(e Event) { f(e) }

// NopSink discards every event.
type NopSink struct{}

// Event implements Sink.
func (NopSink) Event(Event) {}

// RecordingSink keeps every event it receives.
type RecordingSink struct {
	mu     sync.Mutex
	events []Event
}

// Event implements Sink.
func (s *RecordingSink) Event(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events returns a copy of the recorded events.
func (s *RecordingSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func sinkOrNop(s Sink) Sink {
	if s == nil {
		return NopSink{}
	}
	return s
}
