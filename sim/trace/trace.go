package trace

// Sink accepts trace events in execution order.
type Sink interface {
	Emit(Event)
}

// Recorder collects events in memory.
type Recorder struct {
	Events []Event
}

// NewRecorder creates a Recorder ready for recording.
func NewRecorder() *Recorder {
	return &Recorder{Events: make([]Event, 0)}
}

// Emit appends an event.
func (r *Recorder) Emit(ev Event) {
	r.Events = append(r.Events, ev)
}

// Lines renders every recorded event in the given language.
func (r *Recorder) Lines(lang Language) []string {
	var out []string
	for _, ev := range r.Events {
		out = append(out, Lines(ev, lang)...)
	}
	return out
}

// Discard drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// Tee fans each event out to every sink in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Emit(ev Event) {
	for _, s := range t {
		s.Emit(ev)
	}
}
