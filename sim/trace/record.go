// Package trace provides trace-event recording and rendering for scheduler runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Kind identifies a trace event.
type Kind string

const (
	KindLoad      Kind = "load"      // process placed in the initial ready queue
	KindExecute   Kind = "execute"   // slice starts running a process
	KindIOStart   Kind = "io-start"  // process issued E/S and blocked
	KindInterrupt Kind = "interrupt" // slice ended by quantum exhaustion or block
	KindTerminate Kind = "terminate" // process executed SAIDA
	KindSummary   Kind = "summary"   // end-of-run statistics
)

// Event is one entry of a run's trace, in real execution order.
type Event struct {
	Kind    Kind
	Slice   int    // 1-based slice index; 0 for load and summary events
	Process string // process name; empty for summary events
	Count   int    // instructions run in the slice (interrupt events)
	X, Y    int    // final registers (terminate events)

	Summary *SummaryRecord // set only for summary events
}

// SummaryRecord captures the end-of-run statistics.
type SummaryRecord struct {
	AvgSwitches     float64
	AvgInstructions float64
	Quantum         int
	Truncated       bool // averages were computed with integer division
}
