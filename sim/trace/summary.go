package trace

// TraceSummary aggregates statistics from a recorded trace.
type TraceSummary struct {
	Loaded     int
	Slices     int
	IOStarts   int
	Interrupts int
	Terminated int

	SlicesPerProcess map[string]int // process name → slices it ran in
	IOPerProcess     map[string]int // process name → E/S instructions issued
	Order            []string       // process names in first-execution order
}

// Summarize computes aggregate statistics from recorded events.
// Safe for nil or empty input (returns zero-value fields).
func Summarize(events []Event) *TraceSummary {
	summary := &TraceSummary{
		SlicesPerProcess: make(map[string]int),
		IOPerProcess:     make(map[string]int),
	}
	for _, ev := range events {
		switch ev.Kind {
		case KindLoad:
			summary.Loaded++
		case KindExecute:
			summary.Slices++
			if summary.SlicesPerProcess[ev.Process] == 0 {
				summary.Order = append(summary.Order, ev.Process)
			}
			summary.SlicesPerProcess[ev.Process]++
		case KindIOStart:
			summary.IOStarts++
			summary.IOPerProcess[ev.Process]++
		case KindInterrupt:
			summary.Interrupts++
		case KindTerminate:
			summary.Terminated++
		}
	}
	return summary
}

// ExecutionOrder returns the process name of every execute event, in order.
func ExecutionOrder(events []Event) []string {
	var order []string
	for _, ev := range events {
		if ev.Kind == KindExecute {
			order = append(order, ev.Process)
		}
	}
	return order
}
