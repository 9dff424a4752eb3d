// Computes the end-of-run statistics reported after the last process terminates.

package sim

import "fmt"

// Summary aggregates the statistics of a finished run.
type Summary struct {
	Processes    int // processes loaded at start
	Switches     int // non-idle slices
	Instructions int // instructions executed across all slices
	IdleSlices   int // slices that found the ready queue empty

	AvgSwitches     float64 // Switches / Processes
	AvgInstructions float64 // Instructions / Switches
	Quantum         int
	Averages        AverageMode
}

// Summary computes the statistics for the run so far.
func (s *Scheduler) Summary() Summary {
	sum := Summary{
		Processes:    s.processes,
		Switches:     s.Table.Switches,
		Instructions: s.Table.InstructionsExecuted,
		IdleSlices:   s.idle,
		Quantum:      s.cfg.Quantum,
		Averages:     s.cfg.Averages,
	}
	sum.AvgSwitches = average(sum.Switches, sum.Processes, s.cfg.Averages)
	sum.AvgInstructions = average(sum.Instructions, sum.Switches, s.cfg.Averages)
	return sum
}

// average divides num by den, truncating in integer mode. A zero denominator yields 0.
func average(num, den int, mode AverageMode) float64 {
	if den == 0 {
		return 0
	}
	if mode == AveragesReal {
		return float64(num) / float64(den)
	}
	return float64(num / den)
}

func (s Summary) String() string {
	return fmt.Sprintf("Summary: (Processes: %d, Switches: %d, Instructions: %d, AvgSwitches: %g, AvgInstructions: %g, Quantum: %d)",
		s.Processes, s.Switches, s.Instructions, s.AvgSwitches, s.AvgInstructions, s.Quantum)
}
