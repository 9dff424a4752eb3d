package sim

// Outcome classifies how a slice ended.
type Outcome string

const (
	OutcomeRequeued   Outcome = "requeued"   // quantum exhausted; process back at the ready tail
	OutcomeBlocked    Outcome = "blocked"    // process issued E/S
	OutcomeTerminated Outcome = "terminated" // process executed SAIDA
	OutcomeIdle       Outcome = "idle"       // ready queue was empty; only aging and promotion ran
)

// SliceResult describes one invocation of Scheduler.RunSlice.
type SliceResult struct {
	Index        int      // 1-based index among non-idle slices; 0 for idle slices
	Process      string   // process that ran; empty for idle slices
	Outcome      Outcome  // how the slice ended
	Instructions int      // instructions run, always <= quantum
	Promoted     []string // processes moved from blocked to ready at the end of the slice
}
