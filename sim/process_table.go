package sim

// ProcessTable is the authoritative set of live PCBs plus the run-wide
// counters. Counters only grow; they are never reset mid-run.
type ProcessTable struct {
	live  map[*PCB]struct{}
	order []*PCB // creation order, for deterministic iteration

	Switches             int // completed (non-idle) slices
	InstructionsExecuted int // instructions run across all slices
}

// NewProcessTable creates an empty table.
func NewProcessTable() *ProcessTable {
	return &ProcessTable{live: make(map[*PCB]struct{})}
}

// Add registers a new live PCB.
func (t *ProcessTable) Add(p *PCB) {
	if _, ok := t.live[p]; ok {
		return
	}
	t.live[p] = struct{}{}
	t.order = append(t.order, p)
}

// Remove drops a PCB from the live set and marks it terminated.
// The caller must already have removed it from whichever queue held it.
func (t *ProcessTable) Remove(p *PCB) {
	if _, ok := t.live[p]; !ok {
		return
	}
	delete(t.live, p)
	for i, q := range t.order {
		if q == p {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	p.State = StateTerminated
}

// Contains reports whether p is still live.
func (t *ProcessTable) Contains(p *PCB) bool {
	_, ok := t.live[p]
	return ok
}

// Len returns the number of live PCBs.
func (t *ProcessTable) Len() int {
	return len(t.live)
}

// IsEmpty reports whether every process has terminated.
func (t *ProcessTable) IsEmpty() bool {
	return len(t.live) == 0
}

// Live returns the live PCBs in creation order.
func (t *ProcessTable) Live() []*PCB {
	out := make([]*PCB, len(t.order))
	copy(out, t.order)
	return out
}

// recordSlice accounts for one completed slice.
func (t *ProcessTable) recordSlice(instructions int) {
	t.Switches++
	t.InstructionsExecuted += instructions
}
