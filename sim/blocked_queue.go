package sim

// BlockedQueue is a FIFO of PCBs waiting out a simulated I/O delay.
// Each entry carries its countdown in PCB.BlockedWait.
type BlockedQueue struct {
	queue []*PCB
}

// Block appends a PCB to the tail with the given wait and marks it blocked.
func (bq *BlockedQueue) Block(p *PCB, wait int) {
	if p == nil {
		panic("Block: pcb must not be nil")
	}
	p.State = StateBlocked
	p.BlockedWait = wait
	bq.queue = append(bq.queue, p)
}

// Age decrements the countdown of every blocked PCB except skip, never below 0.
// skip is the PCB blocked during the current slice, which starts aging on the next one.
func (bq *BlockedQueue) Age(skip *PCB) {
	for _, p := range bq.queue {
		if p == skip {
			continue
		}
		if p.BlockedWait > 0 {
			p.BlockedWait--
		}
	}
}

// PromoteHead moves the head to rq if its countdown has expired. The PC is
// advanced past the pending E/S instruction. Entries behind a still-waiting
// head are never promoted out of order.
func (bq *BlockedQueue) PromoteHead(rq *ReadyQueue) *PCB {
	if len(bq.queue) == 0 || bq.queue[0].BlockedWait > 0 {
		return nil
	}
	p := bq.queue[0]
	bq.queue[0] = nil
	bq.queue = bq.queue[1:]
	promote(p, rq)
	return p
}

// PromoteExpired moves every expired entry to rq, preserving their relative
// FIFO order, and returns them in promotion order.
func (bq *BlockedQueue) PromoteExpired(rq *ReadyQueue) []*PCB {
	var promoted []*PCB
	kept := bq.queue[:0]
	for _, p := range bq.queue {
		if p.BlockedWait > 0 {
			kept = append(kept, p)
			continue
		}
		promote(p, rq)
		promoted = append(promoted, p)
	}
	for i := len(kept); i < len(bq.queue); i++ {
		bq.queue[i] = nil
	}
	bq.queue = kept
	return promoted
}

func promote(p *PCB, rq *ReadyQueue) {
	p.BlockedWait = 0
	p.PC++
	rq.Enqueue(p)
}

// Peek returns the head PCB without removing it, or nil if empty.
func (bq *BlockedQueue) Peek() *PCB {
	if len(bq.queue) == 0 {
		return nil
	}
	return bq.queue[0]
}

// Len returns the number of blocked PCBs.
func (bq *BlockedQueue) Len() int {
	return len(bq.queue)
}

// Items returns the queue contents for iteration. Callers MUST NOT modify it.
func (bq *BlockedQueue) Items() []*PCB {
	return bq.queue
}

func (bq *BlockedQueue) String() string {
	return formatQueue(bq.queue)
}
