// Implements the ReadyQueue, which holds all PCBs eligible to run.
// PCBs are enqueued on load, on quantum exhaustion, and on promotion from the BlockedQueue.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO of runnable PCBs. Every PCB in StateReady is present
// exactly once, in the order it became ready.
type ReadyQueue struct {
	queue []*PCB
}

// Enqueue appends a PCB to the tail and marks it ready.
func (rq *ReadyQueue) Enqueue(p *PCB) {
	if p == nil {
		panic("Enqueue: pcb must not be nil")
	}
	p.State = StateReady
	rq.queue = append(rq.queue, p)
}

// Dequeue removes the head PCB and marks it running.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *PCB {
	if len(rq.queue) == 0 {
		return nil
	}
	p := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	p.State = StateRunning
	return p
}

// Peek returns the head PCB without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *PCB {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of PCBs in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage: callers MUST NOT
// append to or reslice it.
func (rq *ReadyQueue) Items() []*PCB {
	return rq.queue
}

func (rq *ReadyQueue) String() string {
	return formatQueue(rq.queue)
}

func formatQueue(pcbs []*PCB) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range pcbs {
		sb.WriteString(fmt.Sprintf("%s(%s)", p.Name, p.State))
		if i < len(pcbs)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
