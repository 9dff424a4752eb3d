package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rrsched/rrsched/sim/trace"
)

// Scheduler drives the round-robin simulation. It owns the process table and
// both queues; nothing else mutates them.
type Scheduler struct {
	cfg  Config
	sink trace.Sink

	Table   *ProcessTable
	Ready   *ReadyQueue
	Blocked *BlockedQueue

	processes int // initial process count, denominator of the switch average
	slices    int // non-idle slices run so far
	idle      int // idle slices run so far
}

// NewScheduler validates cfg, builds one PCB per definition, and places them
// in the ready queue in definition order. defs must be sorted by strictly
// ascending id. A load event is emitted per process. A nil sink discards events.
func NewScheduler(cfg Config, defs []ProcessDef, sink trace.Sink) (*Scheduler, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for i := 1; i < len(defs); i++ {
		if defs[i].ID <= defs[i-1].ID {
			return nil, fmt.Errorf("%w: id %d follows id %d", ErrUnorderedDefinitions, defs[i].ID, defs[i-1].ID)
		}
	}
	if sink == nil {
		sink = trace.Discard
	}
	s := &Scheduler{
		cfg:       cfg,
		sink:      sink,
		Table:     NewProcessTable(),
		Ready:     &ReadyQueue{},
		Blocked:   &BlockedQueue{},
		processes: len(defs),
	}
	for _, def := range defs {
		p := NewPCB(def)
		s.Table.Add(p)
		s.Ready.Enqueue(p)
	}
	for _, p := range s.Ready.Items() {
		s.sink.Emit(trace.Event{Kind: trace.KindLoad, Process: p.Name})
	}
	logrus.Debugf("Loaded %d processes, quantum=%d, ready=%v", len(defs), cfg.Quantum, s.Ready)
	return s, nil
}

// Config returns the effective configuration, defaults applied.
func (s *Scheduler) Config() Config {
	return s.cfg
}

// Slices returns the number of non-idle slices run so far.
func (s *Scheduler) Slices() int {
	return s.slices
}

// IdleSlices returns the number of slices that found the ready queue empty.
func (s *Scheduler) IdleSlices() int {
	return s.idle
}

// RunSlice runs the ready-queue head for up to one quantum, then ages the
// blocked queue and checks it for promotion. With an empty ready queue only
// the aging and promotion steps run.
//
// Instruction-level faults abort the slice with the PCB left running; the run
// is not resumable afterwards.
func (s *Scheduler) RunSlice() (SliceResult, error) {
	p := s.Ready.Dequeue()
	if p == nil {
		s.idle++
		s.Blocked.Age(nil)
		res := SliceResult{Outcome: OutcomeIdle, Promoted: s.promote()}
		logrus.Debugf("[slice idle] blocked=%v promoted=%v", s.Blocked, res.Promoted)
		return res, nil
	}

	s.slices++
	s.sink.Emit(trace.Event{Kind: trace.KindExecute, Slice: s.slices, Process: p.Name})

	outcome, remaining, err := s.interpret(p)
	if err != nil {
		return SliceResult{Index: s.slices, Process: p.Name}, err
	}
	ran := s.cfg.Quantum - remaining

	var justBlocked *PCB
	switch outcome {
	case OutcomeTerminated:
		s.sink.Emit(trace.Event{Kind: trace.KindTerminate, Slice: s.slices, Process: p.Name, X: p.X, Y: p.Y})
	case OutcomeBlocked:
		justBlocked = p
		s.sink.Emit(trace.Event{Kind: trace.KindInterrupt, Slice: s.slices, Process: p.Name, Count: ran})
	default:
		s.sink.Emit(trace.Event{Kind: trace.KindInterrupt, Slice: s.slices, Process: p.Name, Count: ran})
		s.Ready.Enqueue(p)
	}

	s.Blocked.Age(justBlocked)
	s.Table.recordSlice(ran)

	res := SliceResult{
		Index:        s.slices,
		Process:      p.Name,
		Outcome:      outcome,
		Instructions: ran,
		Promoted:     s.promote(),
	}
	logrus.Debugf("[slice %04d] %s %s after %d instruction(s); ready=%v blocked=%v",
		s.slices, p.Name, outcome, ran, s.Ready, s.Blocked)
	return res, nil
}

// interpret executes instructions of p until the quantum runs out or p blocks
// or exits. It returns the outcome and the unused quantum.
func (s *Scheduler) interpret(p *PCB) (Outcome, int, error) {
	remaining := s.cfg.Quantum
	for remaining > 0 {
		remaining--
		in, err := p.Fetch()
		if err != nil {
			return "", remaining, err
		}
		switch in.Op {
		case OpSetX:
			p.X = in.Value
		case OpSetY:
			p.Y = in.Value
		case OpCompute:
		case OpIO:
			s.sink.Emit(trace.Event{Kind: trace.KindIOStart, Slice: s.slices, Process: p.Name})
			s.Blocked.Block(p, s.cfg.IOWait)
			logrus.Debugf("%s blocked at pc=%d for %d slices", p.Name, p.PC, s.cfg.IOWait)
			return OutcomeBlocked, remaining, nil
		case OpExit:
			s.Table.Remove(p)
			logrus.Debugf("%s terminated at pc=%d", p.Name, p.PC)
			return OutcomeTerminated, remaining, nil
		default:
			return "", remaining, &MalformedInstructionError{Process: p.Name, PC: p.PC, Text: in.String(), Err: ErrUnknownOpcode}
		}
		p.PC++
		if p.PC >= len(p.Program) {
			return "", remaining, &ProgramCounterOverrunError{Process: p.Name, PC: p.PC, Length: len(p.Program)}
		}
	}
	return OutcomeRequeued, remaining, nil
}

// promote applies the configured promotion policy and returns the names of
// promoted processes.
func (s *Scheduler) promote() []string {
	var promoted []*PCB
	if s.cfg.Promotion == PromoteAll {
		promoted = s.Blocked.PromoteExpired(s.Ready)
	} else if p := s.Blocked.PromoteHead(s.Ready); p != nil {
		promoted = []*PCB{p}
	}
	if len(promoted) == 0 {
		return nil
	}
	names := make([]string, len(promoted))
	for i, p := range promoted {
		names[i] = p.Name
		logrus.Debugf("%s promoted to ready at pc=%d", p.Name, p.PC)
	}
	return names
}

// Run calls RunSlice until every process has terminated, then emits the
// summary event. Instruction-level errors abort the run; events already
// emitted stay with the sink.
func (s *Scheduler) Run() (Summary, error) {
	if s.cfg.Quantum == 0 && !s.Table.IsEmpty() {
		return Summary{}, ErrZeroQuantum
	}
	for !s.Table.IsEmpty() {
		if s.Ready.Len() == 0 && s.Blocked.Len() == 0 {
			return Summary{}, ErrStalled
		}
		if _, err := s.RunSlice(); err != nil {
			return Summary{}, err
		}
	}
	sum := s.Summary()
	s.sink.Emit(trace.Event{
		Kind: trace.KindSummary,
		Summary: &trace.SummaryRecord{
			AvgSwitches:     sum.AvgSwitches,
			AvgInstructions: sum.AvgInstructions,
			Quantum:         sum.Quantum,
			Truncated:       sum.Averages == AveragesInteger,
		},
	})
	logrus.Infof("Run finished: %d slices (%d idle), %d instructions", s.slices, s.idle, s.Table.InstructionsExecuted)
	return sum, nil
}
