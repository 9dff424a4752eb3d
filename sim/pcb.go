// Defines the PCB struct that models one simulated process.
// Tracks the decoded program, program counter, registers, and blocked-wait countdown.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a PCB.
type ProcessState string

const (
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateBlocked    ProcessState = "blocked"
	StateTerminated ProcessState = "terminated"
)

// ProcessDef is one loaded program definition: a stable id used for initial
// ordering, a display name, and the decoded instruction sequence.
type ProcessDef struct {
	ID      int
	Name    string
	Program []Instruction
}

// PCB is the process control block of one simulated process.
// Only the Scheduler and the two queues mutate it.
type PCB struct {
	ID      int           // Stable identifier from the program definition
	Name    string        // Display name, immutable
	Program []Instruction // Decoded program, immutable

	PC    int          // Index of the next instruction to execute
	X, Y  int          // Registers
	State ProcessState // ready, running, blocked, terminated

	BlockedWait int // Slices left before promotion; meaningful only while blocked
}

// NewPCB creates a ready PCB from a definition with zeroed registers.
func NewPCB(def ProcessDef) *PCB {
	return &PCB{
		ID:      def.ID,
		Name:    def.Name,
		Program: def.Program,
		State:   StateReady,
	}
}

// Fetch returns the instruction at PC, or a *ProgramCounterOverrunError when
// PC has run past the end of the program.
func (p *PCB) Fetch() (Instruction, error) {
	if p.PC < 0 || p.PC >= len(p.Program) {
		return Instruction{}, &ProgramCounterOverrunError{Process: p.Name, PC: p.PC, Length: len(p.Program)}
	}
	return p.Program[p.PC], nil
}

// This method returns a human-readable string representation of a PCB.
func (p PCB) String() string {
	return fmt.Sprintf("PCB: (ID: %d, Name: %s, State: %s, PC: %d, X: %d, Y: %d)", p.ID, p.Name, p.State, p.PC, p.X, p.Y)
}
