package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is the cause wrapped by MalformedInstructionError when a
	// line matches none of the recognized instruction forms.
	ErrUnknownOpcode = errors.New("unrecognized instruction")

	// ErrZeroQuantum is returned by Run when the quantum is 0: no slice can make
	// progress, so the table would never drain.
	ErrZeroQuantum = errors.New("quantum is 0; run cannot make progress")

	// ErrUnorderedDefinitions is returned when process definitions are not in
	// strictly ascending id order.
	ErrUnorderedDefinitions = errors.New("process definitions must be sorted by strictly ascending id")

	// ErrStalled is returned when live processes remain but neither queue holds any.
	ErrStalled = errors.New("live processes remain but no queue holds them")
)

// MalformedInstructionError reports a program line that cannot be decoded.
type MalformedInstructionError struct {
	Process string
	PC      int
	Text    string
	Err     error
}

func (e *MalformedInstructionError) Error() string {
	return fmt.Sprintf("process %s: malformed instruction %q at pc=%d: %v", e.Process, e.Text, e.PC, e.Err)
}

func (e *MalformedInstructionError) Unwrap() error {
	return e.Err
}

// ProgramCounterOverrunError reports a program that ran past its last
// instruction without executing SAIDA.
type ProgramCounterOverrunError struct {
	Process string
	PC      int
	Length  int
}

func (e *ProgramCounterOverrunError) Error() string {
	return fmt.Sprintf("process %s: program counter %d overran program of length %d without SAIDA", e.Process, e.PC, e.Length)
}
