package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode identifies one of the instruction forms understood by the interpreter.
type Opcode int

const (
	OpSetX    Opcode = iota // X=<int>
	OpSetY                  // Y=<int>
	OpCompute               // COM
	OpIO                    // E/S
	OpExit                  // SAIDA
)

// Source tokens for the instruction language.
const (
	tokenCompute = "COM"
	tokenIO      = "E/S"
	tokenExit    = "SAIDA"
	prefixSetX   = "X="
	prefixSetY   = "Y="
)

func (op Opcode) String() string {
	switch op {
	case OpSetX:
		return "set-x"
	case OpSetY:
		return "set-y"
	case OpCompute:
		return "compute"
	case OpIO:
		return "io"
	case OpExit:
		return "exit"
	default:
		return fmt.Sprintf("opcode(%d)", int(op))
	}
}

// Instruction is a decoded program step. Value is only meaningful for
// OpSetX and OpSetY.
type Instruction struct {
	Op    Opcode
	Value int
}

// String renders the instruction back to its source token.
func (in Instruction) String() string {
	switch in.Op {
	case OpSetX:
		return prefixSetX + strconv.Itoa(in.Value)
	case OpSetY:
		return prefixSetY + strconv.Itoa(in.Value)
	case OpCompute:
		return tokenCompute
	case OpIO:
		return tokenIO
	case OpExit:
		return tokenExit
	default:
		return in.Op.String()
	}
}

// ParseInstruction decodes a single source line.
// Surrounding whitespace is ignored; tokens are otherwise matched exactly.
func ParseInstruction(text string) (Instruction, error) {
	s := strings.TrimSpace(text)
	switch {
	case s == tokenCompute:
		return Instruction{Op: OpCompute}, nil
	case s == tokenIO:
		return Instruction{Op: OpIO}, nil
	case s == tokenExit:
		return Instruction{Op: OpExit}, nil
	case strings.HasPrefix(s, prefixSetX):
		v, err := strconv.Atoi(s[len(prefixSetX):])
		if err != nil {
			return Instruction{}, fmt.Errorf("register X literal: %w", err)
		}
		return Instruction{Op: OpSetX, Value: v}, nil
	case strings.HasPrefix(s, prefixSetY):
		v, err := strconv.Atoi(s[len(prefixSetY):])
		if err != nil {
			return Instruction{}, fmt.Errorf("register Y literal: %w", err)
		}
		return Instruction{Op: OpSetY, Value: v}, nil
	default:
		return Instruction{}, ErrUnknownOpcode
	}
}

// ParseProgram decodes every line of a program. The first failure is
// reported as a *MalformedInstructionError naming the process and the
// program counter of the offending line.
func ParseProgram(process string, lines []string) ([]Instruction, error) {
	program := make([]Instruction, 0, len(lines))
	for pc, line := range lines {
		in, err := ParseInstruction(line)
		if err != nil {
			return nil, &MalformedInstructionError{Process: process, PC: pc, Text: line, Err: err}
		}
		program = append(program, in)
	}
	return program, nil
}

// HasExit reports whether the program contains at least one SAIDA.
func HasExit(program []Instruction) bool {
	for _, in := range program {
		if in.Op == OpExit {
			return true
		}
	}
	return false
}
