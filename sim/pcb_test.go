package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessState_Constants_HaveExpectedStringValues(t *testing.T) {
	assert.Equal(t, ProcessState("ready"), StateReady)
	assert.Equal(t, ProcessState("running"), StateRunning)
	assert.Equal(t, ProcessState("blocked"), StateBlocked)
	assert.Equal(t, ProcessState("terminated"), StateTerminated)
}

func TestNewPCB_StartsReadyWithZeroedRegisters(t *testing.T) {
	// GIVEN a definition
	def := ProcessDef{ID: 7, Name: "TESTE-7", Program: mustProgram(t, "TESTE-7", "X=1", "SAIDA")}

	// WHEN a PCB is created from it
	p := NewPCB(def)

	// THEN identity comes from the definition and execution state is zeroed
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, "TESTE-7", p.Name)
	assert.Equal(t, StateReady, p.State)
	assert.Zero(t, p.PC)
	assert.Zero(t, p.X)
	assert.Zero(t, p.Y)
	assert.Zero(t, p.BlockedWait)
}

func TestPCB_Fetch_PastEnd_ReturnsOverrun(t *testing.T) {
	p := NewPCB(ProcessDef{Name: "P", Program: mustProgram(t, "P", "COM")})
	p.PC = 1

	_, err := p.Fetch()

	var overrun *ProgramCounterOverrunError
	if assert.True(t, errors.As(err, &overrun)) {
		assert.Equal(t, "P", overrun.Process)
		assert.Equal(t, 1, overrun.PC)
		assert.Equal(t, 1, overrun.Length)
	}
}

func TestPCB_String_IncludesState(t *testing.T) {
	p := PCB{Name: "A", State: StateBlocked}
	assert.Contains(t, p.String(), "blocked")
}
