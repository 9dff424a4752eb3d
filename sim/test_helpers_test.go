package sim

import (
	"sort"
	"testing"

	"github.com/rrsched/rrsched/internal/testutil"
	"github.com/rrsched/rrsched/sim/trace"
)

// mustProgram parses source lines or fails the test.
func mustProgram(t *testing.T, name string, lines ...string) []Instruction {
	t.Helper()
	program, err := ParseProgram(name, lines)
	if err != nil {
		t.Fatalf("ParseProgram(%s): %v", name, err)
	}
	return program
}

// defsFrom converts fixture programs to definitions sorted by id.
func defsFrom(t *testing.T, programs map[int]testutil.Program) []ProcessDef {
	t.Helper()
	ids := make([]int, 0, len(programs))
	for id := range programs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	defs := make([]ProcessDef, 0, len(ids))
	for _, id := range ids {
		p := programs[id]
		defs = append(defs, ProcessDef{ID: id, Name: p.Name, Program: mustProgram(t, p.Name, p.Instructions...)})
	}
	return defs
}

// newTestScheduler builds a scheduler recording into a fresh Recorder.
func newTestScheduler(t *testing.T, cfg Config, defs []ProcessDef) (*Scheduler, *trace.Recorder) {
	t.Helper()
	rec := trace.NewRecorder()
	s, err := NewScheduler(cfg, defs, rec)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	return s, rec
}
