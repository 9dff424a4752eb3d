package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rrsched/rrsched/sim"
)

// exitToken is the instruction every program must contain.
const exitToken = "SAIDA"

// Workload is the loaded input of one run: a quantum plus the program
// definitions. Definitions keep their source order until Definitions() sorts them.
type Workload struct {
	Quantum   int          `yaml:"quantum"`
	Processes []ProcessDef `yaml:"processes"`
}

// ProcessDef is a program definition as written in the source, before decoding.
type ProcessDef struct {
	ID      int      `yaml:"id"`
	Name    string   `yaml:"name"`
	Program []string `yaml:"program"`
}

// LoadBundle reads and parses a YAML workload bundle.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadBundle(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload bundle: %w", err)
	}
	var w Workload
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&w); err != nil {
		return nil, fmt.Errorf("parsing workload bundle: %w", err)
	}
	return &w, nil
}

// Load reads a workload from either a program directory or a YAML bundle file.
func Load(path string) (*Workload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadBundle(path)
}

// Validate checks that the workload can be run to completion.
func (w *Workload) Validate() error {
	if w.Quantum < 1 {
		return fmt.Errorf("quantum must be positive, got %d", w.Quantum)
	}
	if len(w.Processes) == 0 {
		return fmt.Errorf("at least one process required")
	}
	seen := make(map[int]bool, len(w.Processes))
	for i := range w.Processes {
		if err := validateProcess(&w.Processes[i], i); err != nil {
			return err
		}
		id := w.Processes[i].ID
		if seen[id] {
			return fmt.Errorf("process[%d]: duplicate id %d", i, id)
		}
		seen[id] = true
	}
	return nil
}

func validateProcess(p *ProcessDef, idx int) error {
	prefix := fmt.Sprintf("process[%d]", idx)
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%s: name must not be empty", prefix)
	}
	if len(p.Program) == 0 {
		return fmt.Errorf("%s (%s): program must not be empty", prefix, p.Name)
	}
	for _, line := range p.Program {
		if strings.TrimSpace(line) == exitToken {
			return nil
		}
	}
	return fmt.Errorf("%s (%s): program has no %s instruction", prefix, p.Name, exitToken)
}

// Definitions sorts the processes by ascending id and decodes their programs.
// The receiver is not modified.
func (w *Workload) Definitions() ([]sim.ProcessDef, error) {
	procs := make([]ProcessDef, len(w.Processes))
	copy(procs, w.Processes)
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].ID < procs[j].ID
	})
	defs := make([]sim.ProcessDef, 0, len(procs))
	for _, p := range procs {
		program, err := sim.ParseProgram(p.Name, p.Program)
		if err != nil {
			return nil, err
		}
		defs = append(defs, sim.ProcessDef{ID: p.ID, Name: p.Name, Program: program})
	}
	return defs, nil
}

// WriteYAML encodes the workload as a bundle readable by LoadBundle,
// with processes sorted by id.
func (w *Workload) WriteYAML(out io.Writer) error {
	sorted := Workload{Quantum: w.Quantum, Processes: make([]ProcessDef, len(w.Processes))}
	copy(sorted.Processes, w.Processes)
	sort.SliceStable(sorted.Processes, func(i, j int) bool {
		return sorted.Processes[i].ID < sorted.Processes[j].ID
	})
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(&sorted); err != nil {
		return fmt.Errorf("encoding workload bundle: %w", err)
	}
	return enc.Close()
}
