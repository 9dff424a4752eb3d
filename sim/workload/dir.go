package workload

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// QuantumFile is the name of the file holding the quantum in a program directory.
const QuantumFile = "quantum.txt"

// LoadDir reads a program directory. Every "<id>.txt" file is one program:
// its first line is the process name and each following non-blank line is an
// instruction. QuantumFile holds the quantum on its first line. Any other
// file is skipped with a warning.
func LoadDir(dir string) (*Workload, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading program directory: %w", err)
	}
	w := &Workload{}
	foundQuantum := false
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		path := filepath.Join(dir, name)
		if name == QuantumFile {
			q, err := readQuantum(path)
			if err != nil {
				return nil, err
			}
			w.Quantum = q
			foundQuantum = true
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(name, ".txt"))
		if err != nil || !strings.HasSuffix(name, ".txt") {
			logrus.Warnf("skipping %s: not a <id>.txt program file", path)
			continue
		}
		p, err := readProgram(path, id)
		if err != nil {
			return nil, err
		}
		w.Processes = append(w.Processes, p)
	}
	if !foundQuantum {
		return nil, fmt.Errorf("program directory %s has no %s", dir, QuantumFile)
	}
	logrus.Debugf("Loaded %d programs from %s (quantum=%d)", len(w.Processes), dir, w.Quantum)
	return w, nil
}

func readQuantum(path string) (int, error) {
	lines, err := readLines(path)
	if err != nil {
		return 0, err
	}
	if len(lines) == 0 {
		return 0, fmt.Errorf("%s is empty", path)
	}
	q, err := strconv.Atoi(lines[0])
	if err != nil {
		return 0, fmt.Errorf("parsing quantum in %s: %w", path, err)
	}
	return q, nil
}

func readProgram(path string, id int) (ProcessDef, error) {
	lines, err := readLines(path)
	if err != nil {
		return ProcessDef{}, err
	}
	if len(lines) == 0 {
		return ProcessDef{}, fmt.Errorf("%s is empty", path)
	}
	return ProcessDef{ID: id, Name: lines[0], Program: lines[1:]}, nil
}

// readLines returns the trimmed non-blank lines of a file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
