// Package testutil provides shared test infrastructure for the rrsched simulator.
// It consolidates golden-trace comparison and program-directory fixtures used
// across the sim/ sub-packages and cmd/ tests.
package testutil

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// ReadGoldenLines returns the non-empty lines of a golden trace file.
func ReadGoldenLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open golden file %s: %v", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("read golden file %s: %v", path, err)
	}
	return lines
}

// AssertGoldenLines compares got line-by-line against a golden trace file and
// reports the first divergence.
func AssertGoldenLines(t *testing.T, path string, got []string) {
	t.Helper()
	want := ReadGoldenLines(t, path)
	n := len(want)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if got[i] != want[i] {
			t.Fatalf("%s line %d:\n got: %q\nwant: %q", filepath.Base(path), i+1, got[i], want[i])
		}
	}
	if len(got) != len(want) {
		t.Fatalf("%s: got %d lines, want %d", filepath.Base(path), len(got), len(want))
	}
}

// Program is one program file of a fixture directory.
type Program struct {
	Name         string
	Instructions []string
}

// WriteProgramDir creates a program directory in a fresh temp dir: one
// "<id>.txt" per entry plus quantum.txt. Returns the directory path.
func WriteProgramDir(t *testing.T, quantum int, programs map[int]Program) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("quantum.txt", fmt.Sprintf("%d\n", quantum))

	ids := make([]int, 0, len(programs))
	for id := range programs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		p := programs[id]
		lines := append([]string{p.Name}, p.Instructions...)
		write(fmt.Sprintf("%d.txt", id), strings.Join(lines, "\n")+"\n")
	}
	return dir
}

// MixedWorkload is the three-process fixture behind the golden traces in
// testdata/: one process that blocks early, one pure-compute process and one
// that blocks on its first instruction. Its golden quantum is 2.
func MixedWorkload() map[int]Program {
	return map[int]Program{
		1: {Name: "A", Instructions: []string{"X=3", "E/S", "COM", "Y=4", "SAIDA"}},
		2: {Name: "B", Instructions: []string{"COM", "COM", "COM", "SAIDA"}},
		3: {Name: "C", Instructions: []string{"E/S", "SAIDA"}},
	}
}
