package workload

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrsched/rrsched/internal/testutil"
)

func TestLoadDir_MixedFixture(t *testing.T) {
	// GIVEN the mixed fixture written as a program directory
	dir := testutil.WriteProgramDir(t, 2, testutil.MixedWorkload())

	// WHEN loaded
	w, err := LoadDir(dir)
	require.NoError(t, err)

	// THEN the quantum and every program are read
	assert.Equal(t, 2, w.Quantum)
	require.Len(t, w.Processes, 3)
	require.NoError(t, w.Validate())

	defs, err := w.Definitions()
	require.NoError(t, err)
	names := []string{defs[0].Name, defs[1].Name, defs[2].Name}
	assert.Equal(t, []string{"A", "B", "C"}, names)
	assert.Len(t, defs[0].Program, 5)
}

func TestLoadDir_OrdersByNumericIDNotFileName(t *testing.T) {
	dir := testutil.WriteProgramDir(t, 1, map[int]testutil.Program{
		2:  {Name: "two", Instructions: []string{"SAIDA"}},
		10: {Name: "ten", Instructions: []string{"SAIDA"}},
	})

	w, err := LoadDir(dir)
	require.NoError(t, err)
	defs, err := w.Definitions()
	require.NoError(t, err)

	assert.Equal(t, "two", defs[0].Name)
	assert.Equal(t, 10, defs[1].ID)
}

func TestLoadDir_IgnoresBlankLinesAndTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, QuantumFile, "\n 3 \n")
	writeFile(t, dir, "1.txt", "  Editor \n\nX=2\r\n  \nSAIDA\n")

	w, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, w.Quantum)
	assert.Equal(t, "Editor", w.Processes[0].Name)
	assert.Equal(t, []string{"X=2", "SAIDA"}, w.Processes[0].Program)
}

func TestLoadDir_SkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, QuantumFile, "2\n")
	writeFile(t, dir, "1.txt", "A\nSAIDA\n")
	writeFile(t, dir, "README.md", "notes\n")
	writeFile(t, dir, "draft.txt", "B\nSAIDA\n")

	w, err := LoadDir(dir)
	require.NoError(t, err)

	require.Len(t, w.Processes, 1)
	assert.Equal(t, "A", w.Processes[0].Name)
}

func TestLoadDir_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
	t.Run("missing quantum file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "1.txt", "A\nSAIDA\n")
		_, err := LoadDir(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), QuantumFile)
	})
	t.Run("non-numeric quantum", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, QuantumFile, "three\n")
		_, err := LoadDir(dir)
		assert.Error(t, err)
	})
	t.Run("empty program file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, QuantumFile, "1\n")
		writeFile(t, dir, "1.txt", "\n\n")
		_, err := LoadDir(dir)
		assert.Error(t, err)
	})
}
