package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/window"
)

// TestRunScenarios executes the checked-in scenario file and compares every
// result line.
func TestRunScenarios(t *testing.T) {
	var out bytes.Buffer
	err := runScenarios(context.Background(), filepath.Join("testdata", "scenarios.yaml"), &out)
	require.NoError(t, err)

	want := `budget pair: indices 0 and 1
rainfall container: area 49
canal phrase: true
sales quota: length 2
quiet products: 8 windows
fresh keys: length 3
pattern scatter: starts [0 6]
playlist loop: cycle of length 3 starts at value 2
straight playlist: acyclic
middle track: middle 3
sorted log dedup: [1 2 3]
sparse buffer: [1 3 12 0 0]
third smallest: rank 3 value 3
feed merge: [1 2 3 4 5 6]
best streak: sum 6 over [3, 6]
rising trend: length 4: [2 3 7 18]
broken build: first bad 4
`
	assert.Equal(t, want, out.String())
}

// TestRunScenarios_UnknownOp verifies the run aborts with the scenario name
// attached when an op is not in the handler table.
func TestRunScenarios_UnknownOp(t *testing.T) {
	path := writeScenarios(t, `
- name: mystery
  op: levitate
  input: [1, 2]
`)

	var out bytes.Buffer
	err := runScenarios(context.Background(), path, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnknownOp)
	assert.Contains(t, err.Error(), `scenario "mystery"`)
}

// TestRunScenarios_AbortsOnFirstFailure verifies a precondition violation
// stops the run and later scenarios never execute.
func TestRunScenarios_AbortsOnFirstFailure(t *testing.T) {
	path := writeScenarios(t, `
- name: fine
  op: maxarea
  input: [1, 2, 1]

- name: negative quota
  op: minlen
  input: [2, -1, 3]
  target: 4

- name: never reached
  op: maxarea
  input: [5, 5]
`)

	var out bytes.Buffer
	err := runScenarios(context.Background(), path, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, window.ErrNegativeElement)
	assert.Contains(t, err.Error(), `scenario "negative quota"`)
	assert.Contains(t, out.String(), "fine: area 2")
	assert.NotContains(t, out.String(), "never reached")
}

// TestRunScenarios_Cancelled verifies an already-cancelled context stops the
// run before any scenario executes.
func TestRunScenarios_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runScenarios(ctx, filepath.Join("testdata", "scenarios.yaml"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

// TestRunScenarios_MissingFile verifies the os error is returned unwrapped
// enough to inspect.
func TestRunScenarios_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runScenarios(context.Background(), filepath.Join("testdata", "absent.yaml"), &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// writeScenarios drops YAML into a temp file and returns its path.
func writeScenarios(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}
