package sat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/terezi/lifesat/cnf"
)

func TestParseOutputSat(t *testing.T) {
	out := "c comment\ns SATISFIABLE\nv 1 -2 3\nv -4 0\n"
	res := parseOutput(out)
	require.Equal(t, Sat, res.Status)
	assert.Equal(t, Model{1: true, 2: false, 3: true, 4: false}, res.Model)
}

func TestParseOutputUnsat(t *testing.T) {
	res := parseOutput("s UNSATISFIABLE\n")
	assert.Equal(t, Unsat, res.Status)
	assert.Empty(t, res.Model)
}

func TestParseOutputGarbage(t *testing.T) {
	res := parseOutput("segmentation fault\n")
	require.Equal(t, Err, res.Status)
	assert.Contains(t, res.Msg, "could not parse solver output")
	assert.Contains(t, res.Msg, "segmentation fault")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "SAT", Sat.String())
	assert.Equal(t, "UNSAT", Unsat.String())
	assert.Equal(t, "ERROR", Err.String())
}

func TestGiniSat(t *testing.T) {
	clauses := cnf.ClauseList{{1}, {-1, 2}}
	res := NewGini().Solve(2, clauses, nil)
	require.Equal(t, Sat, res.Status)
	assert.True(t, res.Model[1])
	assert.True(t, res.Model[2])
}

func TestGiniUnsat(t *testing.T) {
	clauses := cnf.ClauseList{{1}, {-1}}
	res := NewGini().Solve(1, clauses, nil)
	assert.Equal(t, Unsat, res.Status)
}

func TestGiniBigClause(t *testing.T) {
	big := []cnf.BigClause{{1, 2, 3}, {-1}, {-2}}
	res := NewGini().Solve(3, nil, big)
	require.Equal(t, Sat, res.Status)
	assert.False(t, res.Model[1])
	assert.False(t, res.Model[2])
	assert.True(t, res.Model[3])
}

func TestGiniEmptyClauseIsUnsat(t *testing.T) {
	res := NewGini().Solve(1, cnf.ClauseList{{}}, nil)
	assert.Equal(t, Unsat, res.Status)
}

// fakeSolver writes a shell script that ignores its input and prints
// canned output, standing in for a real solver binary.
func fakeSolver(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solver")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestExecSat(t *testing.T) {
	path := fakeSolver(t, "echo 's SATISFIABLE'\necho 'v 1 -2 0'\nexit 10\n")
	res := NewExec(path).Solve(2, cnf.ClauseList{{1, -2}}, nil)
	require.Equal(t, Sat, res.Status, res.Msg)
	assert.Equal(t, Model{1: true, 2: false}, res.Model)
}

func TestExecUnsat(t *testing.T) {
	path := fakeSolver(t, "echo 's UNSATISFIABLE'\nexit 20\n")
	res := NewExec(path).Solve(1, cnf.ClauseList{{1}, {-1}}, nil)
	assert.Equal(t, Unsat, res.Status)
}

func TestExecReceivesDIMACSFile(t *testing.T) {
	// The fake solver fails unless its first argument is --quiet and the
	// second is a readable DIMACS file.
	path := fakeSolver(t, `case "$1" in --quiet) ;; *) exit 1 ;; esac
head -1 "$2" | grep -q '^p cnf ' || exit 1
echo 's UNSATISFIABLE'
`)
	res := NewExec(path).Solve(2, cnf.ClauseList{{1, 2}}, nil)
	assert.Equal(t, Unsat, res.Status, res.Msg)
}

func TestExecMissingBinary(t *testing.T) {
	res := NewExec(filepath.Join(t.TempDir(), "no-such-solver")).Solve(1, nil, nil)
	require.Equal(t, Err, res.Status)
	assert.Contains(t, res.Msg, "failed")
}
