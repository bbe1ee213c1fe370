package sat

import (
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"gitlab.com/terezi/lifesat/cnf"
)

// Exec dispatches to an external solver process. The problem is written
// to a uniquely named temp file rather than a pipe, so large inputs
// cannot deadlock the child; the file is removed once the child exits.
//
// The child is invoked as "<path> --quiet <file>" and its combined output
// parsed for the conventional "s "/"v " lines. Nonzero exit codes are the
// norm for SAT solvers (10 for SAT, 20 for UNSAT) and are ignored as long
// as a verdict line is present.
type Exec struct {
	// Path is the solver binary name or path; resolved via $PATH when
	// not absolute.
	Path string
	// Ctx, when non-nil, bounds the child's lifetime.
	Ctx context.Context
}

// NewExec returns an external dispatcher for the given solver binary.
func NewExec(path string) *Exec {
	return &Exec{Path: path}
}

// Solve writes the DIMACS file, runs the solver and parses its verdict.
func (e *Exec) Solve(numVars int, clauses cnf.ClauseList, big []cnf.BigClause) Result {
	f, err := os.CreateTemp("", "lifesat-*.cnf")
	if err != nil {
		return Result{Status: Err, Msg: errors.Wrap(err, "could not create temp file").Error()}
	}
	name := f.Name()
	defer os.Remove(name)

	werr := cnf.WriteDIMACS(f, numVars, clauses, big)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return Result{Status: Err, Msg: errors.Wrapf(werr, "could not write %s", name).Error()}
	}

	ctx := e.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, e.Path, "--quiet", name)
	output, runErr := cmd.CombinedOutput()

	res := parseOutput(string(output))
	if res.Status == Err && runErr != nil {
		res.Msg = errors.Wrapf(runErr, "solver %s failed: %s", e.Path, res.Msg).Error()
	}
	return res
}
