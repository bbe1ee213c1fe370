// Package sat dispatches CNF problems to a SAT solver and parses the
// verdict. Two backends are provided: Exec runs an external solver binary
// on a DIMACS temp file, Gini solves in-process. Both surface SAT, UNSAT
// or ERROR uniformly through a Result and never panic on solver trouble.
package sat

import (
	"bufio"
	"strconv"
	"strings"

	"gitlab.com/terezi/lifesat/cnf"
)

// Status is the verdict of one solver run.
type Status byte

const (
	// Err means the solver could not produce a verdict.
	Err = Status(iota)
	// Sat means a satisfying assignment was found.
	Sat
	// Unsat means the problem is unsatisfiable.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Err:
		return "ERROR"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// A Model maps DIMACS variables to their binding. Variables absent from
// the model read as false.
type Model map[int]bool

// A Result is the outcome of one solver run. Model is populated when
// Status is Sat; Msg carries the diagnostic when Status is Err.
type Result struct {
	Status Status
	Model  Model
	Msg    string
}

// A Solver solves a CNF problem given as fixed-width transition clauses
// plus arbitrary-width extra clauses, all in DIMACS literal numbering.
type Solver interface {
	Solve(numVars int, clauses cnf.ClauseList, big []cnf.BigClause) Result
}

// parseOutput scans solver output in the conventional format: an
// "s SATISFIABLE" or "s UNSATISFIABLE" verdict line and, for SAT, one or
// more "v " lines of signed literals terminated by 0.
func parseOutput(output string) Result {
	res := Result{Status: Err, Model: Model{}}
	sc := bufio.NewScanner(strings.NewReader(output))
	sc.Buffer(make([]byte, 1024*1024), 64*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "s "):
			if strings.HasPrefix(line, "s UNSATISFIABLE") {
				res.Status = Unsat
			} else if strings.HasPrefix(line, "s SATISFIABLE") {
				res.Status = Sat
			}
		case strings.HasPrefix(line, "v "):
			for _, field := range strings.Fields(line[2:]) {
				lit, err := strconv.Atoi(field)
				if err != nil || lit == 0 {
					continue
				}
				if lit > 0 {
					res.Model[lit] = true
				} else {
					res.Model[-lit] = false
				}
			}
		}
	}
	if res.Status == Err {
		msg := output
		if len(msg) > 200 {
			msg = msg[:200]
		}
		res.Msg = "could not parse solver output. Got: " + msg
	}
	return res
}
