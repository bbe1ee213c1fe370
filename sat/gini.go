package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"gitlab.com/terezi/lifesat/cnf"
)

// Gini solves in-process with the gini CDCL solver. It needs no external
// binary, which makes it the default backend for tests and small
// searches.
type Gini struct{}

// NewGini returns an in-process solver.
func NewGini() *Gini { return &Gini{} }

// Solve loads the clauses into a fresh gini instance and solves. An
// empty clause is false on its face, so it short-circuits to Unsat.
func (Gini) Solve(numVars int, clauses cnf.ClauseList, big []cnf.BigClause) Result {
	g := gini.NewV(numVars)
	for i := range clauses {
		lits := clauses[i].Lits()
		if len(lits) == 0 {
			return Result{Status: Unsat}
		}
		for _, lit := range lits {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(z.LitNull)
	}
	for _, c := range big {
		if len(c) == 0 {
			return Result{Status: Unsat}
		}
		for _, lit := range c {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(z.LitNull)
	}
	switch g.Solve() {
	case 1:
		model := make(Model, numVars)
		for v := 1; v <= numVars; v++ {
			model[v] = g.Value(z.Var(v).Pos())
		}
		return Result{Status: Sat, Model: model}
	case -1:
		return Result{Status: Unsat}
	default:
		return Result{Status: Err, Msg: "gini returned unknown"}
	}
}
