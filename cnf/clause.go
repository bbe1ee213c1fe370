// Package cnf holds the clause types shared by the encoder: fixed-width
// transition clauses, a builder with tautology detection, and DIMACS
// serialization.
//
// Variable ids follow one convention everywhere: 0 means known-dead,
// 1 means known-alive, and ids >= 2 are distinct Boolean variables. A
// DIMACS literal for id k is the signed value k-1; the constants 0 and 1
// are resolved away during clause emission and never reach a solver.
package cnf

import (
	"fmt"
	"sort"
)

// MaxClauseLen is the widest clause the transition encoding can produce:
// nine literals, one per neighborhood or output cell left unknown.
const MaxClauseLen = 9

// A Clause is a fixed-width disjunction of at most MaxClauseLen nonzero
// literals. The literals occupy a sorted prefix; unused slots are zero.
type Clause [MaxClauseLen]int32

// Lits returns the literal prefix of c.
func (c *Clause) Lits() []int32 {
	n := 0
	for n < MaxClauseLen && c[n] != 0 {
		n++
	}
	return c[:n]
}

// A BigClause is a disjunction of arbitrarily many literals, used for
// high-level constraints such as "some cell in this generation is alive".
type BigClause []int32

// A ClauseList is a collection of fixed-width clauses.
type ClauseList []Clause

// Dedup sorts cl and removes duplicate clauses in place, returning the
// shortened list.
func (cl ClauseList) Dedup() ClauseList {
	sort.Slice(cl, func(i, j int) bool {
		for k := 0; k < MaxClauseLen; k++ {
			if cl[i][k] != cl[j][k] {
				return cl[i][k] < cl[j][k]
			}
		}
		return false
	})
	out := cl[:0]
	for i, c := range cl {
		if i == 0 || c != cl[i-1] {
			out = append(out, c)
		}
	}
	return out
}

// ClauseOverflowError reports a clause that outgrew MaxClauseLen literals.
// It cannot happen for clauses derived from the prime-implicant table; a
// builder panics with it to flag the encoding bug.
type ClauseOverflowError struct {
	Lits []int32
}

func (e ClauseOverflowError) Error() string {
	return fmt.Sprintf("cnf: clause exceeds %d literals: %v", MaxClauseLen, e.Lits)
}

// A ClauseBuilder accumulates the literals of one clause. It detects
// tautologies (l and -l both present) so callers can discard the clause.
// The zero value is ready to use.
type ClauseBuilder struct {
	lits [MaxClauseLen]int32
	n    int
	taut bool
}

// Reset clears the builder for the next clause.
func (b *ClauseBuilder) Reset() {
	for i := 0; i < b.n; i++ {
		b.lits[i] = 0
	}
	b.n = 0
	b.taut = false
}

// Add appends a literal and reports whether the clause has become a
// tautology. Adding more than MaxClauseLen literals panics with
// ClauseOverflowError.
func (b *ClauseBuilder) Add(lit int32) bool {
	if b.taut {
		return true
	}
	for i := 0; i < b.n; i++ {
		if b.lits[i] == -lit {
			b.taut = true
			return true
		}
	}
	if b.n >= MaxClauseLen {
		lits := make([]int32, b.n, b.n+1)
		copy(lits, b.lits[:b.n])
		panic(ClauseOverflowError{Lits: append(lits, lit)})
	}
	b.lits[b.n] = lit
	b.n++
	return false
}

// Tautology reports whether a complementary pair was added.
func (b *ClauseBuilder) Tautology() bool {
	return b.taut
}

// Empty reports whether no literal has been added. An empty clause is
// vacuously unsatisfiable; emitted as a Clause it reads false.
func (b *ClauseBuilder) Empty() bool {
	return b.n == 0
}

// Len returns the number of accumulated literals.
func (b *ClauseBuilder) Len() int {
	return b.n
}

// Clause returns the sorted clause. Only meaningful when the builder is
// not a tautology; an empty builder yields the all-zero (empty) Clause.
func (b *ClauseBuilder) Clause() Clause {
	var c Clause
	copy(c[:], b.lits[:b.n])
	sort.Slice(c[:b.n], func(i, j int) bool { return c[i] < c[j] })
	return c
}
