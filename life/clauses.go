package life

import "gitlab.com/terezi/lifesat/cnf"

// AppendTransition appends to out the clauses constraining one transition.
// ids holds the ten variable ids involved: the nine neighborhood cells at
// time t in row-major order, then the output cell at time t+1. Ids below 2
// are constants and are resolved in place: a constant agreeing with an
// implicant's force bit satisfies that clause, which is dropped, while a
// disagreeing constant contributes no literal. A clause whose literals all
// vanish this way is unsatisfiable; it is appended as the empty clause so
// the formula as a whole reads false.
func AppendTransition(out cnf.ClauseList, b *cnf.ClauseBuilder, ids *[10]int32) cnf.ClauseList {
	for _, imp := range Implicants() {
		satisfied := false
		b.Reset()
		for bit := 0; bit < 10; bit++ {
			if imp.Care&(1<<bit) == 0 {
				continue
			}
			id := ids[bit]
			force := imp.Force&(1<<bit) != 0
			if id < 2 {
				if (id != 0) == force {
					satisfied = true
				}
			} else {
				lit := id - 1
				if !force {
					lit = -lit
				}
				satisfied = b.Add(lit)
			}
			if satisfied {
				break
			}
		}
		if !satisfied {
			out = append(out, b.Clause())
		}
	}
	return out
}
