package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDIMACS writes the problem in DIMACS CNF format: a "p cnf" header
// followed by one zero-terminated clause per line. Literals are written
// as-is; callers pass literals already shifted to the DIMACS namespace
// (internal id k maps to variable k-1).
func WriteDIMACS(w io.Writer, numVars int, clauses ClauseList, big []BigClause) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", numVars, len(clauses)+len(big)); err != nil {
		return fmt.Errorf("could not write DIMACS output: %v", err)
	}
	buf := make([]byte, 0, 64)
	for i := range clauses {
		buf = appendClause(buf[:0], clauses[i].Lits())
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	for _, c := range big {
		buf = appendClause(buf[:0], c)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write DIMACS output: %v", err)
	}
	return nil
}

func appendClause(buf []byte, lits []int32) []byte {
	for _, lit := range lits {
		buf = strconv.AppendInt(buf, int64(lit), 10)
		buf = append(buf, ' ')
	}
	return append(buf, '0', '\n')
}
