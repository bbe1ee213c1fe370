package search

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gitlab.com/terezi/lifesat/cnf"
	"gitlab.com/terezi/lifesat/geom"
)

// Render writes the variable grid to w, one block per generation. Known
// cells print as '.' (dead) and 'o' (alive), cells outside the rules as
// '*', and variables as their id. Column width adapts to the largest id.
func (p *Problem) Render(w io.Writer) {
	if !p.built {
		panic("search: Render before Build")
	}
	width := 1
	for max := p.numVars + 1; max >= 10; max /= 10 {
		width++
	}

	for t := p.bounds.T.Lo; t <= p.bounds.T.Hi; t++ {
		fmt.Fprintf(w, "Generation %d:\n", t)
		fmt.Fprint(w, "  x:")
		for x := p.bounds.X.Lo; x <= p.bounds.X.Hi; x++ {
			fmt.Fprintf(w, " %*d", width, x)
		}
		fmt.Fprintln(w)
		for y := p.bounds.Y.Lo; y <= p.bounds.Y.Hi; y++ {
			fmt.Fprintf(w, "y=%*d:", width, y)
			for x := p.bounds.X.Lo; x <= p.bounds.X.Hi; x++ {
				pt := geom.Point{X: x, Y: y, T: t}
				id := p.CellValue(pt)
				switch {
				case !p.FollowsRules(pt):
					fmt.Fprintf(w, " %*s", width, "*")
				case id == 0:
					fmt.Fprintf(w, " %*s", width, ".")
				case id == 1:
					fmt.Fprintf(w, " %*s", width, "o")
				default:
					fmt.Fprintf(w, " %*d", width, id)
				}
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}

// createFile opens path for writing, refusing to clobber an existing
// file unless overwrite is set.
func createFile(path string, overwrite bool) (*os.File, error) {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("file already exists: %s", path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s for writing: %v", path, err)
	}
	return f, nil
}

// WriteCNF writes the problem's DIMACS encoding to path, including any
// extra big clauses.
func (p *Problem) WriteCNF(path string, overwrite bool, big []cnf.BigClause) error {
	f, err := createFile(path, overwrite)
	if err != nil {
		return err
	}
	werr := cnf.WriteDIMACS(f, p.NumVariables(), p.Clauses(), big)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}

// WriteCSV writes the variable grid to path as one CSV block per
// generation, blocks separated by a blank line.
func (p *Problem) WriteCSV(path string, overwrite bool) error {
	f, err := createFile(path, overwrite)
	if err != nil {
		return err
	}
	defer f.Close()
	buf := make([]byte, 0, 4*p.szX)
	for t := p.bounds.T.Lo; t <= p.bounds.T.Hi; t++ {
		if t > p.bounds.T.Lo {
			buf = append(buf[:0], '\n')
			if _, err := f.Write(buf); err != nil {
				return fmt.Errorf("could not write %s: %v", path, err)
			}
		}
		for y := p.bounds.Y.Lo; y <= p.bounds.Y.Hi; y++ {
			buf = buf[:0]
			for x := p.bounds.X.Lo; x <= p.bounds.X.Hi; x++ {
				if x > p.bounds.X.Lo {
					buf = append(buf, ',')
				}
				buf = strconv.AppendInt(buf, int64(p.remappedAt(x, y, t)), 10)
			}
			buf = append(buf, '\n')
			if _, err := f.Write(buf); err != nil {
				return fmt.Errorf("could not write %s: %v", path, err)
			}
		}
	}
	return nil
}
