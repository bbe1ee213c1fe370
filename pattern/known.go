package pattern

import (
	"fmt"
	"io"

	"gitlab.com/terezi/lifesat/cnf"
	"gitlab.com/terezi/lifesat/geom"
)

// A KnownPattern is a SubPattern whose every cell is determined: a live
// set at t = 0 parsed from RLE, forward-simulated for a number of
// generations. It contributes no variables and no clauses to enclosing
// problems; it only supplies known values to the neighborhoods of other
// patterns.
//
// The live set is stored with origin (0, 0, 0); a shift vector is kept
// separately so translation is O(1).
type KnownPattern struct {
	on     map[geom.Point]bool
	bounds geom.Bounds
	shift  geom.Point
}

var _ SubPattern = (*KnownPattern)(nil)

// NewKnown parses rle and simulates generations 1..maxGen.
func NewKnown(rle string, maxGen int) *KnownPattern {
	on, maxX, maxY := parseRLE(rle)
	k := &KnownPattern{
		on: on,
		bounds: geom.Bounds{
			X: geom.Limits{Lo: 0, Hi: maxX},
			Y: geom.Limits{Lo: 0, Hi: maxY},
			T: geom.Limits{Lo: 0, Hi: maxGen},
		},
	}
	for gen := 1; gen <= maxGen; gen++ {
		k.addNextGen(gen)
	}
	return k
}

// NewEmptyKnown returns a pattern with no cells and empty bounds.
func NewEmptyKnown() *KnownPattern {
	return &KnownPattern{on: make(map[geom.Point]bool), bounds: geom.EmptyBounds}
}

// Mark adds a live cell at p (in shifted coordinates).
func (k *KnownPattern) Mark(p geom.Point) {
	k.on[p.Sub(k.shift)] = true
}

// SetBounds overrides the pattern's bounds (in unshifted coordinates).
func (k *KnownPattern) SetBounds(b geom.Bounds) {
	k.bounds = b
}

// ShiftBy translates the pattern by rel.
func (k *KnownPattern) ShiftBy(rel geom.Point) {
	k.shift = k.shift.Add(rel)
}

// addNextGen computes generation gen from gen-1 over the bounding
// rectangle expanded by one cell in each direction, growing the live set
// and bounds as needed.
func (k *KnownPattern) addNextGen(gen int) {
	xl, yl := k.bounds.X, k.bounds.Y
	for x := xl.Lo - 1; x <= xl.Hi+1; x++ {
		for y := yl.Lo - 1; y <= yl.Hi+1; y++ {
			live := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if k.on[geom.Point{X: x + dx, Y: y + dy, T: gen - 1}] {
						live++
					}
				}
			}
			alive := k.on[geom.Point{X: x, Y: y, T: gen - 1}]
			if live == 3 || (alive && live == 2) {
				k.on[geom.Point{X: x, Y: y, T: gen}] = true
				k.bounds.X = expand(k.bounds.X, x)
				k.bounds.Y = expand(k.bounds.Y, y)
			}
		}
	}
	k.bounds.T.Hi = gen
}

func expand(l geom.Limits, v int) geom.Limits {
	if v < l.Lo {
		l.Lo = v
	}
	if v > l.Hi {
		l.Hi = v
	}
	return l
}

// Bounds returns the pattern's bounds in shifted coordinates.
func (k *KnownPattern) Bounds() geom.Bounds {
	return k.bounds.Add(k.shift)
}

// Build is a no-op: the pattern is determined at construction.
func (k *KnownPattern) Build() error { return nil }

// NumVariables is always zero.
func (k *KnownPattern) NumVariables() int { return 0 }

// CellValue returns 1 for live cells and 0 otherwise.
func (k *KnownPattern) CellValue(p geom.Point) int {
	if k.State(p) {
		return 1
	}
	return 0
}

// Known is true for every point.
func (k *KnownPattern) Known(geom.Point) bool { return true }

// State reports whether the cell at p is alive.
func (k *KnownPattern) State(p geom.Point) bool {
	return k.on[p.Sub(k.shift)]
}

// FollowsRules is true for every point: the pattern is a valid evolution.
func (k *KnownPattern) FollowsRules(geom.Point) bool { return true }

// Clauses emits nothing.
func (k *KnownPattern) Clauses(int) cnf.ClauseList { return nil }

// PrintGen writes generation gen to w, marking the axes on dead cells.
func (k *KnownPattern) PrintGen(w io.Writer, gen int) {
	b := k.Bounds()
	fmt.Fprintf(w, "Generation %d:\n", gen)
	for y := b.Y.Lo; y <= b.Y.Hi; y++ {
		for x := b.X.Lo; x <= b.X.Hi; x++ {
			switch {
			case k.State(geom.Point{X: x, Y: y, T: gen}):
				fmt.Fprint(w, "o")
			case x == 0 && y == 0:
				fmt.Fprint(w, "+")
			case x == 0:
				fmt.Fprint(w, "|")
			case y == 0:
				fmt.Fprint(w, "-")
			default:
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w)
	}
}
