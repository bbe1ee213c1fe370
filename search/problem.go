package search

import (
	"time"

	"github.com/sirupsen/logrus"

	"gitlab.com/terezi/lifesat/cnf"
	"gitlab.com/terezi/lifesat/geom"
	"gitlab.com/terezi/lifesat/life"
	"gitlab.com/terezi/lifesat/pattern"
	"gitlab.com/terezi/lifesat/unionfind"
)

// A Mask decides which points an entry provides values for.
type Mask func(geom.Point) bool

// All accepts every point.
func All(geom.Point) bool { return true }

// FindEntry return values for points outside the problem or covered by no
// entry.
const (
	EntryOutside  = -2
	EntryNotFound = -1
)

type entry struct {
	pat  pattern.SubPattern
	mask Mask
}

// A Problem composes sub-patterns under masks into one CNF problem. The
// sub-patterns are referenced, not owned: they must outlive the Problem.
type Problem struct {
	bounds  geom.Bounds
	entries []entry
	log     logrus.FieldLogger

	built     bool
	totalVars int // before dedup
	baseVar   []int
	varRemap  []int
	numVars   int // after dedup

	szX, szY, szT int
	raw           []int32
	follows       []bool
	remapped      []int32
}

// New returns an empty problem over bounds.
func New(bounds geom.Bounds) *Problem {
	return &Problem{bounds: bounds, log: logrus.StandardLogger()}
}

// NewGrid returns an empty problem over a width x height grid with
// maxGen+1 generations.
func NewGrid(width, height, maxGen int) *Problem {
	return New(geom.NewBounds(width, height, maxGen))
}

// SetLogger redirects the problem's build diagnostics.
func (p *Problem) SetLogger(log logrus.FieldLogger) { p.log = log }

// Bounds returns the problem's global bounds.
func (p *Problem) Bounds() geom.Bounds { return p.bounds }

// AddEntry appends a sub-pattern with its mask. Entries are consulted in
// insertion order; the first accepting mask owns the point.
func (p *Problem) AddEntry(sp pattern.SubPattern, mask Mask) {
	p.entries = append(p.entries, entry{pat: sp, mask: mask})
	p.built = false
}

// FindEntry returns the index of the entry owning pt, EntryOutside for
// out-of-bounds points, or EntryNotFound when no mask accepts it.
func (p *Problem) FindEntry(pt geom.Point) int {
	if !p.bounds.Contains(pt) {
		return EntryOutside
	}
	for i := range p.entries {
		if p.entries[i].mask(pt) {
			return i
		}
	}
	return EntryNotFound
}

func (p *Problem) flat(x, y, t int) int {
	return ((t-p.bounds.T.Lo)*p.szY+(y-p.bounds.Y.Lo))*p.szX + (x - p.bounds.X.Lo)
}

func (p *Problem) rawAt(x, y, t int) int32 {
	if !p.bounds.Contains(geom.Point{X: x, Y: y, T: t}) {
		return 0
	}
	return p.raw[p.flat(x, y, t)]
}

func (p *Problem) remappedAt(x, y, t int) int32 {
	if !p.bounds.Contains(geom.Point{X: x, Y: y, T: t}) {
		return 0
	}
	return p.remapped[p.flat(x, y, t)]
}

// Build prepares the problem: it validates mask coverage, builds every
// sub-pattern, hands each entry a contiguous global variable range,
// precomputes the flat value and follows-rules arrays, and finally merges
// output variables by transition signature.
func (p *Problem) Build() error {
	start := time.Now()
	p.szX, p.szY, p.szT = p.bounds.X.Size(), p.bounds.Y.Size(), p.bounds.T.Size()
	total := p.szX * p.szY * p.szT

	// Coverage check; remember each point's owner so masks run once.
	entryMap := make([]int, total)
	for f := 0; f < total; f++ {
		pt := geom.Point{
			X: p.bounds.X.Lo + f%p.szX,
			Y: p.bounds.Y.Lo + f/p.szX%p.szY,
			T: p.bounds.T.Lo + f/(p.szX*p.szY),
		}
		idx := EntryNotFound
		for i := range p.entries {
			if p.entries[i].mask(pt) {
				idx = i
				break
			}
		}
		if idx == EntryNotFound {
			return CoverageError{Point: pt}
		}
		entryMap[f] = idx
	}

	for i := range p.entries {
		if err := p.entries[i].pat.Build(); err != nil {
			return err
		}
	}
	patterns := time.Since(start)

	p.baseVar = p.baseVar[:0]
	next := 2
	for i := range p.entries {
		p.baseVar = append(p.baseVar, next)
		next += p.entries[i].pat.NumVariables()
	}
	p.totalVars = next - 2

	p.raw = make([]int32, total)
	p.follows = make([]bool, total)
	for f := 0; f < total; f++ {
		pt := geom.Point{
			X: p.bounds.X.Lo + f%p.szX,
			Y: p.bounds.Y.Lo + f/p.szX%p.szY,
			T: p.bounds.T.Lo + f/(p.szX*p.szY),
		}
		e := entryMap[f]
		local := p.entries[e].pat.CellValue(pt)
		if local < 2 {
			p.raw[f] = int32(local)
		} else {
			p.raw[f] = int32(p.baseVar[e] + local - 2)
		}
		p.follows[f] = p.entries[e].pat.FollowsRules(pt)
	}

	dedupStart := time.Now()
	if err := p.dedupTransitions(); err != nil {
		return err
	}

	p.remapped = make([]int32, total)
	for f, raw := range p.raw {
		if raw < 2 {
			p.remapped[f] = raw
		} else {
			p.remapped[f] = int32(p.varRemap[raw-2])
		}
	}

	p.built = true
	p.log.WithFields(logrus.Fields{
		"cells":        total,
		"vars":         p.totalVars,
		"deduped_vars": p.numVars,
		"patterns":     patterns,
		"dedup":        time.Since(dedupStart),
		"elapsed":      time.Since(start),
	}).Debug("built search problem")
	return nil
}

// signature is the canonical form of one transition's inputs: the center
// id and the sorted ids of the eight neighbors.
type signature struct {
	center int32
	neigh  [8]int32
}

// dedupTransitions unifies output variables of transitions that share a
// signature: B3/S23 is deterministic, so equal inputs force equal
// outputs. Variables united with the 0/1 constants remap to those
// constants (the ordered union-find keeps constants as roots); the
// remaining roots are renumbered contiguously from 2.
func (p *Problem) dedupTransitions() error {
	uf := unionfind.NewOrdered[int](p.totalVars + 2)
	sigOut := make(map[signature]int32, p.szX*p.szY*(p.szT-1)/2)

	for t := p.bounds.T.Lo; t < p.bounds.T.Hi; t++ {
		for y := p.bounds.Y.Lo; y <= p.bounds.Y.Hi; y++ {
			for x := p.bounds.X.Lo; x <= p.bounds.X.Hi; x++ {
				if !p.follows[p.flat(x, y, t+1)] {
					continue
				}
				out := p.rawAt(x, y, t+1)

				var sig signature
				sig.center = p.rawAt(x, y, t)
				i := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						sig.neigh[i] = p.rawAt(x+dx, y+dy, t)
						i++
					}
				}
				sortNeighbors(&sig.neigh)

				recorded, seen := sigOut[sig]
				switch {
				case !seen:
					sigOut[sig] = out
				case out >= 2:
					uf.Unite(int(out), int(recorded))
				case recorded < 2 && recorded != out:
					var neighbors [8]int
					for j, n := range sig.neigh {
						neighbors[j] = int(n)
					}
					return ContradictionError{
						Pos:       geom.Point{X: x, Y: y, T: t},
						Center:    int(sig.center),
						Neighbors: neighbors,
						Output:    int(out),
						Recorded:  int(recorded),
					}
				case recorded >= 2:
					uf.Unite(int(recorded), int(out))
				}
			}
		}
	}

	p.varRemap = make([]int, p.totalVars)
	rootToNew := make(map[int]int)
	next := 2
	for v := 2; v < 2+p.totalVars; v++ {
		root := uf.Find(v)
		if root < 2 {
			p.varRemap[v-2] = root
			continue
		}
		idx, ok := rootToNew[root]
		if !ok {
			idx = next
			next++
			rootToNew[root] = idx
		}
		p.varRemap[v-2] = idx
	}
	p.numVars = next - 2
	return nil
}

// sortNeighbors sorts the eight ids ascending; insertion sort, the array
// is tiny and this sits in the dedup hot loop.
func sortNeighbors(n *[8]int32) {
	for i := 1; i < 8; i++ {
		v := n[i]
		j := i - 1
		for j >= 0 && n[j] > v {
			n[j+1] = n[j]
			j--
		}
		n[j+1] = v
	}
}

// NumVariables returns the variable count after Build and deduplication.
func (p *Problem) NumVariables() int {
	if !p.built {
		panic("search: NumVariables before Build")
	}
	return p.numVars
}

// RawCellValue returns the pre-deduplication id at pt.
func (p *Problem) RawCellValue(pt geom.Point) int {
	if !p.built {
		panic("search: RawCellValue before Build")
	}
	return int(p.rawAt(pt.X, pt.Y, pt.T))
}

// CellValue returns the final id at pt: 0 dead, 1 alive, >= 2 a global
// variable. Out-of-bounds points read as dead.
func (p *Problem) CellValue(pt geom.Point) int {
	if !p.built {
		panic("search: CellValue before Build")
	}
	return int(p.remappedAt(pt.X, pt.Y, pt.T))
}

// FollowsRules reports whether the cell at pt is rule-constrained.
func (p *Problem) FollowsRules(pt geom.Point) bool {
	if !p.built {
		panic("search: FollowsRules before Build")
	}
	if !p.bounds.Contains(pt) {
		return false
	}
	return p.follows[p.flat(pt.X, pt.Y, pt.T)]
}

// Clauses emits the transition CNF over the final variable ids.
// Transitions that share a signature yield identical clauses, which are
// emitted once.
func (p *Problem) Clauses() cnf.ClauseList {
	if !p.built {
		panic("search: Clauses before Build")
	}
	start := time.Now()
	clauses := make(cnf.ClauseList, 0, p.numVars*400)
	var builder cnf.ClauseBuilder
	var ids [10]int32

	for t := p.bounds.T.Lo; t < p.bounds.T.Hi; t++ {
		for y := p.bounds.Y.Lo; y <= p.bounds.Y.Hi; y++ {
			for x := p.bounds.X.Lo; x <= p.bounds.X.Hi; x++ {
				if !p.follows[p.flat(x, y, t+1)] {
					continue
				}
				i := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						ids[i] = p.remappedAt(x+dx, y+dy, t)
						i++
					}
				}
				ids[9] = p.remappedAt(x, y, t+1)
				clauses = life.AppendTransition(clauses, &builder, &ids)
			}
		}
	}
	clauses = clauses.Dedup()
	p.log.WithFields(logrus.Fields{
		"clauses": len(clauses),
		"elapsed": time.Since(start),
	}).Debug("generated transition clauses")
	return clauses
}

// AliveClauses returns, for each generation, a clause requiring at least
// one live cell in it. Generations with a known-live cell are already
// satisfied and contribute nothing; a generation with neither variables
// nor live cells yields the empty clause, making the problem
// unsatisfiable.
func (p *Problem) AliveClauses() []cnf.BigClause {
	if !p.built {
		panic("search: AliveClauses before Build")
	}
	var out []cnf.BigClause
	for t := p.bounds.T.Lo; t <= p.bounds.T.Hi; t++ {
		clause := cnf.BigClause{}
		seen := make(map[int32]bool)
		live := false
		for y := p.bounds.Y.Lo; y <= p.bounds.Y.Hi && !live; y++ {
			for x := p.bounds.X.Lo; x <= p.bounds.X.Hi; x++ {
				switch id := p.remappedAt(x, y, t); {
				case id == 1:
					live = true
				case id >= 2 && !seen[id]:
					seen[id] = true
					clause = append(clause, id-1)
				}
				if live {
					break
				}
			}
		}
		if !live {
			out = append(out, clause)
		}
	}
	return out
}
