package pattern

import (
	"gitlab.com/terezi/lifesat/cnf"
	"gitlab.com/terezi/lifesat/geom"
	"gitlab.com/terezi/lifesat/life"
	"gitlab.com/terezi/lifesat/unionfind"
)

// A VariablePattern is a SubPattern with unknown cells. Cell groups carry
// the symmetry transforms; Build runs union-find over the induced
// identifications (and the known-live/known-dead sentinels) to decide
// which cells share a variable.
type VariablePattern struct {
	bounds geom.Bounds
	groups []CellGroup
	cells  []Cell

	built   bool
	varIdx  []int
	numVars int
}

var _ SubPattern = (*VariablePattern)(nil)

// NewVariable returns a pattern covering bounds. Every cell starts
// unknown, in no group, and following the rules.
func NewVariable(bounds geom.Bounds) *VariablePattern {
	vp := &VariablePattern{
		bounds: bounds,
		cells:  make([]Cell, 0, bounds.NumCells()),
	}
	for t := bounds.T.Lo; t <= bounds.T.Hi; t++ {
		for y := bounds.Y.Lo; y <= bounds.Y.Hi; y++ {
			for x := bounds.X.Lo; x <= bounds.X.Hi; x++ {
				vp.cells = append(vp.cells, Cell{
					Pos:          geom.Point{X: x, Y: y, T: t},
					Group:        NoGroup,
					FollowsRules: true,
				})
			}
		}
	}
	return vp
}

// NewVariableGrid returns a width x height pattern with maxGen+1
// generations, anchored at the origin.
func NewVariableGrid(width, height, maxGen int) *VariablePattern {
	return NewVariable(geom.NewBounds(width, height, maxGen))
}

// index returns the flat cell index for p, or -1 when out of bounds.
func (vp *VariablePattern) index(p geom.Point) int {
	b := vp.bounds
	lx, ly, lt := p.X-b.X.Lo, p.Y-b.Y.Lo, p.T-b.T.Lo
	if lx < 0 || lx >= b.X.Size() || ly < 0 || ly >= b.Y.Size() || lt < 0 || lt >= b.T.Size() {
		return -1
	}
	return (lt*b.Y.Size()+ly)*b.X.Size() + lx
}

// Cells returns the cell list in (t, y, x) order.
func (vp *VariablePattern) Cells() []Cell { return vp.cells }

// Groups returns the cell-group table.
func (vp *VariablePattern) Groups() []CellGroup { return vp.groups }

// CellAt returns the cell at p. Out-of-bounds points read as a default
// unknown cell in no group.
func (vp *VariablePattern) CellAt(p geom.Point) Cell {
	if i := vp.index(p); i >= 0 {
		return vp.cells[i]
	}
	return Cell{Pos: p, Group: NoGroup, FollowsRules: true}
}

// ShiftBy translates the pattern and all its cells by rel.
func (vp *VariablePattern) ShiftBy(rel geom.Point) {
	vp.bounds = vp.bounds.Add(rel)
	for i := range vp.cells {
		vp.cells[i].Pos = vp.cells[i].Pos.Add(rel)
	}
	vp.built = false
}

// AddCellGroup appends group and returns its index. Later groups take
// priority over earlier ones when symmetries link their cells.
func (vp *VariablePattern) AddCellGroup(group CellGroup) int {
	vp.groups = append(vp.groups, group)
	vp.built = false
	return len(vp.groups) - 1
}

// AddTimeGroup appends a group holding only a time transform.
func (vp *VariablePattern) AddTimeGroup(tr geom.AffineTransform) int {
	return vp.AddCellGroup(NewTimeGroup(tr))
}

// SetCellGroup assigns the cell at p to group idx.
func (vp *VariablePattern) SetCellGroup(p geom.Point, idx int) {
	if i := vp.index(p); i >= 0 {
		vp.cells[i].Group = idx
		vp.built = false
	}
}

// SetCellGroupIf assigns every cell matching pred to group idx.
func (vp *VariablePattern) SetCellGroupIf(idx int, pred func(Cell) bool) {
	for i := range vp.cells {
		if pred(vp.cells[i]) {
			vp.cells[i].Group = idx
		}
	}
	vp.built = false
}

// SetKnown freezes the cell at p to state.
func (vp *VariablePattern) SetKnown(p geom.Point, state bool) {
	if i := vp.index(p); i >= 0 {
		vp.cells[i].Known = true
		vp.cells[i].State = state
		vp.built = false
	}
}

// SetDead freezes the cell at p to dead.
func (vp *VariablePattern) SetDead(p geom.Point) { vp.SetKnown(p, false) }

// SetAlive freezes the cell at p to alive.
func (vp *VariablePattern) SetAlive(p geom.Point) { vp.SetKnown(p, true) }

// SetKnownIf freezes every cell matching pred to state.
func (vp *VariablePattern) SetKnownIf(state bool, pred func(Cell) bool) {
	for i := range vp.cells {
		if pred(vp.cells[i]) {
			vp.cells[i].Known = true
			vp.cells[i].State = state
		}
	}
	vp.built = false
}

// SetFollowsRules sets whether the cell at p must arise from its
// neighborhood at the previous step.
func (vp *VariablePattern) SetFollowsRules(p geom.Point, follows bool) {
	if i := vp.index(p); i >= 0 {
		vp.cells[i].FollowsRules = follows
		vp.built = false
	}
}

// IsBoundary reports whether p lies on the spatial border of the pattern.
func (vp *VariablePattern) IsBoundary(p geom.Point) bool {
	return IsBoundary(vp.bounds, p)
}

// Bounds returns the pattern's bounds.
func (vp *VariablePattern) Bounds() geom.Bounds { return vp.bounds }

// Build derives the cell-to-variable assignment. Two sentinel points just
// outside the bounds stand for the known-live and known-dead states;
// known cells are united with their sentinel, then every grouped cell is
// united with its in-bounds spatial orbit and with one application of its
// time transform. A union is only performed when the target cell is
// grouped and its group does not outrank the source's: later-added groups
// take precedence, so a perturbation is never absorbed into a background.
//
// The time transform is applied once per cell rather than iterated to
// closure; equivalent transitions left over are merged later by the
// search problem's signature deduplication.
func (vp *VariablePattern) Build() error {
	uf := unionfind.New[geom.Point](len(vp.cells) + 2)
	live := geom.Point{X: vp.bounds.X.Lo - 1, Y: vp.bounds.Y.Lo - 1, T: vp.bounds.T.Lo - 1}
	dead := geom.Point{X: vp.bounds.X.Lo - 2, Y: vp.bounds.Y.Lo - 2, T: vp.bounds.T.Lo - 2}
	uf.MakeSet(live)
	uf.MakeSet(dead)

	for i := range vp.cells {
		c := &vp.cells[i]
		uf.MakeSet(c.Pos)
		if c.Live() {
			uf.Unite(c.Pos, live)
		} else if c.Dead() {
			uf.Unite(c.Pos, dead)
		}
	}

	for i := range vp.cells {
		c := &vp.cells[i]
		if c.Group == NoGroup {
			continue
		}
		group := vp.groups[c.Group]

		for _, img := range geom.FindAllImages(c.Pos, group.Spatial, vp.bounds) {
			target := vp.CellAt(img)
			if target.Group != NoGroup && target.Group <= c.Group {
				uf.Unite(c.Pos, img)
			}
		}

		timeImg := group.Time.Apply(c.Pos)
		if vp.bounds.Contains(timeImg) && timeImg != c.Pos {
			target := vp.CellAt(timeImg)
			if target.Group != NoGroup && target.Group <= c.Group {
				uf.Unite(c.Pos, timeImg)
			}
		}
	}

	if uf.Same(live, dead) {
		return ErrContradiction
	}

	reprToVar := make(map[geom.Point]int, len(vp.cells))
	reprToVar[uf.Find(dead)] = 0
	reprToVar[uf.Find(live)] = 1
	next := 2

	vp.varIdx = make([]int, len(vp.cells))
	for i := range vp.cells {
		repr := uf.Find(vp.cells[i].Pos)
		idx, ok := reprToVar[repr]
		if !ok {
			idx = next
			next++
			reprToVar[repr] = idx
		}
		vp.varIdx[i] = idx
	}
	vp.numVars = next - 2
	vp.built = true
	return nil
}

// NumVariables returns the variable count after Build.
func (vp *VariablePattern) NumVariables() int {
	if !vp.built {
		panic("pattern: NumVariables before Build")
	}
	return vp.numVars
}

// CellValue returns the variable id at p, or 0 for out-of-bounds points.
func (vp *VariablePattern) CellValue(p geom.Point) int {
	if !vp.built {
		panic("pattern: CellValue before Build")
	}
	if i := vp.index(p); i >= 0 {
		return vp.varIdx[i]
	}
	return 0
}

// Known reports whether the cell at p is frozen.
func (vp *VariablePattern) Known(p geom.Point) bool {
	return vp.CellAt(p).Known
}

// State returns the frozen state at p.
func (vp *VariablePattern) State(p geom.Point) bool {
	return vp.CellAt(p).State
}

// FollowsRules reports whether the cell at p is rule-constrained.
func (vp *VariablePattern) FollowsRules(p geom.Point) bool {
	return vp.CellAt(p).FollowsRules
}

// Clauses emits the pattern's transition clauses. For every output cell at
// t+1 that follows the rules, the nine neighborhood ids at t (out-of-bounds
// neighbors read dead) and the output id feed the prime-implicant table.
// Local ids are lifted to the global namespace at baseVar.
func (vp *VariablePattern) Clauses(baseVar int) cnf.ClauseList {
	if !vp.built {
		panic("pattern: Clauses before Build")
	}
	b := vp.bounds
	clauses := make(cnf.ClauseList, 0, vp.numVars*400)
	var builder cnf.ClauseBuilder
	var ids [10]int32

	toGlobal := func(local int) int32 {
		if local < 2 {
			return int32(local)
		}
		return int32(baseVar + local - 2)
	}

	for t := b.T.Lo; t < b.T.Hi; t++ {
		for y := b.Y.Lo; y <= b.Y.Hi; y++ {
			for x := b.X.Lo; x <= b.X.Hi; x++ {
				out := geom.Point{X: x, Y: y, T: t + 1}
				if !vp.FollowsRules(out) {
					continue
				}
				i := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						ids[i] = toGlobal(vp.CellValue(geom.Point{X: x + dx, Y: y + dy, T: t}))
						i++
					}
				}
				ids[9] = toGlobal(vp.CellValue(out))
				clauses = life.AppendTransition(clauses, &builder, &ids)
			}
		}
	}
	return clauses
}
