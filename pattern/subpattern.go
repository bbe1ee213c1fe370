// Package pattern defines the spacetime regions the encoder composes:
// KnownPattern, whose cells are fully determined, and VariablePattern,
// whose unknown cells are tied together by symmetry groups. Both satisfy
// SubPattern, the capability interface SearchProblem builds against.
package pattern

import (
	"errors"

	"gitlab.com/terezi/lifesat/cnf"
	"gitlab.com/terezi/lifesat/geom"
)

// NoGroup marks a cell that belongs to no cell group: the cell is its own
// representative and is never identified with anything by symmetry.
const NoGroup = -1

// A Cell is one point of a VariablePattern.
type Cell struct {
	Pos          geom.Point
	Group        int
	FollowsRules bool
	Known        bool
	State        bool
}

// Live reports whether c is known alive.
func (c Cell) Live() bool { return c.Known && c.State }

// Dead reports whether c is known dead.
func (c Cell) Dead() bool { return c.Known && !c.State }

// A CellGroup ties its member cells together: every cell equals each of
// its images under the closure of the spatial transforms, and its image
// under one application of the time transform. The time transform should
// carry a nonzero time step only when that identification is intended.
type CellGroup struct {
	Spatial []geom.AffineTransform
	Time    geom.AffineTransform
}

// NewTimeGroup returns a group with only a time transform.
func NewTimeGroup(tr geom.AffineTransform) CellGroup {
	return CellGroup{Time: tr}
}

// ErrContradiction reports that unification forced a known-live cell equal
// to a known-dead one; the search is unsatisfiable by construction.
var ErrContradiction = errors.New("pattern: symmetry constraints identify known-live with known-dead cells")

// A SubPattern is a bounded spacetime region that can report per-cell
// variable ids and emit its own transition clauses. Variable ids follow
// the encoder-wide convention: 0 dead, 1 alive, >= 2 a local variable.
type SubPattern interface {
	// Bounds returns the region the pattern covers.
	Bounds() geom.Bounds
	// Build derives per-cell variable assignments. It must be called
	// before the query methods below; mutating the pattern afterwards
	// requires rebuilding.
	Build() error
	// NumVariables returns the number of distinct variables after Build.
	NumVariables() int
	// CellValue returns the variable id at p. Out-of-bounds points read
	// as dead.
	CellValue(p geom.Point) int
	// Known reports whether the cell state at p is determined.
	Known(p geom.Point) bool
	// State returns the determined state at p; only meaningful when
	// Known(p) is true.
	State(p geom.Point) bool
	// FollowsRules reports whether the cell at p is constrained to arise
	// from its neighborhood at the previous time step.
	FollowsRules(p geom.Point) bool
	// Clauses emits the pattern's transition clauses with local variable
	// ids offset into the global namespace starting at baseVar.
	Clauses(baseVar int) cnf.ClauseList
}

// IsBoundary reports whether p lies on the spatial border of b.
func IsBoundary(b geom.Bounds, p geom.Point) bool {
	return p.X == b.X.Lo || p.X == b.X.Hi || p.Y == b.Y.Lo || p.Y == b.Y.Hi
}
