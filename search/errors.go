package search

import (
	"fmt"

	"gitlab.com/terezi/lifesat/geom"
)

// A CoverageError reports an in-bounds point that no entry's mask
// accepts.
type CoverageError struct {
	Point geom.Point
}

func (e CoverageError) Error() string {
	return fmt.Sprintf("search: no entry covers point (%d, %d, %d)", e.Point.X, e.Point.Y, e.Point.T)
}

// A ContradictionError reports two transitions with the same signature
// but conflicting known outputs.
type ContradictionError struct {
	Pos       geom.Point
	Center    int
	Neighbors [8]int
	Output    int
	Recorded  int
}

func (e ContradictionError) Error() string {
	return fmt.Sprintf(
		"search: contradictory known outputs for same transition signature: position (%d, %d, %d), center %d, neighbors %v, output %d vs %d",
		e.Pos.X, e.Pos.Y, e.Pos.T, e.Center, e.Neighbors, e.Output, e.Recorded)
}
