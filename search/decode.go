package search

import (
	"gitlab.com/terezi/lifesat/geom"
	"gitlab.com/terezi/lifesat/pattern"
	"gitlab.com/terezi/lifesat/sat"
)

// Decode lifts a satisfying model back into the spacetime grid: every
// in-bounds point whose id is known-alive, or whose variable is bound
// true, becomes a live cell of the returned KnownPattern. The pattern's
// bounds are the problem's bounds.
func (p *Problem) Decode(model sat.Model) *pattern.KnownPattern {
	if !p.built {
		panic("search: Decode before Build")
	}
	k := pattern.NewEmptyKnown()
	k.SetBounds(p.bounds)
	for t := p.bounds.T.Lo; t <= p.bounds.T.Hi; t++ {
		for y := p.bounds.Y.Lo; y <= p.bounds.Y.Hi; y++ {
			for x := p.bounds.X.Lo; x <= p.bounds.X.Hi; x++ {
				id := int(p.remappedAt(x, y, t))
				alive := id == 1 || (id >= 2 && model[id-1])
				if alive {
					k.Mark(geom.Point{X: x, Y: y, T: t})
				}
			}
		}
	}
	return k
}
