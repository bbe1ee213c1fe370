// Package geom describes the integer spacetime the encoder works in:
// points in (x, y, t) space, affine transforms whose linear part acts on
// space only, and rectangular bounds.
package geom

// A Point is the location of a cell in spacetime.
// It doubles as a translation vector.
type Point struct {
	X, Y, T int
}

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.T + q.T}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.T - q.T}
}

// An AffineTransform maps v to Av + b, where A = [A1 A2 0; A3 A4 0; 0 0 1]
// and b = (BX, BY, BT). The spatial part is an arbitrary 2x2 integer
// matrix; it is up to the caller to pick one that is a symmetry of the
// lattice. Time is only ever translated.
type AffineTransform struct {
	A1, A2, A3, A4 int
	BX, BY, BT     int
}

// Identity is the identity transform.
var Identity = AffineTransform{A1: 1, A4: 1}

// Apply returns the image of p under tr.
func (tr AffineTransform) Apply(p Point) Point {
	return Point{
		X: tr.A1*p.X + tr.A2*p.Y + tr.BX,
		Y: tr.A3*p.X + tr.A4*p.Y + tr.BY,
		T: p.T + tr.BT,
	}
}

// SpatialOnly reports whether tr leaves the time coordinate unchanged.
func (tr AffineTransform) SpatialOnly() bool {
	return tr.BT == 0
}

// Limits is a closed integer interval [Lo, Hi].
type Limits struct {
	Lo, Hi int
}

// Contains reports whether v lies in l.
func (l Limits) Contains(v int) bool {
	return v >= l.Lo && v <= l.Hi
}

// Size returns the number of integers in l.
func (l Limits) Size() int {
	return l.Hi - l.Lo + 1
}

// EmptyLimits is an interval containing no integers.
var EmptyLimits = Limits{Lo: 0, Hi: -1}

// Bounds is a rectangular region of spacetime.
type Bounds struct {
	X, Y, T Limits
}

// EmptyBounds is a region containing no points.
var EmptyBounds = Bounds{X: EmptyLimits, Y: EmptyLimits, T: EmptyLimits}

// NewBounds returns bounds covering [0, width-1] x [0, height-1] x [0, maxGen].
func NewBounds(width, height, maxGen int) Bounds {
	return Bounds{
		X: Limits{0, width - 1},
		Y: Limits{0, height - 1},
		T: Limits{0, maxGen},
	}
}

// Contains reports whether p lies within b.
func (b Bounds) Contains(p Point) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.T.Contains(p.T)
}

// Add translates b by the vector p.
func (b Bounds) Add(p Point) Bounds {
	return Bounds{
		X: Limits{b.X.Lo + p.X, b.X.Hi + p.X},
		Y: Limits{b.Y.Lo + p.Y, b.Y.Hi + p.Y},
		T: Limits{b.T.Lo + p.T, b.T.Hi + p.T},
	}
}

// Sub translates b by the vector -p.
func (b Bounds) Sub(p Point) Bounds {
	return b.Add(Point{-p.X, -p.Y, -p.T})
}

// NumCells returns the number of points in b.
func (b Bounds) NumCells() int {
	return b.X.Size() * b.Y.Size() * b.T.Size()
}
