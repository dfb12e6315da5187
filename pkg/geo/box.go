package geo

import (
	"errors"
	"fmt"
)

// ErrInvalidBox is returned when a box's min corner exceeds its max corner
// on either axis.
var ErrInvalidBox = errors.New("geo: box min exceeds max")

// Box is an axis-aligned rectangle spanning [Min, Max] on both axes.
// All bounds are inclusive: a point on an edge or corner is inside.
type Box[T Scalar] struct {
	Min, Max Point[T]
}

// NewBox validates the corners and returns the box spanning them.
// Corners with min > max on either axis fail with ErrInvalidBox.
func NewBox[T Scalar](min, max Point[T]) (Box[T], error) {
	if min.X > max.X || min.Y > max.Y {
		return Box[T]{}, fmt.Errorf("%w: min (%v,%v), max (%v,%v)", ErrInvalidBox, min.X, min.Y, max.X, max.Y)
	}
	return Box[T]{Min: min, Max: max}, nil
}

// MustBox is NewBox for corners known to be ordered; it panics otherwise.
func MustBox[T Scalar](min, max Point[T]) Box[T] {
	b, err := NewBox(min, max)
	if err != nil {
		panic(err)
	}
	return b
}

// String formats b as "(minX,minY)-(maxX,maxY)".
func (b Box[T]) String() string {
	return b.Min.String() + "-" + b.Max.String()
}

// Width returns the extent of b on the x axis.
func (b Box[T]) Width() T {
	return b.Max.X - b.Min.X
}

// Height returns the extent of b on the y axis.
func (b Box[T]) Height() T {
	return b.Max.Y - b.Min.Y
}

// Midpoint returns the elementwise average of Min and Max. The computation
// is min + (max-min)/2, which cannot overflow partway through.
func (b Box[T]) Midpoint() Point[T] {
	return Point[T]{
		X: b.Min.X + (b.Max.X-b.Min.X)/2,
		Y: b.Min.Y + (b.Max.Y-b.Min.Y)/2,
	}
}

// Contains reports whether p lies within b on both axes, bounds inclusive.
func (b Box[T]) Contains(p Point[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects reports whether b and o overlap on both axes. Boxes that only
// touch at an edge or corner still intersect, consistent with Contains.
func (b Box[T]) Intersects(o Box[T]) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// Clamp returns p constrained to lie within b.
func (b Box[T]) Clamp(p Point[T]) Point[T] {
	if p.X < b.Min.X {
		p.X = b.Min.X
	} else if p.X > b.Max.X {
		p.X = b.Max.X
	}
	if p.Y < b.Min.Y {
		p.Y = b.Min.Y
	} else if p.Y > b.Max.Y {
		p.Y = b.Max.Y
	}
	return p
}

// DistSq returns the squared distance from p to the closest point of b,
// or zero when b contains p. Nearest-neighbor search prunes subtrees
// with it.
func (b Box[T]) DistSq(p Point[T]) T {
	return p.DistSq(b.Clamp(p))
}

// Quadrant indexes one of the four sub-boxes produced by Split. Bit 0
// selects the east half, bit 1 the north half, so the enumeration
// generalizes to 2^dimension children for higher-dimensional splits.
type Quadrant int

const (
	QuadSW Quadrant = iota
	QuadSE
	QuadNW
	QuadNE
)

// String returns the compass name of the quadrant.
func (q Quadrant) String() string {
	switch q {
	case QuadSW:
		return "SW"
	case QuadSE:
		return "SE"
	case QuadNW:
		return "NW"
	case QuadNE:
		return "NE"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// Split subdivides b at its midpoint into four quadrants indexed by
// Quadrant, in the fixed order SW, SE, NW, NE. The children share edges
// at the midpoint and their union is exactly b. The order is part of the
// contract: callers break placement ties by taking the first quadrant
// that contains a point.
func (b Box[T]) Split() [4]Box[T] {
	m := b.Midpoint()
	return [4]Box[T]{
		QuadSW: {Min: b.Min, Max: m},
		QuadSE: {Min: Point[T]{X: m.X, Y: b.Min.Y}, Max: Point[T]{X: b.Max.X, Y: m.Y}},
		QuadNW: {Min: Point[T]{X: b.Min.X, Y: m.Y}, Max: Point[T]{X: m.X, Y: b.Max.Y}},
		QuadNE: {Min: m, Max: b.Max},
	}
}
