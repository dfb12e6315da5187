package geo

import "fmt"

// Box3 is an axis-aligned 3D box spanning [Min, Max] on all axes, with
// the same inclusive-bounds convention as Box.
type Box3[T Scalar] struct {
	Min, Max Point3[T]
}

// NewBox3 validates the corners and returns the box spanning them.
// Corners with min > max on any axis fail with ErrInvalidBox.
func NewBox3[T Scalar](min, max Point3[T]) (Box3[T], error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return Box3[T]{}, fmt.Errorf("%w: min (%v,%v,%v), max (%v,%v,%v)",
			ErrInvalidBox, min.X, min.Y, min.Z, max.X, max.Y, max.Z)
	}
	return Box3[T]{Min: min, Max: max}, nil
}

// Midpoint returns the elementwise average of Min and Max.
func (b Box3[T]) Midpoint() Point3[T] {
	return Point3[T]{
		X: b.Min.X + (b.Max.X-b.Min.X)/2,
		Y: b.Min.Y + (b.Max.Y-b.Min.Y)/2,
		Z: b.Min.Z + (b.Max.Z-b.Min.Z)/2,
	}
}

// Contains reports whether p lies within b on all axes, bounds inclusive.
func (b Box3[T]) Contains(p Point3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether b and o overlap on all axes, inclusive.
func (b Box3[T]) Intersects(o Box3[T]) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Octant indexes one of the eight sub-boxes produced by Box3.Split. The
// bit layout extends Quadrant: bit 0 east, bit 1 north, bit 2 up.
type Octant int

// Split subdivides b at its midpoint into eight octants indexed by
// Octant. Octant i covers the upper half of axis k exactly when bit k
// of i is set, so octants 0-3 (lower z) shadow the 2D quadrant order
// SW, SE, NW, NE.
func (b Box3[T]) Split() [8]Box3[T] {
	m := b.Midpoint()
	var out [8]Box3[T]
	for i := range out {
		min, max := b.Min, b.Max
		if i&1 == 0 {
			max.X = m.X
		} else {
			min.X = m.X
		}
		if i&2 == 0 {
			max.Y = m.Y
		} else {
			min.Y = m.Y
		}
		if i&4 == 0 {
			max.Z = m.Z
		} else {
			min.Z = m.Z
		}
		out[i] = Box3[T]{Min: min, Max: max}
	}
	return out
}
