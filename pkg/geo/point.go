// Package geo provides generic 2D and 3D geometric primitives: coordinate
// points, axis-aligned boxes, and their quadrant/octant subdivision.
//
// Everything is parameterized over a Scalar coordinate type, so the same
// geometry works for integer grids and floating-point domains. All values
// are immutable; operations return new values.
package geo

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for coordinate types: any integer or float.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Point is a 2D coordinate pair.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Splat returns a Point with both coordinates set to v.
func Splat[T Scalar](v T) Point[T] {
	return Point[T]{X: v, Y: v}
}

// XY returns the coordinates in order.
func (p Point[T]) XY() (x, y T) {
	return p.X, p.Y
}

// String formats p as "(x,y)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the elementwise sum p + q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the elementwise difference p - q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the elementwise product p * q.
func (p Point[T]) Mul(q Point[T]) Point[T] {
	return Point[T]{X: p.X * q.X, Y: p.Y * q.Y}
}

// Div returns the elementwise quotient p / q.
func (p Point[T]) Div(q Point[T]) Point[T] {
	return Point[T]{X: p.X / q.X, Y: p.Y / q.Y}
}

// AddS returns p with s added to both coordinates.
func (p Point[T]) AddS(s T) Point[T] {
	return Point[T]{X: p.X + s, Y: p.Y + s}
}

// SubS returns p with s subtracted from both coordinates.
func (p Point[T]) SubS(s T) Point[T] {
	return Point[T]{X: p.X - s, Y: p.Y - s}
}

// MulS returns p scaled by s.
func (p Point[T]) MulS(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// DivS returns p divided by s on both coordinates.
func (p Point[T]) DivS(s T) Point[T] {
	return Point[T]{X: p.X / s, Y: p.Y / s}
}

// Map returns a Point with fn applied to each coordinate.
func (p Point[T]) Map(fn func(T) T) Point[T] {
	return Point[T]{X: fn(p.X), Y: fn(p.Y)}
}

// Map2 combines p and q elementwise with fn.
func (p Point[T]) Map2(q Point[T], fn func(T, T) T) Point[T] {
	return Point[T]{X: fn(p.X, q.X), Y: fn(p.Y, q.Y)}
}

// Each calls fn for each coordinate, x first.
func (p Point[T]) Each(fn func(T)) {
	fn(p.X)
	fn(p.Y)
}

// DistSq returns the squared Euclidean distance between p and q.
// Squared distance orders the same as true distance and stays closed
// over integer scalars, so it is what the search code compares.
func (p Point[T]) DistSq(q Point[T]) T {
	dx := absDiff(p.X, q.X)
	dy := absDiff(p.Y, q.Y)
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q as a float64.
func (p Point[T]) Dist(q Point[T]) float64 {
	return math.Sqrt(float64(p.DistSq(q)))
}

// In reports whether p lies within b. Bounds are inclusive.
func (p Point[T]) In(b Box[T]) bool {
	return b.Contains(p)
}

// absDiff avoids the a-b underflow for unsigned scalar types.
func absDiff[T Scalar](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
