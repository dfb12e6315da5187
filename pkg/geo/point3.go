package geo

import "math"

// Point3 is a 3D coordinate triple, the octree-facing twin of Point.
type Point3[T Scalar] struct {
	X, Y, Z T
}

// Pt3 is shorthand for Point3[T]{X: x, Y: y, Z: z}.
func Pt3[T Scalar](x, y, z T) Point3[T] {
	return Point3[T]{X: x, Y: y, Z: z}
}

// Splat3 returns a Point3 with all three coordinates set to v.
func Splat3[T Scalar](v T) Point3[T] {
	return Point3[T]{X: v, Y: v, Z: v}
}

// XYZ returns the coordinates in order.
func (p Point3[T]) XYZ() (x, y, z T) {
	return p.X, p.Y, p.Z
}

// Add returns the elementwise sum p + q.
func (p Point3[T]) Add(q Point3[T]) Point3[T] {
	return Point3[T]{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the elementwise difference p - q.
func (p Point3[T]) Sub(q Point3[T]) Point3[T] {
	return Point3[T]{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Map returns a Point3 with fn applied to each coordinate.
func (p Point3[T]) Map(fn func(T) T) Point3[T] {
	return Point3[T]{X: fn(p.X), Y: fn(p.Y), Z: fn(p.Z)}
}

// Each calls fn for each coordinate, x first.
func (p Point3[T]) Each(fn func(T)) {
	fn(p.X)
	fn(p.Y)
	fn(p.Z)
}

// DistSq returns the squared Euclidean distance between p and q.
func (p Point3[T]) DistSq(q Point3[T]) T {
	dx := absDiff(p.X, q.X)
	dy := absDiff(p.Y, q.Y)
	dz := absDiff(p.Z, q.Z)
	return dx*dx + dy*dy + dz*dz
}

// Dist returns the Euclidean distance between p and q as a float64.
func (p Point3[T]) Dist(q Point3[T]) float64 {
	return math.Sqrt(float64(p.DistSq(q)))
}
