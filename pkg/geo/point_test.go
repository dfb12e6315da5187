package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Constructors ──

func TestPtAndSplat(t *testing.T) {
	p := Pt(3.0, 4.0)
	assert.Equal(t, 3.0, p.X)
	assert.Equal(t, 4.0, p.Y)

	s := Splat(7)
	assert.Equal(t, Pt(7, 7), s)
}

func TestXY(t *testing.T) {
	x, y := Pt(1, 2).XY()
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}

// ── Elementwise arithmetic ──

func TestPointArithmetic(t *testing.T) {
	p := Pt(8.0, 6.0)
	q := Pt(2.0, 3.0)

	tests := []struct {
		name string
		got  Point[float64]
		want Point[float64]
	}{
		{"add", p.Add(q), Pt(10.0, 9.0)},
		{"sub", p.Sub(q), Pt(6.0, 3.0)},
		{"mul", p.Mul(q), Pt(16.0, 18.0)},
		{"div", p.Div(q), Pt(4.0, 2.0)},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.got, tc.name)
	}
}

func TestPointScalarBroadcast(t *testing.T) {
	p := Pt(8.0, 6.0)

	tests := []struct {
		name string
		got  Point[float64]
		want Point[float64]
	}{
		{"addS", p.AddS(2), Pt(10.0, 8.0)},
		{"subS", p.SubS(2), Pt(6.0, 4.0)},
		{"mulS", p.MulS(2), Pt(16.0, 12.0)},
		{"divS", p.DivS(2), Pt(4.0, 3.0)},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.got, tc.name)
	}
}

// ── Map / Map2 / Each ──

func TestPointMap(t *testing.T) {
	p := Pt(3, 4).Map(func(v int) int { return v * v })
	assert.Equal(t, Pt(9, 16), p)
}

func TestPointMap2(t *testing.T) {
	p := Pt(3, 9).Map2(Pt(5, 4), func(a, b int) int { return max(a, b) })
	assert.Equal(t, Pt(5, 9), p)
}

func TestPointEachOrder(t *testing.T) {
	var seen []float64
	Pt(1.5, 2.5).Each(func(v float64) { seen = append(seen, v) })
	require.Len(t, seen, 2)
	assert.Equal(t, []float64{1.5, 2.5}, seen, "x must come before y")
}

// ── Distance ──

func TestDistSq(t *testing.T) {
	assert.Equal(t, 25.0, Pt(0.0, 0.0).DistSq(Pt(3.0, 4.0)))
	assert.Equal(t, 25, Pt(3, 4).DistSq(Pt(0, 0)), "symmetric")
	assert.Equal(t, 0.0, Pt(5.0, 5.0).DistSq(Pt(5.0, 5.0)))
}

func TestDistSqUnsigned(t *testing.T) {
	// The subtraction must not wrap when the receiver is the smaller point.
	a := Pt(uint16(2), uint16(3))
	b := Pt(uint16(5), uint16(7))
	assert.Equal(t, uint16(25), a.DistSq(b))
	assert.Equal(t, uint16(25), b.DistSq(a))
}

func TestDist(t *testing.T) {
	assert.InDelta(t, 5.0, Pt(0.0, 0.0).Dist(Pt(3.0, 4.0)), 1e-12)
	assert.InDelta(t, 5.0, Pt(0, 0).Dist(Pt(3, 4)), 1e-12, "integer points")
}

func TestPointIn(t *testing.T) {
	b := MustBox(Pt(0.0, 0.0), Pt(10.0, 10.0))
	assert.True(t, Pt(5.0, 5.0).In(b))
	assert.False(t, Pt(11.0, 5.0).In(b))
}
