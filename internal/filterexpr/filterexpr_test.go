package filterexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, src string) *Predicate {
	t.Helper()
	p, err := Compile(src)
	require.NoError(t, err)
	return p
}

// ── Compile ──

func TestCompileRejectsEmpty(t *testing.T) {
	for _, src := range []string{"", "   ", "\t\n"} {
		p, err := Compile(src)
		assert.Error(t, err, "src %q", src)
		assert.Nil(t, p)
	}
}

func TestCompileRejectsSyntaxError(t *testing.T) {
	for _, src := range []string{"x >", "((x)", "label ==="} {
		p, err := Compile(src)
		assert.Error(t, err, "src %q", src)
		assert.Nil(t, p)
	}
}

func TestSrcEchoesTrimmed(t *testing.T) {
	p := mustCompile(t, "  x > 1 ")
	assert.Equal(t, "x > 1", p.Src())
}

// ── Eval ──

func TestEvalCoordinates(t *testing.T) {
	p := mustCompile(t, "x > 50 && y < 20")
	cases := []struct {
		x, y float64
		want bool
	}{
		{60, 10, true},
		{60, 30, false},
		{40, 10, false},
		{50, 19, false}, // strict >
		{50.1, 19.9, true},
	}
	for _, tc := range cases {
		got, err := p.Eval(tc.x, tc.y, "")
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "(%v,%v)", tc.x, tc.y)
	}
}

func TestEvalLabel(t *testing.T) {
	p := mustCompile(t, `label.startsWith("beacon")`)
	got, err := p.Eval(0, 0, "beacon-7")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = p.Eval(0, 0, "probe-1")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestEvalDistHelper(t *testing.T) {
	p := mustCompile(t, "dist(x, y, 50, 50) < 10")
	got, err := p.Eval(55, 55, "")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = p.Eval(90, 90, "")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestEvalDistArity(t *testing.T) {
	p := mustCompile(t, "dist(x, y) < 10")
	_, err := p.Eval(1, 2, "")
	assert.Error(t, err, "wrong arity must surface as an eval error")
}

func TestEvalMathBuiltins(t *testing.T) {
	p := mustCompile(t, "Math.hypot(x - 50, y - 50) < 10")
	got, err := p.Eval(53, 54, "")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEvalTruthiness(t *testing.T) {
	p := mustCompile(t, "x")
	got, err := p.Eval(0, 5, "")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = p.Eval(3, 5, "")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEvalRuntimeError(t *testing.T) {
	p := mustCompile(t, "nosuchfn(x)")
	got, err := p.Eval(1, 2, "")
	assert.Error(t, err)
	assert.False(t, got)
}

func TestEvalReusesCompiledProgram(t *testing.T) {
	p := mustCompile(t, "x % 2 == 0")
	hits := 0
	for i := range 100 {
		ok, err := p.Eval(float64(i), 0, "")
		require.NoError(t, err)
		if ok {
			hits++
		}
	}
	assert.Equal(t, 50, hits)
}
