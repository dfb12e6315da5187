// Package filterexpr compiles JavaScript predicate expressions against
// plotted sites. The viewer's filter console feeds user input through
// Compile and applies the resulting Predicate to every item, so syntax
// errors surface once at compile time and only evaluation errors remain
// per item.
package filterexpr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dop251/goja"
)

// Predicate is a compiled filter expression. It owns a single JS
// runtime, so Eval must not be called from more than one goroutine at a
// time.
type Predicate struct {
	src  string
	prog *goja.Program
	rt   *goja.Runtime
}

// Compile parses src as a JavaScript expression whose result is taken
// as a boolean. The expression sees the variables x, y and label, plus
// a dist(x1, y1, x2, y2) helper alongside the usual Math builtins.
func Compile(src string) (*Predicate, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, errors.New("filterexpr: empty expression")
	}
	prog, err := goja.Compile("filter", src, true)
	if err != nil {
		return nil, fmt.Errorf("filterexpr: %w", err)
	}

	rt := goja.New()
	rt.Set("dist", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) != 4 {
			panic(rt.NewTypeError("dist takes x1, y1, x2, y2"))
		}
		dx := call.Arguments[0].ToFloat() - call.Arguments[2].ToFloat()
		dy := call.Arguments[1].ToFloat() - call.Arguments[3].ToFloat()
		return rt.ToValue(math.Hypot(dx, dy))
	})

	return &Predicate{src: src, prog: prog, rt: rt}, nil
}

// Src returns the expression text the predicate was compiled from.
func (p *Predicate) Src() string {
	return p.src
}

// Eval runs the expression against one site. The result follows JS
// truthiness, so "x" alone is false at x == 0 and true elsewhere.
func (p *Predicate) Eval(x, y float64, label string) (bool, error) {
	p.rt.Set("x", x)
	p.rt.Set("y", y)
	p.rt.Set("label", label)
	v, err := p.rt.RunProgram(p.prog)
	if err != nil {
		return false, fmt.Errorf("filterexpr: eval %q: %w", p.src, err)
	}
	return v.ToBoolean(), nil
}
