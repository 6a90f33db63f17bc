package tessellate_test

import (
	"math"
	"reflect"
	"sync"
	"testing"

	charter "github.com/Duccs/Math-Charter"
	"github.com/Duccs/Math-Charter/tessellate"
)

var square = tessellate.View{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10}

// fn adapts a Go function to a tessellate.Func.
type fn func(float32) float32

func (f fn) Eval(x float32) float32 { return f(x) }

func finite(t float32) bool {
	return !math.IsNaN(float64(t)) && !math.IsInf(float64(t), 0)
}

// check verifies the invariants every tessellation has.
func check(t *testing.T, name string, strips []tessellate.Strip) {
	t.Helper()
	for i, s := range strips {
		if len(s) < 2 {
			t.Errorf("%s: strip %d has %d vertices", name, i, len(s))
		}
		for j, v := range s {
			if !finite(v[0]) || !finite(v[1]) || v[2] != 0 {
				t.Errorf("%s: strip %d vertex %d is %v", name, i, j, v)
			}
			if j > 0 && v[0] <= s[j-1][0] {
				t.Errorf("%s: strip %d goes backward at vertex %d: %v then %v", name, i, j, s[j-1], v)
			}
		}
		if i > 0 {
			prev := strips[i-1]
			if s[0][0] <= prev[len(prev)-1][0] {
				t.Errorf("%s: strip %d overlaps strip %d", name, i, i-1)
			}
		}
	}
}

func TestTessellateExpressions(t *testing.T) {
	cases := []struct {
		src string
		// min and max bound the number of strips.
		min, max int
	}{
		{"1/x", 2, 1 << 20},
		{"sin(x)", 1, 1},
		{"x^2", 1, 1},
		{"2x+1", 1, 1},
		{"sqrt(x)", 1, 1},
		{"tan(x)", 7, 1 << 20},
		{"floor(x)", 1, 1},
		{"ln(x)", 1, 1},
		{"arcsin(x/20)", 1, 1},
		{"sqrt(-1-x^2)", 0, 0},
		{"nan", 0, 0},
		{"inf", 0, 0},
	}
	for _, c := range cases {
		c := c
		t.Run(c.src, func(t *testing.T) {
			e := charter.Parse(c.src)
			if !e.Valid() {
				t.Fatalf("%q: %v", c.src, e.Err())
			}
			strips := tessellate.Tessellate(e, square)
			check(t, c.src, strips)
			if len(strips) < c.min || len(strips) > c.max {
				t.Errorf("%q: want between %d and %d strips, got %d", c.src, c.min, c.max, len(strips))
			}
		})
	}
}

func TestTessellateReciprocal(t *testing.T) {
	strips := tessellate.Tessellate(charter.Parse("1/x"), square)
	if len(strips) < 2 {
		t.Fatalf("want at least 2 strips, got %d", len(strips))
	}
	// No strip crosses the asymptote.
	for i, s := range strips {
		if s[0][0] < 0 && s[len(s)-1][0] > 0 {
			t.Errorf("strip %d crosses x=0: %v to %v", i, s[0], s[len(s)-1])
		}
	}
	first, last := strips[0], strips[len(strips)-1]
	if first[0][0] != -1 || last[len(last)-1][0] != 1 {
		t.Errorf("strips don't span the view: %v to %v", first[0], last[len(last)-1])
	}
}

func TestTessellateLinear(t *testing.T) {
	// A line is flat everywhere, so only the top-level segments are sampled.
	strips := tessellate.Tessellate(charter.Parse("2x+1"), square)
	if len(strips) != 1 {
		t.Fatalf("want 1 strip, got %d", len(strips))
	}
	if got := len(strips[0]); got != tessellate.Segments+1 {
		t.Errorf("want %d vertices, got %d", tessellate.Segments+1, got)
	}
}

func TestTessellateRefines(t *testing.T) {
	// A curve bends, so it needs more vertices than a line.
	strips := tessellate.Tessellate(charter.Parse("sin(x)"), tessellate.View{MinX: -10, MaxX: 10, MinY: -1.5, MaxY: 1.5})
	if len(strips) != 1 {
		t.Fatalf("want 1 strip, got %d", len(strips))
	}
	s := strips[0]
	if len(s) <= tessellate.Segments+1 {
		t.Errorf("want more than %d vertices, got %d", tessellate.Segments+1, len(s))
	}
	if len(s) > tessellate.Segments<<tessellate.MaxDepth+1 {
		t.Errorf("too many vertices: %d", len(s))
	}
	if s[0][0] != -1 || s[len(s)-1][0] != 1 {
		t.Errorf("strip doesn't span the view: %v to %v", s[0], s[len(s)-1])
	}
}

func TestTessellateDomainEdge(t *testing.T) {
	strips := tessellate.Tessellate(charter.Parse("sqrt(x)"), square)
	if len(strips) != 1 {
		t.Fatalf("want 1 strip, got %d", len(strips))
	}
	s := strips[0]
	if s[0][0] < 0 || s[0][0] > 0.001 {
		t.Errorf("strip starts at %v, not near x=0", s[0])
	}
	if s[len(s)-1][0] != 1 {
		t.Errorf("strip ends at %v, not at the edge of the view", s[len(s)-1])
	}
}

func TestTessellateIdempotent(t *testing.T) {
	for _, src := range []string{"1/x", "sin(x)/x", "tan(x)", "sqrt(x)", "x!"} {
		e := charter.Parse(src)
		a := tessellate.Tessellate(e, square)
		b := tessellate.Tessellate(e, square)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%q: tessellated differently", src)
		}
	}
}

func TestTessellateConcurrent(t *testing.T) {
	e := charter.Parse("x^3/50 - tan(x)")
	want := tessellate.Tessellate(e, square)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := tessellate.Tessellate(e, square); !reflect.DeepEqual(got, want) {
				t.Error("concurrent tessellation differs")
			}
		}()
	}
	wg.Wait()
}

func TestTessellateNothing(t *testing.T) {
	cases := []struct {
		name string
		f    tessellate.Func
		view tessellate.View
	}{
		{"invalid", charter.Parse("x+"), square},
		{"badlex", charter.Parse("3.14.15.9"), square},
		{"flatx", charter.Parse("x"), tessellate.View{MinX: 1, MaxX: 1, MinY: -1, MaxY: 1}},
		{"flaty", charter.Parse("x"), tessellate.View{MinX: -1, MaxX: 1, MinY: 1, MaxY: 1}},
		{"backward", charter.Parse("x"), tessellate.View{MinX: 1, MaxX: -1, MinY: -1, MaxY: 1}},
		{"infinite", charter.Parse("x"), tessellate.View{MinX: float32(math.Inf(-1)), MaxX: 1, MinY: -1, MaxY: 1}},
		{"nanview", charter.Parse("x"), tessellate.View{MinX: -1, MaxX: 1, MinY: float32(math.NaN()), MaxY: 1}},
		{"undefined", fn(func(float32) float32 { return float32(math.NaN()) }), square},
	}
	for _, c := range cases {
		if got := tessellate.Tessellate(c.f, c.view); len(got) != 0 {
			t.Errorf("%s: want no strips, got %d", c.name, len(got))
		}
	}
}

func TestTessellateFunc(t *testing.T) {
	// A plain function without a Valid method can be tessellated too. The
	// gap in its domain splits it in two.
	f := fn(func(x float32) float32 {
		if -1 < x && x < 1 {
			return float32(math.NaN())
		}
		return x
	})
	strips := tessellate.Tessellate(f, square)
	check(t, "gap", strips)
	if len(strips) != 2 {
		t.Fatalf("want 2 strips, got %d", len(strips))
	}
	if end := strips[0][len(strips[0])-1][0]; end > -0.1 || end < -0.11 {
		t.Errorf("left strip ends at %g, want near -0.1", end)
	}
	if start := strips[1][0][0]; start < 0.1 || start > 0.11 {
		t.Errorf("right strip starts at %g, want near 0.1", start)
	}
}

func TestMap(t *testing.T) {
	v := tessellate.View{MinX: -10, MaxX: 10, MinY: 0, MaxY: 4}
	cases := []struct {
		x, y float32
		want tessellate.Vertex
	}{
		{0, 2, tessellate.Vertex{0, 0, 0}},
		{-10, 0, tessellate.Vertex{-1, -1, 0}},
		{10, 4, tessellate.Vertex{1, 1, 0}},
		{5, 1, tessellate.Vertex{0.5, -0.5, 0}},
		{20, 8, tessellate.Vertex{2, 3, 0}},
	}
	for _, c := range cases {
		if got := v.Map(c.x, c.y); got != c.want {
			t.Errorf("Map(%g, %g): want %v, got %v", c.x, c.y, c.want, got)
		}
		if got := v.MapX(c.x); got != c.want[0] {
			t.Errorf("MapX(%g): want %g, got %g", c.x, c.want[0], got)
		}
		if got := v.MapY(c.y); got != c.want[1] {
			t.Errorf("MapY(%g): want %g, got %g", c.y, c.want[1], got)
		}
	}
}
