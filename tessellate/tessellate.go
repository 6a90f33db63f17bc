// Package tessellate turns a function of one variable into line strips in
// normalized device coordinates, sampling more densely where the curve bends
// and breaking it where the function is undefined or unbounded.
//
// Tessellate does all its work in the calling goroutine and keeps its state
// per call, so it is safe to tessellate from several goroutines at once as
// long as the functions being sampled are.
package tessellate

import "math"

const (
	// Segments is the number of equal top-level segments the view's x range
	// is divided into before adaptive subdivision.
	Segments = 64
	// Tolerance is the largest distance, in normalized device units, that
	// the curve may stray from the chord drawn for it.
	Tolerance = 0.001
	// MaxDepth bounds the recursive subdivision of each top-level segment.
	MaxDepth = 12
)

// Func is a function that can be tessellated. *charter.Expr implements Func.
type Func interface {
	Eval(x float32) float32
}

// Tessellate samples f across view and returns the strips approximating its
// graph. Strips with fewer than two vertices are dropped. If f has a Valid
// method that reports false, or the view has no area, the result is nil.
func Tessellate(f Func, view View) []Strip {
	if v, ok := f.(interface{ Valid() bool }); ok && !v.Valid() {
		return nil
	}
	if !view.Valid() {
		return nil
	}
	b := builder{f: f, view: view}
	step := (float64(view.MaxX) - float64(view.MinX)) / Segments
	x1 := view.MinX
	y1 := b.eval(x1)
	for i := 1; i <= Segments; i++ {
		x2 := float32(float64(view.MinX) + float64(i)*step)
		if i == Segments {
			x2 = view.MaxX
		}
		y2 := b.eval(x2)
		b.segment(x1, y1, x2, y2, 0)
		x1, y1 = x2, y2
	}
	if finite(y1) {
		b.emit(x1, y1)
	}
	b.end()
	return b.strips
}

// builder accumulates strips for one call to Tessellate.
type builder struct {
	f      Func
	view   View
	strips []Strip
	cur    Strip
}

// eval samples the function at x. Samples that are not finite, or that map
// to screen coordinates too large for a float32, are NaN.
func (b *builder) eval(x float32) float32 {
	y := b.f.Eval(x)
	if !finite(y) || !finite(b.view.MapY(y)) {
		return float32(math.NaN())
	}
	return y
}

// emit appends a point to the current strip.
func (b *builder) emit(x, y float32) {
	b.cur = append(b.cur, b.view.Map(x, y))
}

// end finishes the current strip. The next emitted point starts a new one.
func (b *builder) end() {
	if len(b.cur) >= 2 {
		b.strips = append(b.strips, b.cur)
	}
	b.cur = nil
}

// segment tessellates [x1, x2], emitting every vertex except the one at x2,
// which belongs to the next segment.
func (b *builder) segment(x1, y1, x2, y2 float32, depth int) {
	f1, f2 := finite(y1), finite(y2)
	switch {
	case !f1 && !f2:
		// Entirely outside the domain, as far as we can tell.
		b.end()
	case !f1 || !f2:
		// One end is outside the domain. Narrow down where it begins.
		if depth >= MaxDepth {
			if f1 {
				b.emit(x1, y1)
			}
			b.end()
			return
		}
		xm := mid(x1, x2)
		ym := b.eval(xm)
		b.segment(x1, y1, xm, ym, depth+1)
		b.segment(xm, ym, x2, y2, depth+1)
	default:
		dev, ym := b.deviation(x1, y1, x2, y2)
		if dev <= Tolerance {
			b.emit(x1, y1)
			return
		}
		if depth >= MaxDepth {
			// Still not flat at the finest resolution. This is a jump or a
			// pole, and drawing the chord would connect the two sides.
			b.emit(x1, y1)
			b.end()
			return
		}
		xm := mid(x1, x2)
		b.segment(x1, y1, xm, ym, depth+1)
		b.segment(xm, ym, x2, y2, depth+1)
	}
}

// deviation samples the interior of [x1, x2] and returns the largest screen
// distance from a sample to the chord, along with the sample at the
// midpoint. If any sample is outside the domain, the deviation is infinite.
//
// Distances are measured to the chord itself rather than the line through
// it. Near a pole the samples overshoot the endpoints, and a nearly vertical
// line would otherwise pass close to all of them.
func (b *builder) deviation(x1, y1, x2, y2 float32) (dev float64, ym float32) {
	p1 := b.view.Map(x1, y1)
	p2 := b.view.Map(x2, y2)
	dx := float64(p2[0]) - float64(p1[0])
	dy := float64(p2[1]) - float64(p1[1])
	sq := dx*dx + dy*dy
	for _, t := range [...]float64{0.25, 0.5, 0.75} {
		x := float32(float64(x1) + t*(float64(x2)-float64(x1)))
		y := b.eval(x)
		if t == 0.5 {
			ym = y
		}
		if !finite(y) {
			dev = math.Inf(1)
			continue
		}
		p := b.view.Map(x, y)
		px := float64(p[0]) - float64(p1[0])
		py := float64(p[1]) - float64(p1[1])
		var d float64
		switch u := (px*dx + py*dy) / sq; {
		case sq == 0, u <= 0:
			d = math.Hypot(px, py)
		case u >= 1:
			d = math.Hypot(px-dx, py-dy)
		default:
			d = math.Abs(dx*py-dy*px) / math.Sqrt(sq)
		}
		dev = math.Max(dev, d)
	}
	return dev, ym
}

func mid(x1, x2 float32) float32 {
	return float32((float64(x1) + float64(x2)) / 2)
}
