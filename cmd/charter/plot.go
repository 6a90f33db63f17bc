package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/image/vector"

	charter "github.com/Duccs/Math-Charter"
	"github.com/Duccs/Math-Charter/tessellate"
)

// margin is how far outside the view, in normalized device units, lines are
// drawn before being clipped.
const margin = 0.5

// point is a location in pixels.
type point struct{ x, y float64 }

// plotter maps normalized device coordinates onto a w by h pixel canvas.
type plotter struct {
	w, h int
}

func (p plotter) pixel(x, y float64) point {
	return point{(x + 1) / 2 * float64(p.w), (1 - y) / 2 * float64(p.h)}
}

// runs converts strips to connected runs of pixels, clipping away everything
// too far outside the view to draw.
func (p plotter) runs(strips []tessellate.Strip) [][]point {
	var r [][]point
	for _, s := range strips {
		var cur []point
		for i := 1; i < len(s); i++ {
			ax, ay := float64(s[i-1][0]), float64(s[i-1][1])
			bx, by := float64(s[i][0]), float64(s[i][1])
			t0, t1, ok := clip(ax, ay, bx, by, -1-margin, 1+margin)
			if !ok {
				if len(cur) >= 2 {
					r = append(r, cur)
				}
				cur = nil
				continue
			}
			a := p.pixel(ax+t0*(bx-ax), ay+t0*(by-ay))
			b := p.pixel(ax+t1*(bx-ax), ay+t1*(by-ay))
			if len(cur) == 0 || t0 > 0 {
				if len(cur) >= 2 {
					r = append(r, cur)
				}
				cur = []point{a}
			}
			cur = append(cur, b)
			if t1 < 1 {
				r = append(r, cur)
				cur = nil
			}
		}
		if len(cur) >= 2 {
			r = append(r, cur)
		}
	}
	return r
}

// clip clips the segment from (ax, ay) to (bx, by) to the square [lo, hi]²
// using the Liang-Barsky method. It returns the parameters of the visible
// part, or false if none of it is visible.
func clip(ax, ay, bx, by, lo, hi float64) (t0, t1 float64, ok bool) {
	dx, dy := bx-ax, by-ay
	t0, t1 = 0, 1
	edges := [...]struct{ p, q float64 }{
		{-dx, ax - lo},
		{dx, hi - ax},
		{-dy, ay - lo},
		{dy, hi - ay},
	}
	for _, e := range edges {
		if e.p == 0 {
			if e.q < 0 {
				return 0, 0, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > t1 {
				return 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return t0, t1, true
}

// axes returns the pixel segments of the coordinate axes that lie within
// the view.
func (p plotter) axes(v tessellate.View) [][2]point {
	var r [][2]point
	if v.MinY <= 0 && 0 <= v.MaxY {
		y := float64(v.MapY(0))
		r = append(r, [2]point{p.pixel(-1, y), p.pixel(1, y)})
	}
	if v.MinX <= 0 && 0 <= v.MaxX {
		x := float64(v.MapX(0))
		r = append(r, [2]point{p.pixel(x, -1), p.pixel(x, 1)})
	}
	return r
}

// curve is a tessellated curve ready to draw.
type curve struct {
	runs  [][]point
	color color.RGBA
	width float64
}

// layout parses and tessellates every curve in a document.
func layout(doc *Document) (plotter, []curve, error) {
	p := plotter{w: doc.Size.Width, h: doc.Size.Height}
	view := doc.View.view()
	curves := make([]curve, 0, len(doc.Curves))
	for i, c := range doc.Curves {
		e := charter.Parse(c.Expr)
		if !e.Valid() {
			return p, nil, errors.Wrapf(e.Err(), "curve %d", i)
		}
		col, err := parseColor(c.Color)
		if err != nil {
			return p, nil, errors.Wrapf(err, "curve %d", i)
		}
		curves = append(curves, curve{
			runs:  p.runs(tessellate.Tessellate(e, view)),
			color: col,
			width: float64(c.Width),
		})
	}
	return p, curves, nil
}

func writeSVG(w io.Writer, doc *Document) error {
	p, curves, err := layout(doc)
	if err != nil {
		return err
	}
	bg, err := parseColor(doc.Background)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(p.w, p.h)
	canvas.Rect(0, 0, p.w, p.h, "fill:"+hex(bg))
	for _, a := range p.axes(doc.View.view()) {
		canvas.Line(round(a[0].x), round(a[0].y), round(a[1].x), round(a[1].y), "stroke:"+hex(colornames.Gray)+";stroke-width:1")
	}
	for _, c := range curves {
		style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g;stroke-linejoin:round", hex(c.color), c.width)
		for _, r := range c.runs {
			xs := make([]int, len(r))
			ys := make([]int, len(r))
			for i, pt := range r {
				xs[i], ys[i] = round(pt.x), round(pt.y)
			}
			canvas.Polyline(xs, ys, style)
		}
	}
	canvas.End()
	return bw.Flush()
}

func round(x float64) int {
	return int(math.Round(x))
}

func writePNG(w io.Writer, doc *Document) error {
	p, curves, err := layout(doc)
	if err != nil {
		return err
	}
	bg, err := parseColor(doc.Background)
	if err != nil {
		return err
	}
	img := image.NewRGBA(image.Rect(0, 0, p.w, p.h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	z := vector.NewRasterizer(p.w, p.h)
	for _, a := range p.axes(doc.View.view()) {
		stroke(z, a[0], a[1], 1)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(colornames.Gray), image.Point{})
	for _, c := range curves {
		z.Reset(p.w, p.h)
		for _, r := range c.runs {
			for i := 1; i < len(r); i++ {
				stroke(z, r[i-1], r[i], c.width)
			}
		}
		z.Draw(img, img.Bounds(), image.NewUniform(c.color), image.Point{})
	}
	return png.Encode(w, img)
}

// stroke adds a line of the given width from a to b as a quadrilateral. All
// quadrilaterals wind the same way, so overlapping joints don't cancel.
func stroke(z *vector.Rasterizer, a, b point, width float64) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// Extend each end by half the width so consecutive segments overlap.
	hw := width / 2
	ux, uy := dx/l*hw, dy/l*hw
	nx, ny := -uy, ux
	a = point{a.x - ux, a.y - uy}
	b = point{b.x + ux, b.y + uy}
	z.MoveTo(float32(a.x+nx), float32(a.y+ny))
	z.LineTo(float32(b.x+nx), float32(b.y+ny))
	z.LineTo(float32(b.x-nx), float32(b.y-ny))
	z.LineTo(float32(a.x-nx), float32(a.y-ny))
	z.ClosePath()
}
