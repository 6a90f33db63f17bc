package tessellate

import "math"

// View is the rectangle of the plane shown on screen.
type View struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// Vertex is a point in normalized device coordinates. The third coordinate is
// always zero; it is there so strips can be uploaded as 3-component vertex
// buffers directly.
type Vertex [3]float32

// Strip is a connected run of vertices, drawn as a line strip.
type Strip []Vertex

// MapX maps x from [v.MinX, v.MaxX] to [-1, 1].
func (v View) MapX(x float32) float32 {
	return ndc(x, v.MinX, v.MaxX)
}

// MapY maps y from [v.MinY, v.MaxY] to [-1, 1].
func (v View) MapY(y float32) float32 {
	return ndc(y, v.MinY, v.MaxY)
}

// Map maps a point of the plane to normalized device coordinates.
func (v View) Map(x, y float32) Vertex {
	return Vertex{v.MapX(x), v.MapY(y), 0}
}

func ndc(t, lo, hi float32) float32 {
	return float32((float64(t)-float64(lo))/(float64(hi)-float64(lo))*2 - 1)
}

// Valid reports whether the view has finite bounds and positive extent on
// both axes.
func (v View) Valid() bool {
	for _, t := range [...]float32{v.MinX, v.MaxX, v.MinY, v.MaxY} {
		if !finite(t) {
			return false
		}
	}
	return v.MinX < v.MaxX && v.MinY < v.MaxY
}

func finite(t float32) bool {
	return !math.IsNaN(float64(t)) && !math.IsInf(float64(t), 0)
}
