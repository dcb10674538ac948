package preview

import (
	"math"

	"golang.org/x/image/vector"
)

// point is a device-space point.
type point struct {
	X, Y float64
}

func (p point) sub(q point) point { return point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p point) length() float64 { return math.Hypot(p.X, p.Y) }

// perp returns the unit normal of p scaled by s, or the zero vector for a
// degenerate direction.
func (p point) perp(s float64) point {
	l := p.length()
	if l < 1e-10 {
		return point{}
	}
	return point{X: -p.Y / l * s, Y: p.X / l * s}
}

// strokePolyline adds the outline of a polyline of the given width to z.
//
// Each chord becomes a quad offset by half the width on both sides, and
// each vertex gets a small disc so that joins and caps are round. All
// subpaths wind the same way, so overlapping pieces never cancel.
func strokePolyline(z *vector.Rasterizer, pts []point, width float64) {
	hw := width / 2
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		n := q.sub(p).perp(hw)
		if n == (point{}) {
			continue
		}
		// Same orientation as disc: p-n, q-n, q+n, p+n.
		z.MoveTo(float32(p.X-n.X), float32(p.Y-n.Y))
		z.LineTo(float32(q.X-n.X), float32(q.Y-n.Y))
		z.LineTo(float32(q.X+n.X), float32(q.Y+n.Y))
		z.LineTo(float32(p.X+n.X), float32(p.Y+n.Y))
		z.ClosePath()
	}
	for _, p := range pts {
		disc(z, p, hw)
	}
}

// disc adds a filled circle approximated by a regular polygon.
func disc(z *vector.Rasterizer, c point, r float64) {
	const sides = 16
	if r <= 0 {
		return
	}
	z.MoveTo(float32(c.X+r), float32(c.Y))
	for i := 1; i < sides; i++ {
		theta := 2 * math.Pi * float64(i) / sides
		z.LineTo(float32(c.X+r*math.Cos(theta)), float32(c.Y+r*math.Sin(theta)))
	}
	z.ClosePath()
}
