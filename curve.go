package strokeseg

import (
	"math"
)

// Geometric primitives that a stroke segment can be fitted to.
// Based on the curve types of the gg geometry package.

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// PrimitiveKind identifies the geometric primitive chosen for a fit.
type PrimitiveKind int

const (
	// PrimitiveLine indicates a straight line segment.
	PrimitiveLine PrimitiveKind = iota

	// PrimitiveArc indicates a circular arc.
	PrimitiveArc
)

// String returns "line" or "arc".
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveLine:
		return "line"
	case PrimitiveArc:
		return "arc"
	default:
		return "unknown"
	}
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line is a straight segment from P1 to P2.
type Line struct {
	P1, P2 Point
}

// NewLine creates a line segment.
func NewLine(p1, p2 Point) Line {
	return Line{P1: p1, P2: p2}
}

// Eval evaluates the line at parameter t in [0, 1].
func (l Line) Eval(t float64) Point {
	return l.P1.Lerp(l.P2, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P1.Distance(l.P2)
}

// Midpoint returns the midpoint of the line segment.
func (l Line) Midpoint() Point {
	return l.Eval(0.5)
}

// -------------------------------------------------------------------
// Arc
// -------------------------------------------------------------------

// Arc is a circular arc running from Start through Mid to End.
// Center and Radius describe the supporting circle.
type Arc struct {
	Center Point
	Radius float64
	Start  Point
	Mid    Point
	End    Point
}

// circleEpsilon is the relative collinearity threshold below which three
// points are considered not to define a circle.
const circleEpsilon = 1e-9

// CircleThrough returns the arc through a, m and b.
// ok is false when the three points are (nearly) collinear or coincident,
// in which case no circle center is defined.
func CircleThrough(a, m, b Point) (arc Arc, ok bool) {
	ab := b.Sub(a)
	am := m.Sub(a)
	det := 2 * am.Cross(ab)
	scale := math.Max(am.LengthSquared(), ab.LengthSquared())
	if scale == 0 || math.Abs(det) <= circleEpsilon*scale {
		return Arc{}, false
	}

	amSq := am.LengthSquared()
	abSq := ab.LengthSquared()
	cx := (ab.Y*amSq - am.Y*abSq) / det
	cy := (am.X*abSq - ab.X*amSq) / det
	center := Point{X: a.X + cx, Y: a.Y + cy}
	radius := math.Hypot(cx, cy)
	if !center.IsFinite() || !isFinite(radius) {
		return Arc{}, false
	}

	return Arc{Center: center, Radius: radius, Start: a, Mid: m, End: b}, true
}

// Angles returns the start angle of the arc and its signed sweep in radians.
// A positive sweep runs counter-clockwise in a y-up frame.
// The sweep always passes through Mid.
func (a Arc) Angles() (start, sweep float64) {
	start = a.Start.Sub(a.Center).Angle()
	mid := normalizeAngle(a.Mid.Sub(a.Center).Angle() - start)
	end := normalizeAngle(a.End.Sub(a.Center).Angle() - start)
	if end == 0 {
		end = 2 * math.Pi
	}
	if mid <= end {
		return start, end
	}
	return start, end - 2*math.Pi
}

// Eval evaluates the arc at parameter t in [0, 1].
func (a Arc) Eval(t float64) Point {
	start, sweep := a.Angles()
	theta := start + sweep*t
	return Point{
		X: a.Center.X + a.Radius*math.Cos(theta),
		Y: a.Center.Y + a.Radius*math.Sin(theta),
	}
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	_, sweep := a.Angles()
	return math.Abs(sweep) * a.Radius
}

// Flatten approximates the arc by a polyline whose chords deviate from
// the arc by at most tolerance. The first and last points are Start and End.
func (a Arc) Flatten(tolerance float64) []Point {
	_, sweep := a.Angles()
	n := 1
	if tolerance > 0 && a.Radius > tolerance {
		step := 2 * math.Acos(1-tolerance/a.Radius)
		n = int(math.Ceil(math.Abs(sweep) / step))
	}
	if n < 1 {
		n = 1
	}
	points := make([]Point, 0, n+1)
	points = append(points, a.Start)
	for i := 1; i < n; i++ {
		points = append(points, a.Eval(float64(i)/float64(n)))
	}
	return append(points, a.End)
}

// normalizeAngle maps an angle into [0, 2*pi).
func normalizeAngle(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}
