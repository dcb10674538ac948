// Package kinematics annotates raw pen samples with speed and curvature.
//
// It plays the role of the upstream preprocessor for callers that only have
// positions and timestamps. Speeds are central differences of position over
// time; curvature is the turning angle over a Euclidean window divided by the
// path length the window covers.
package kinematics

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Speeds returns the pen speed at every sample.
//
// Interior samples use the central difference of their neighbors, the first
// and last samples a one-sided difference. A non-increasing timestamp pair
// yields zero speed rather than an infinite one.
func Speeds(pts []Point, ts []float64) []float64 {
	n := len(pts)
	speeds := make([]float64, n)
	if n < 2 || len(ts) != n {
		return speeds
	}
	for i := range pts {
		prev := max(i-1, 0)
		next := min(i+1, n-1)
		dt := ts[next] - ts[prev]
		if dt <= 0 {
			continue
		}
		speeds[i] = pts[next].Distance(pts[prev]) / dt
	}
	return speeds
}

// Curvatures returns the signed curvature at every sample.
//
// For sample i the window reaches back to the nearest earlier sample at
// least window/2 away and forward to the nearest later one, clamped to the
// ends of the stroke. The signed angle between the two chords, divided by
// the path length between the window ends, is the curvature. Samples whose
// window collapses on either side get zero.
func Curvatures(pts []Point, window float64) []float64 {
	n := len(pts)
	curv := make([]float64, n)
	if n < 3 {
		return curv
	}
	cum := cumulativeLength(pts)
	half := window / 2
	for i := range pts {
		a := i
		for a > 0 {
			a--
			if pts[a].Distance(pts[i]) >= half {
				break
			}
		}
		b := i
		for b < n-1 {
			b++
			if pts[b].Distance(pts[i]) >= half {
				break
			}
		}
		if a == i || b == i {
			continue
		}
		v1 := pts[i].Sub(pts[a])
		v2 := pts[b].Sub(pts[i])
		if (v1.X == 0 && v1.Y == 0) || (v2.X == 0 && v2.Y == 0) {
			continue
		}
		length := cum[b] - cum[a]
		if length <= 0 {
			continue
		}
		angle := math.Atan2(v1.X*v2.Y-v1.Y*v2.X, v1.X*v2.X+v1.Y*v2.Y)
		curv[i] = angle / length
	}
	return curv
}

func cumulativeLength(pts []Point) []float64 {
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i].Distance(pts[i-1])
	}
	return cum
}
