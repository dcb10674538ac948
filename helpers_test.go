package strokeseg

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// strokeOf builds a stroke from positions with unit speed.
func strokeOf(pts ...Point) Stroke {
	samples := make([]Sample, len(pts))
	for i, p := range pts {
		samples[i] = Sample{X: p.X, Y: p.Y, Speed: 1, T: float64(i)}
	}
	return NewStroke(samples)
}

// lStroke is an L drawn right along y=0 to the corner (200, 0) at index
// 40, then along x=200 to (200, 200) at index 80, with samples 5 units
// apart. The pen slows down at both ends and at the corner.
func lStroke() Stroke {
	const legSamples = 40
	samples := make([]Sample, 0, 2*legSamples+1)
	for i := 0; i <= 2*legSamples; i++ {
		var x, y float64
		k := i
		if i <= legSamples {
			x = 5 * float64(i)
		} else {
			x = 200
			y = 5 * float64(i-legSamples)
			k = i - legSamples
		}
		speed := 10 + 90*math.Sin(math.Pi*float64(k)/legSamples)
		samples = append(samples, Sample{X: x, Y: y, Speed: speed, T: float64(i)})
	}
	return NewStroke(samples)
}

// lPoints returns the raw timed points of lStroke, with timestamps chosen
// so that the derived speeds follow the same profile.
func lPoints() []TimedPoint {
	s := lStroke()
	pts := make([]TimedPoint, s.Len())
	var t float64
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			v := (s.At(i-1).Speed + s.At(i).Speed) / 2
			t += s.Point(i - 1).Distance(s.Point(i)) / v
		}
		pts[i] = TimedPoint{X: s.At(i).X, Y: s.At(i).Y, T: t}
	}
	return pts
}

// arcStroke samples a quarter circle of the given radius around the origin.
// Interior samples are pushed alternately outward and inward by noise.
func arcStroke(radius float64, n int, noise float64) Stroke {
	samples := make([]Sample, n)
	for i := 0; i < n; i++ {
		theta := math.Pi / 2 * float64(i) / float64(n-1)
		r := radius
		if i > 0 && i < n-1 {
			if i%2 == 0 {
				r += noise
			} else {
				r -= noise
			}
		}
		samples[i] = Sample{X: r * math.Cos(theta), Y: r * math.Sin(theta), Speed: 1, T: float64(i)}
	}
	return NewStroke(samples)
}

// claimRange returns a finished region claiming [lo, hi] without any
// tolerance test or trimming.
func claimRange(t *testing.T, m *ErrorModel, id, lo, hi int) *Region {
	t.Helper()
	r, err := NewRegion(m, id, lo)
	if err != nil {
		t.Fatalf("NewRegion(%d) error = %v", lo, err)
	}
	for idx := lo + 1; idx <= hi; idx++ {
		fit, err := m.Best(lo, idx)
		if err != nil {
			t.Fatalf("Best(%d, %d) error = %v", lo, idx, err)
		}
		if ok, err := r.ExpandTo(idx, fit, false); !ok || err != nil {
			t.Fatalf("ExpandTo(%d) = %v, %v", idx, ok, err)
		}
	}
	r.fit, _ = m.Best(lo, hi)
	r.state = RegionFinished
	return r
}
