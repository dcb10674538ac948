package strokeseg

import "github.com/gogpu/strokeseg/internal/kinematics"

// TimedPoint is a raw pen sample before kinematic annotation.
type TimedPoint struct {
	X, Y float64
	T    float64
}

// Annotate builds a stroke from raw timed points, computing each sample's
// speed and its curvature over the given Euclidean window.
func Annotate(pts []TimedPoint, window float64) Stroke {
	kp := make([]kinematics.Point, len(pts))
	ts := make([]float64, len(pts))
	for i, p := range pts {
		kp[i] = kinematics.Point{X: p.X, Y: p.Y}
		ts[i] = p.T
	}
	speeds := kinematics.Speeds(kp, ts)
	curv := kinematics.Curvatures(kp, window)

	samples := make([]Sample, len(pts))
	for i, p := range pts {
		samples[i] = Sample{X: p.X, Y: p.Y, Speed: speeds[i], Curvature: curv[i], T: p.T}
	}
	return Stroke{samples: samples}
}
