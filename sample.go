package strokeseg

// Sample is one point of a stroke, annotated with the kinematic attributes
// produced by the upstream preprocessor.
type Sample struct {
	X         float64 // X coordinate.
	Y         float64 // Y coordinate.
	Speed     float64 // Instantaneous pen speed in units per time unit.
	Curvature float64 // Signed local curvature (radians per unit length).
	T         float64 // Timestamp.
}

// Point returns the sample position.
func (s Sample) Point() Point {
	return Point{X: s.X, Y: s.Y}
}

// Stroke is an immutable, ordered sequence of samples.
// The zero value is an empty stroke.
type Stroke struct {
	samples []Sample
}

// NewStroke creates a stroke from already annotated samples.
// The slice is copied, so later changes by the caller are not observed.
func NewStroke(samples []Sample) Stroke {
	s := make([]Sample, len(samples))
	copy(s, samples)
	return Stroke{samples: s}
}

// Len returns the number of samples.
func (s Stroke) Len() int {
	return len(s.samples)
}

// At returns the sample at index i.
func (s Stroke) At(i int) Sample {
	return s.samples[i]
}

// Point returns the position of the sample at index i.
func (s Stroke) Point(i int) Point {
	return s.samples[i].Point()
}

// Samples returns a copy of the samples.
func (s Stroke) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// Contains reports whether i is a valid sample index.
func (s Stroke) Contains(i int) bool {
	return i >= 0 && i < len(s.samples)
}

// PathLength returns the polyline length from sample a to sample b inclusive.
// It returns 0 when b <= a.
func (s Stroke) PathLength(a, b int) float64 {
	var length float64
	for i := a + 1; i <= b; i++ {
		length += s.Point(i - 1).Distance(s.Point(i))
	}
	return length
}

// MeanSpeed returns the sum of all sample speeds divided by the sample count.
func (s Stroke) MeanSpeed() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	var total float64
	for _, smp := range s.samples {
		total += smp.Speed
	}
	return total / float64(len(s.samples))
}

// Bounds returns the axis-aligned bounding box of the stroke.
// An empty stroke yields the zero Rect.
func (s Stroke) Bounds() Rect {
	if len(s.samples) == 0 {
		return Rect{}
	}
	r := Rect{Min: s.Point(0), Max: s.Point(0)}
	for i := 1; i < len(s.samples); i++ {
		p := s.Point(i)
		r = r.Union(Rect{Min: p, Max: p})
	}
	return r
}
