package strokeseg

import (
	"fmt"
	"math"
	"sort"
)

// MinArcLength is the path length below which a range is never classified
// as an arc unless its line fit is already tolerant.
const MinArcLength = 50.0

// arcPenalty scales arc errors so that near ties favor the line hypothesis.
const arcPenalty = 1.5

// Fit is the result of fitting one primitive to an index range.
// The Kind field indicates which of Line or Arc is meaningful.
type Fit struct {
	Error float64
	Kind  PrimitiveKind
	Line  Line
	Arc   Arc
}

// IsArc reports whether the fit chose the arc hypothesis.
func (f Fit) IsArc() bool {
	return f.Kind == PrimitiveArc
}

// String returns a compact description such as "Error[3.25/line]".
func (f Fit) String() string {
	return fmt.Sprintf("Error[%.2f/%s]", f.Error, f.Kind)
}

// infiniteFit is the fit of a hypothesis that cannot be evaluated.
func infiniteFit() Fit {
	return Fit{Error: math.Inf(1)}
}

// ErrorModel measures how well line and arc primitives approximate index
// ranges of a single stroke.
//
// ErrorModel is a pure function of the stroke and the tolerance; it is safe
// for concurrent use.
type ErrorModel struct {
	stroke    Stroke
	tolerance float64
}

// NewErrorModel creates an error model for stroke. Fits with an error
// strictly below tolerance are considered tolerant.
func NewErrorModel(stroke Stroke, tolerance float64) *ErrorModel {
	return &ErrorModel{stroke: stroke, tolerance: tolerance}
}

// Stroke returns the stroke the model measures.
func (m *ErrorModel) Stroke() Stroke {
	return m.stroke
}

// Tolerance returns the acceptance threshold.
func (m *ErrorModel) Tolerance() float64 {
	return m.tolerance
}

// Tolerant reports whether f is accepted by the model.
func (m *ErrorModel) Tolerant(f Fit) bool {
	return f.Error < m.tolerance
}

func (m *ErrorModel) checkRange(a, b int) error {
	if a > b || !m.stroke.Contains(a) || !m.stroke.Contains(b) {
		return fmt.Errorf("%w: [%d, %d] of %d samples", ErrIndexOutOfRange, a, b, m.stroke.Len())
	}
	return nil
}

func checkFinite(f Fit, what string, a, b int) (Fit, error) {
	if math.IsNaN(f.Error) {
		return Fit{}, fmt.Errorf("%w: %s fit over [%d, %d]", ErrNumericCorruption, what, a, b)
	}
	return f, nil
}

// LineFit fits the line through samples a and b to the range [a, b].
// The error is the sum of squared perpendicular distances divided by b-a.
// A single-sample range yields a zero-error line.
func (m *ErrorModel) LineFit(a, b int) (Fit, error) {
	if err := m.checkRange(a, b); err != nil {
		return Fit{}, err
	}
	p1, p2 := m.stroke.Point(a), m.stroke.Point(b)
	fit := Fit{Kind: PrimitiveLine, Line: NewLine(p1, p2)}
	if a == b {
		return fit, nil
	}

	var sum float64
	for i := a; i <= b; i++ {
		d := m.stroke.Point(i).DistanceToLine(p1, p2)
		sum += d * d
	}
	fit.Error = sum / float64(b-a)
	return checkFinite(fit, "line", a, b)
}

// ArcFit fits a circular arc to the range [a, b].
//
// Every interior sample i yields the circle through a, i and b. The circle
// with the median radius is the representative arc, which keeps noisy
// three-point circles from dominating. When no interior sample defines a
// circle the error is +Inf.
func (m *ErrorModel) ArcFit(a, b int) (Fit, error) {
	if err := m.checkRange(a, b); err != nil {
		return Fit{}, err
	}
	pa, pb := m.stroke.Point(a), m.stroke.Point(b)

	arcs := make([]Arc, 0, max(b-a-1, 0))
	for i := a + 1; i < b; i++ {
		if arc, ok := CircleThrough(pa, m.stroke.Point(i), pb); ok {
			arcs = append(arcs, arc)
		}
	}
	if len(arcs) == 0 {
		return infiniteFit(), nil
	}
	sort.SliceStable(arcs, func(i, j int) bool {
		return arcs[i].Radius < arcs[j].Radius
	})
	best := arcs[len(arcs)/2]

	var sum float64
	for i := a; i <= b; i++ {
		d := m.stroke.Point(i).Distance(best.Center) - best.Radius
		sum += d * d
	}
	fit := Fit{
		Error: arcPenalty * sum / float64(b-a),
		Kind:  PrimitiveArc,
		Arc:   best,
	}
	return checkFinite(fit, "arc", a, b)
}

// Best measures both hypotheses over [a, b] and selects one:
//   - a tolerant line is always chosen, whatever the arc error;
//   - ranges shorter than MinArcLength are forced to a line;
//   - otherwise the hypothesis with the lower error wins, the line only
//     when strictly lower.
func (m *ErrorModel) Best(a, b int) (Fit, error) {
	line, err := m.LineFit(a, b)
	if err != nil {
		return Fit{}, err
	}
	if m.Tolerant(line) {
		return line, nil
	}
	if m.stroke.PathLength(a, b) < MinArcLength {
		return line, nil
	}
	arc, err := m.ArcFit(a, b)
	if err != nil {
		return Fit{}, err
	}
	if line.Error < arc.Error {
		return line, nil
	}
	return arc, nil
}
