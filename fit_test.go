package strokeseg

import (
	"errors"
	"math"
	"testing"
)

func TestErrorModel_StraightFivePoints(t *testing.T) {
	s := strokeOf(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0))
	m := NewErrorModel(s, DefaultErrorTolerance)

	line, err := m.LineFit(0, 4)
	if err != nil {
		t.Fatalf("LineFit error = %v", err)
	}
	if line.Error != 0 {
		t.Errorf("line error = %v, want 0", line.Error)
	}

	arc, err := m.ArcFit(0, 4)
	if err != nil {
		t.Fatalf("ArcFit error = %v", err)
	}
	if !math.IsInf(arc.Error, 1) {
		t.Errorf("arc error = %v, want +Inf", arc.Error)
	}

	best, err := m.Best(0, 4)
	if err != nil {
		t.Fatalf("Best error = %v", err)
	}
	if best.Kind != PrimitiveLine {
		t.Errorf("Best kind = %v, want line", best.Kind)
	}
	if best.Line.P1 != Pt(0, 0) || best.Line.P2 != Pt(4, 0) {
		t.Errorf("Best line = %v, want (0,0)-(4,0)", best.Line)
	}
}

func TestErrorModel_CollinearRanges(t *testing.T) {
	tests := []struct {
		name string
		dir  Point
		n    int
	}{
		{"horizontal", Pt(7, 0), 30},
		{"vertical", Pt(0, 3), 12},
		{"diagonal", Pt(2.5, -1.25), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := make([]Point, tt.n)
			for i := range pts {
				pts[i] = Pt(3, 11).Add(tt.dir.Mul(float64(i)))
			}
			m := NewErrorModel(strokeOf(pts...), DefaultErrorTolerance)

			line, _ := m.LineFit(0, tt.n-1)
			if line.Error > 1e-9 {
				t.Errorf("line error = %v, want ~0", line.Error)
			}
			arc, _ := m.ArcFit(0, tt.n-1)
			if !math.IsInf(arc.Error, 1) {
				t.Errorf("arc error = %v, want +Inf", arc.Error)
			}
			best, _ := m.Best(0, tt.n-1)
			if best.Kind != PrimitiveLine {
				t.Errorf("Best kind = %v, want line", best.Kind)
			}
		})
	}
}

func TestErrorModel_Arc(t *testing.T) {
	tests := []struct {
		name      string
		radius    float64
		noise     float64
		radiusEps float64
	}{
		{"exact r=100", 100, 0, 1e-6},
		{"exact r=10", 10, 0, 1e-6},
		{"noisy r=100", 100, 0.2, 1.0},
		{"noisy r=250", 250, 0.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := arcStroke(tt.radius, 40, tt.noise)
			m := NewErrorModel(s, DefaultErrorTolerance)
			fit, err := m.ArcFit(0, s.Len()-1)
			if err != nil {
				t.Fatalf("ArcFit error = %v", err)
			}
			if fit.Kind != PrimitiveArc {
				t.Fatalf("ArcFit kind = %v, want arc", fit.Kind)
			}
			if math.Abs(fit.Arc.Radius-tt.radius) > tt.radiusEps {
				t.Errorf("radius = %v, want %v ± %v", fit.Arc.Radius, tt.radius, tt.radiusEps)
			}
			if !m.Tolerant(fit) {
				t.Errorf("arc error %v not tolerant", fit.Error)
			}
			if fit.Arc.Start != s.Point(0) || fit.Arc.End != s.Point(s.Len()-1) {
				t.Errorf("arc ends = %v, %v, want stroke ends", fit.Arc.Start, fit.Arc.End)
			}
		})
	}
}

func TestErrorModel_BestPrefersArcOnLongCurves(t *testing.T) {
	s := arcStroke(100, 40, 0)
	m := NewErrorModel(s, DefaultErrorTolerance)

	line, _ := m.LineFit(0, s.Len()-1)
	if m.Tolerant(line) {
		t.Fatalf("line error %v unexpectedly tolerant", line.Error)
	}
	best, err := m.Best(0, s.Len()-1)
	if err != nil {
		t.Fatalf("Best error = %v", err)
	}
	if best.Kind != PrimitiveArc {
		t.Errorf("Best kind = %v, want arc", best.Kind)
	}
	if math.Abs(best.Arc.Radius-100) > 1e-6 {
		t.Errorf("Best radius = %v, want 100", best.Arc.Radius)
	}
}

func TestErrorModel_BestForcesLineOnShortRanges(t *testing.T) {
	// A tight curve shorter than MinArcLength stays a line even though
	// its line fit is not tolerant.
	s := arcStroke(10, 20, 0)
	if s.PathLength(0, s.Len()-1) >= MinArcLength {
		t.Fatalf("test stroke too long: %v", s.PathLength(0, s.Len()-1))
	}
	m := NewErrorModel(s, 0.5)
	line, _ := m.LineFit(0, s.Len()-1)
	if m.Tolerant(line) {
		t.Fatalf("line error %v unexpectedly tolerant", line.Error)
	}
	best, _ := m.Best(0, s.Len()-1)
	if best.Kind != PrimitiveLine {
		t.Errorf("Best kind = %v, want line", best.Kind)
	}
}

func TestErrorModel_TolerantLineWins(t *testing.T) {
	s := arcStroke(100, 40, 0)
	m := NewErrorModel(s, 100)
	line, _ := m.LineFit(0, 10)
	if !m.Tolerant(line) {
		t.Fatalf("line error %v not tolerant", line.Error)
	}
	best, _ := m.Best(0, 10)
	if best.Kind != PrimitiveLine {
		t.Errorf("Best kind = %v, want line", best.Kind)
	}
}

func TestErrorModel_ArcPenalty(t *testing.T) {
	// Two interior samples give radii 10 and 10+1/6; the median picks the
	// circle through (0, 12), which misses (0, 10) by exactly 2.
	s := strokeOf(Pt(10, 0), Pt(0, 10), Pt(0, 12), Pt(-10, 0))
	m := NewErrorModel(s, DefaultErrorTolerance)
	fit, err := m.ArcFit(0, 3)
	if err != nil {
		t.Fatalf("ArcFit error = %v", err)
	}
	if fit.Kind != PrimitiveArc {
		t.Fatalf("ArcFit kind = %v, want arc", fit.Kind)
	}
	if fit.Arc.Mid != Pt(0, 12) {
		t.Errorf("median circle through %v, want (0, 12)", fit.Arc.Mid)
	}
	if math.Abs(fit.Arc.Radius-(10+1.0/6)) > 1e-9 {
		t.Errorf("radius = %v, want %v", fit.Arc.Radius, 10+1.0/6)
	}
	// 1.5 * (2*2) / 3
	if math.Abs(fit.Error-2) > 1e-9 {
		t.Errorf("error = %v, want 2", fit.Error)
	}
}

func TestErrorModel_SingleSample(t *testing.T) {
	m := NewErrorModel(strokeOf(Pt(1, 1), Pt(2, 2)), DefaultErrorTolerance)
	fit, err := m.Best(1, 1)
	if err != nil {
		t.Fatalf("Best(1, 1) error = %v", err)
	}
	if fit.Kind != PrimitiveLine || fit.Error != 0 {
		t.Errorf("Best(1, 1) = %v, want zero-error line", fit)
	}
}

func TestErrorModel_RangeErrors(t *testing.T) {
	m := NewErrorModel(strokeOf(Pt(0, 0), Pt(1, 0), Pt(2, 0)), DefaultErrorTolerance)
	for _, r := range [][2]int{{-1, 2}, {0, 3}, {2, 1}} {
		if _, err := m.Best(r[0], r[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Best(%d, %d) error = %v, want ErrIndexOutOfRange", r[0], r[1], err)
		}
	}
}

func TestErrorModel_NaN(t *testing.T) {
	m := NewErrorModel(strokeOf(Pt(0, 0), Pt(math.NaN(), 1), Pt(2, 0)), DefaultErrorTolerance)
	if _, err := m.LineFit(0, 2); !errors.Is(err, ErrNumericCorruption) {
		t.Errorf("LineFit error = %v, want ErrNumericCorruption", err)
	}
}
