package strokeseg

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// Segment is one final region of a segmented stroke.
// The Kind field indicates which of Line or Arc is meaningful.
type Segment struct {
	Start int           // First sample index.
	End   int           // Last sample index.
	Kind  PrimitiveKind // Chosen primitive.
	Line  Line          // Line geometry, for PrimitiveLine.
	Arc   Arc           // Arc geometry, for PrimitiveArc.
	Error float64       // Normalized fit error.
}

// Result is the partition of one stroke.
type Result struct {
	// Segments are the final regions ordered by start index. Neighbors
	// that were in contention share their boundary sample.
	Segments []Segment

	// Seeds are the sample indices regions were grown from.
	Seeds []int

	// Subsumed counts regions dropped because another region covered them.
	Subsumed int
}

// Sink receives every successfully segmented stroke. Downstream
// recognizers and renderers implement it.
type Sink interface {
	Consume(ctx context.Context, stroke Stroke, res *Result) error
}

// Segmenter partitions finished strokes into line and arc segments by
// hungry region growing.
//
// A Segmenter is immutable after New and safe for concurrent use; each
// call processes one stroke on the calling goroutine.
type Segmenter struct {
	config Config
	logger *slog.Logger
	sinks  []Sink
}

// New creates a Segmenter. Without options it uses DefaultConfig.
func New(opts ...Option) (*Segmenter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}
	logger := o.logger
	if logger == nil {
		logger = Logger()
	}
	return &Segmenter{config: o.config, logger: logger, sinks: o.sinks}, nil
}

// Config returns the parameters of the Segmenter.
func (s *Segmenter) Config() Config {
	return s.config
}

// SegmentPoints annotates raw points with speed and curvature over the
// configured window, then segments the resulting stroke.
func (s *Segmenter) SegmentPoints(ctx context.Context, pts []TimedPoint) (*Result, error) {
	return s.Segment(ctx, Annotate(pts, s.config.CurvatureWindow))
}

// Segment partitions stroke and hands the result to every sink.
//
// A failed stroke is reported as an error and leaves no partial result;
// the caller decides whether to skip or retry it. The error wraps one of
// ErrEmptyStroke, ErrNumericCorruption, ErrInvariantViolation,
// ErrIndexOutOfRange, ErrUnresolvableContention or the context error.
func (s *Segmenter) Segment(ctx context.Context, stroke Stroke) (*Result, error) {
	res, err := s.segment(ctx, stroke)
	if err != nil {
		return nil, err
	}
	for _, sink := range s.sinks {
		if err := sink.Consume(ctx, stroke, res); err != nil {
			return res, fmt.Errorf("strokeseg: sink: %w", err)
		}
	}
	return res, nil
}

func (s *Segmenter) segment(ctx context.Context, stroke Stroke) (*Result, error) {
	if stroke.Len() == 0 {
		return nil, ErrEmptyStroke
	}
	model := NewErrorModel(stroke, s.config.ErrorTolerance)

	seeds := Seeds(stroke, s.config.SpeedMultiplier)
	regions := make([]*Region, 0, len(seeds))
	for i, seed := range seeds {
		r, err := newRegion(model, i, seed, s.config.TrimThreshold, s.logger)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}

	budget := s.config.MaxRegionSteps
	if budget == 0 {
		budget = 2*stroke.Len() + 2
	}
	for _, r := range regions {
		if err := ctx.Err(); err != nil {
			return nil, s.fail(stroke, regions, nil, err)
		}
		if err := s.grow(r, budget); err != nil {
			return nil, s.fail(stroke, regions, nil, err)
		}
	}

	contentions := Contentions(regions)
	resolver := &Resolver{model: model, logger: s.logger}
	if err := resolver.ResolveAll(ctx, contentions); err != nil {
		return nil, s.fail(stroke, regions, contentions, err)
	}

	res := &Result{Seeds: seeds}
	for _, r := range regions {
		if r.State() == RegionSubsumed {
			res.Subsumed++
			continue
		}
		res.Segments = append(res.Segments, r.Segment())
	}
	sort.SliceStable(res.Segments, func(i, j int) bool {
		return res.Segments[i].Start < res.Segments[j].Start
	})

	s.logger.Info("strokeseg: stroke segmented",
		"samples", stroke.Len(),
		"seeds", len(seeds),
		"contentions", len(contentions),
		"segments", len(res.Segments),
		"subsumed", res.Subsumed)
	return res, nil
}

// grow drives r until it finishes or runs out of steps.
func (s *Segmenter) grow(r *Region, budget int) error {
	for steps := 0; !r.Finished(); steps++ {
		if steps >= budget {
			s.logger.Warn("strokeseg: region step budget exhausted",
				"region", r.ID(), "steps", steps)
			return r.Finish()
		}
		if _, err := r.Expand(); err != nil {
			return err
		}
	}
	return nil
}

// fail logs the full region and contention state of a failed stroke and
// returns err wrapped with the stroke size.
func (s *Segmenter) fail(stroke Stroke, regions []*Region, contentions []Contention, err error) error {
	dump := make([]string, len(regions))
	for i, r := range regions {
		dump[i] = r.String()
	}
	cdump := make([]string, len(contentions))
	for i, c := range contentions {
		cdump[i] = c.String()
	}
	s.logger.Error("strokeseg: stroke failed",
		"samples", stroke.Len(),
		"error", err,
		"regions", dump,
		"contentions", cdump)
	return fmt.Errorf("strokeseg: segment stroke of %d samples: %w", stroke.Len(), err)
}
