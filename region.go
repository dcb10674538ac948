package strokeseg

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// RegionState is the lifecycle state of a Region.
type RegionState int

const (
	// RegionGrowing means the region may still claim neighboring samples.
	RegionGrowing RegionState = iota

	// RegionFinished means no further admissible expansion exists.
	RegionFinished

	// RegionSubsumed means the region lay entirely inside another region
	// during conflict resolution and was given up.
	RegionSubsumed
)

// String returns the state name.
func (s RegionState) String() string {
	switch s {
	case RegionGrowing:
		return "growing"
	case RegionFinished:
		return "finished"
	case RegionSubsumed:
		return "subsumed"
	default:
		return fmt.Sprintf("RegionState(%d)", int(s))
	}
}

// Region is a greedily grown claim over a contiguous index range of a
// stroke, fitted by a single line or arc.
//
// A Region starts at a seed index and grows one sample at a time through
// Expand until no neighbor can be added within tolerance. Between
// growth steps the claimed set always has one fit history entry per
// claimed index; this is verified when the region finishes.
//
// A Region is not safe for concurrent use.
type Region struct {
	id      int
	model   *ErrorModel
	claimed []int // in claim order
	taboo   map[int]struct{}
	history []Fit
	fit     Fit
	state   RegionState
	trim    float64
	logger  *slog.Logger
}

// NewRegion creates a growing region claiming only seed.
func NewRegion(model *ErrorModel, id, seed int) (*Region, error) {
	return newRegion(model, id, seed, 0, Logger())
}

func newRegion(model *ErrorModel, id, seed int, trim float64, logger *slog.Logger) (*Region, error) {
	if !model.Stroke().Contains(seed) {
		return nil, fmt.Errorf("%w: seed %d of %d samples", ErrIndexOutOfRange, seed, model.Stroke().Len())
	}
	seedFit := Fit{Kind: PrimitiveLine, Line: NewLine(model.Stroke().Point(seed), model.Stroke().Point(seed))}
	return &Region{
		id:      id,
		model:   model,
		claimed: []int{seed},
		taboo:   make(map[int]struct{}),
		history: []Fit{seedFit},
		fit:     seedFit,
		state:   RegionGrowing,
		trim:    trim,
		logger:  logger,
	}, nil
}

// ID returns the creation order of the region within its stroke.
func (r *Region) ID() int { return r.id }

// State returns the lifecycle state.
func (r *Region) State() RegionState { return r.state }

// Finished reports whether the region stopped growing.
func (r *Region) Finished() bool { return r.state != RegionGrowing }

// Fit returns the most recent fit of the region.
func (r *Region) Fit() Fit { return r.fit }

// Empty reports whether the region claims no index.
func (r *Region) Empty() bool { return len(r.claimed) == 0 }

// Start returns the smallest claimed index, or -1 for an empty region.
func (r *Region) Start() int {
	if len(r.claimed) == 0 {
		return -1
	}
	lo := r.claimed[0]
	for _, idx := range r.claimed[1:] {
		lo = min(lo, idx)
	}
	return lo
}

// End returns the largest claimed index, or -1 for an empty region.
func (r *Region) End() int {
	if len(r.claimed) == 0 {
		return -1
	}
	hi := r.claimed[0]
	for _, idx := range r.claimed[1:] {
		hi = max(hi, idx)
	}
	return hi
}

// Claimed returns the claimed indices in ascending order.
func (r *Region) Claimed() []int {
	out := make([]int, len(r.claimed))
	copy(out, r.claimed)
	sort.Ints(out)
	return out
}

// Taboo returns the indices rejected for this region in ascending order.
func (r *Region) Taboo() []int {
	out := make([]int, 0, len(r.taboo))
	for idx := range r.taboo {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// IsTaboo reports whether idx was rejected for this region.
func (r *Region) IsTaboo(idx int) bool {
	_, ok := r.taboo[idx]
	return ok
}

// History returns the error of the best fit after each growth step.
func (r *Region) History() []float64 {
	out := make([]float64, len(r.history))
	for i, f := range r.history {
		out[i] = f.Error
	}
	return out
}

// Expand performs one growth step and returns the index claimed by it,
// or -1 if nothing was claimed.
//
// Both neighbors of the claimed range are measured unless they lie outside
// the stroke or are taboo. The neighbor with the strictly lower error is
// tried first; an exact tie between finite errors grows forward. A
// neighbor whose fit is not tolerant becomes taboo. When neither neighbor
// can be measured the region finishes.
func (r *Region) Expand() (int, error) {
	if r.state != RegionGrowing {
		return -1, nil
	}
	start, end := r.Start(), r.End()
	prev, next := start-1, end+1

	prevFit, nextFit := infiniteFit(), infiniteFit()
	var err error
	if prev >= 0 && !r.IsTaboo(prev) {
		if prevFit, err = r.model.Best(prev, end); err != nil {
			return -1, err
		}
	}
	if next < r.model.Stroke().Len() && !r.IsTaboo(next) {
		if nextFit, err = r.model.Best(start, next); err != nil {
			return -1, err
		}
	}

	switch {
	case prevFit.Error < nextFit.Error:
		return r.grow(prev, prevFit)
	case nextFit.Error < prevFit.Error:
		return r.grow(next, nextFit)
	case !math.IsInf(prevFit.Error, 1) && !math.IsInf(nextFit.Error, 1):
		// Exact tie: forward growth wins.
		return r.grow(next, nextFit)
	default:
		return -1, r.finalize()
	}
}

func (r *Region) grow(idx int, fit Fit) (int, error) {
	ok, err := r.ExpandTo(idx, fit, true)
	if err != nil {
		return -1, err
	}
	if !ok {
		r.taboo[idx] = struct{}{}
		r.logger.Debug("strokeseg: region rejected index",
			"region", r.id, "index", idx, "fit", fit.String())
		return -1, nil
	}
	return idx, nil
}

// ExpandTo claims idx with the given fit. With toleranceTest set the claim
// is accepted only if fit is tolerant; without it the claim is forced.
// It reports whether idx was claimed. An idx outside the stroke is an
// error.
func (r *Region) ExpandTo(idx int, fit Fit, toleranceTest bool) (bool, error) {
	if !r.model.Stroke().Contains(idx) {
		return false, fmt.Errorf("%w: region %d cannot expand to %d of %d samples",
			ErrIndexOutOfRange, r.id, idx, r.model.Stroke().Len())
	}
	if toleranceTest && !r.model.Tolerant(fit) {
		return false, nil
	}
	r.claimed = append(r.claimed, idx)
	r.history = append(r.history, fit)
	r.fit = fit
	return true, nil
}

// Retreat removes idx from the claimed set. The taboo set and the fit
// history are left untouched. It reports whether idx was claimed.
func (r *Region) Retreat(idx int) bool {
	for i, c := range r.claimed {
		if c == idx {
			r.claimed = append(r.claimed[:i], r.claimed[i+1:]...)
			return true
		}
	}
	return false
}

// Finish stops growth immediately, trimming and refitting the region as if
// no neighbor were admissible. It is a no-op on a finished region.
func (r *Region) Finish() error {
	if r.state != RegionGrowing {
		return nil
	}
	return r.finalize()
}

// finalize trims the tail that grew while the error kept increasing, then
// refits the remaining range.
func (r *Region) finalize() error {
	if len(r.history) != len(r.claimed) {
		return fmt.Errorf("%w: region %d has %d history entries for %d claimed indices",
			ErrInvariantViolation, r.id, len(r.history), len(r.claimed))
	}

	dropped := 0
	for n := len(r.history); n > 1 && r.history[n-1].Error-r.history[n-2].Error > r.trim; n-- {
		r.history = r.history[:n-1]
		r.claimed = r.claimed[:n-1]
		dropped++
	}

	fit, err := r.model.Best(r.Start(), r.End())
	if err != nil {
		return err
	}
	r.fit = fit
	r.state = RegionFinished
	r.logger.Debug("strokeseg: region finished",
		"region", r.id, "start", r.Start(), "end", r.End(), "dropped", dropped, "fit", fit.String())
	return nil
}

// subsume gives the region up in favor of one that contains it.
func (r *Region) subsume() {
	r.state = RegionSubsumed
}

// Overlap returns the indices shared by the [Start, End] ranges of r and
// other, in ascending order. It is empty when the ranges are disjoint or
// either region is empty.
func (r *Region) Overlap(other *Region) []int {
	if r.Empty() || other.Empty() {
		return nil
	}
	lo := max(r.Start(), other.Start())
	hi := min(r.End(), other.End())
	if lo > hi {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

// Segment returns the output record of the region.
func (r *Region) Segment() Segment {
	return Segment{
		Start: r.Start(),
		End:   r.End(),
		Kind:  r.fit.Kind,
		Line:  r.fit.Line,
		Arc:   r.fit.Arc,
		Error: r.fit.Error,
	}
}

// String describes the region for diagnostics.
func (r *Region) String() string {
	start, end := r.Start(), r.End()
	var length float64
	if start >= 0 {
		length = r.model.Stroke().PathLength(start, end)
	}
	return fmt.Sprintf("Region#%d[%d, %d (length: %.2f, points: %d, %s, %s)]",
		r.id, start, end, length, len(r.claimed), r.fit, r.state)
}
