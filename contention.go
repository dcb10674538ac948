package strokeseg

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// Contention pairs two finished regions whose ranges overlap.
type Contention struct {
	A, B    *Region
	Overlap []int // overlap at the time the contention was built
}

// Contentions returns every pair of finished regions with overlapping
// ranges, largest overlap first. Equal overlaps keep creation order, so
// the result is deterministic. Regions must be given in creation order.
func Contentions(regions []*Region) []Contention {
	var out []Contention
	for i := 0; i < len(regions)-1; i++ {
		a := regions[i]
		if a.State() != RegionFinished {
			continue
		}
		for j := i + 1; j < len(regions); j++ {
			b := regions[j]
			if b.State() != RegionFinished {
				continue
			}
			if overlap := a.Overlap(b); len(overlap) > 0 {
				out = append(out, Contention{A: a, B: b, Overlap: overlap})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Overlap) > len(out[j].Overlap)
	})
	return out
}

// Resolver arbitrates contentions between regions of one stroke.
type Resolver struct {
	model  *ErrorModel
	logger *slog.Logger
}

// NewResolver creates a resolver measuring fits with model.
func NewResolver(model *ErrorModel) *Resolver {
	return &Resolver{model: model, logger: Logger()}
}

// ResolveAll resolves contentions in order. It stops at the first failure
// or when ctx is done.
func (rs *Resolver) ResolveAll(ctx context.Context, contentions []Contention) error {
	for _, c := range contentions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := rs.Resolve(c); err != nil {
			return err
		}
	}
	return nil
}

// Resolve moves the boundary between the two regions of c to the single
// index that minimizes their combined fit error, and returns that index.
//
// The overlap is measured again from the live regions, since resolving a
// larger contention may already have shrunk or removed it; -1 is returned
// when nothing is left to arbitrate. A region whose range lies inside the
// other's is subsumed instead of split.
func (rs *Resolver) Resolve(c Contention) (int, error) {
	a, b := c.A, c.B
	if a.State() != RegionFinished || b.State() != RegionFinished {
		return -1, nil
	}
	overlap := a.Overlap(b)
	if len(overlap) == 0 {
		return -1, nil
	}
	if inner, outer := containment(a, b); inner != nil {
		inner.subsume()
		rs.logger.Warn("strokeseg: region subsumed",
			"region", inner.String(), "by", outer.String())
		return -1, nil
	}

	for _, idx := range overlap {
		a.Retreat(idx)
		b.Retreat(idx)
	}

	best, err := rs.split(a, b, overlap)
	if err != nil {
		return -1, err
	}

	lower, upper := a, b
	if b.End() < a.End() {
		lower, upper = b, a
	}
	for lower.End() < best {
		fit, err := rs.model.Best(lower.Start(), lower.End()+1)
		if err != nil {
			return -1, err
		}
		if _, err := lower.ExpandTo(lower.End()+1, fit, false); err != nil {
			return -1, err
		}
	}
	for upper.Start() > best {
		fit, err := rs.model.Best(upper.Start()-1, upper.End())
		if err != nil {
			return -1, err
		}
		if _, err := upper.ExpandTo(upper.Start()-1, fit, false); err != nil {
			return -1, err
		}
	}

	rs.logger.Debug("strokeseg: contention resolved",
		"lower", lower.String(), "upper", upper.String(), "boundary", best)
	return best, nil
}

// split returns the overlap index minimizing the summed errors of both
// regions hypothetically extended to it. The first minimum wins.
func (rs *Resolver) split(a, b *Region, overlap []int) (int, error) {
	best := -1
	bestErr := math.Inf(1)
	for _, idx := range overlap {
		fa, err := rs.model.Best(min(a.Start(), idx), max(a.End(), idx))
		if err != nil {
			return -1, err
		}
		fb, err := rs.model.Best(min(b.Start(), idx), max(b.End(), idx))
		if err != nil {
			return -1, err
		}
		if sum := fa.Error + fb.Error; sum < bestErr {
			best, bestErr = idx, sum
		}
	}
	if best < 0 {
		return -1, &ContentionError{First: a.String(), Second: b.String(), Overlap: overlap}
	}
	return best, nil
}

// containment returns the region whose range lies within the other's, if
// any. When both ranges are equal the later region is the inner one.
func containment(a, b *Region) (inner, outer *Region) {
	switch {
	case b.Start() >= a.Start() && b.End() <= a.End():
		return b, a
	case a.Start() >= b.Start() && a.End() <= b.End():
		return a, b
	default:
		return nil, nil
	}
}

// String describes the contention for diagnostics.
func (c Contention) String() string {
	return fmt.Sprintf("Contention{%s, %s, overlap: %d}", c.A, c.B, len(c.Overlap))
}
