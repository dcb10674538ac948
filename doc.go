// Package strokeseg segments freehand pen strokes into lines and arcs.
//
// # Overview
//
// A finished stroke is an ordered sequence of samples annotated with speed
// and curvature. strokeseg partitions its index range into maximal runs
// that a single straight line or circular arc approximates well, for
// downstream shape recognition and constraint solving.
//
// # Quick Start
//
//	seg, err := strokeseg.New()
//	if err != nil {
//	    return err
//	}
//
//	// Samples already annotated by a preprocessor
//	res, err := seg.Segment(ctx, strokeseg.NewStroke(samples))
//
//	// Or raw positions and timestamps
//	res, err = seg.SegmentPoints(ctx, points)
//
//	for _, s := range res.Segments {
//	    fmt.Println(s.Start, s.End, s.Kind, s.Error)
//	}
//
// # Algorithm
//
// Segmentation runs in three stages:
//   - Seeds: samples slower than a fraction of the mean speed mark likely
//     corners; the fastest sample between two consecutive slow points seeds
//     a region.
//   - Growth: every region greedily claims the neighbor with the lower fit
//     error while the error stays below the tolerance, then trims a tail
//     whose error kept rising.
//   - Resolution: overlapping regions are arbitrated largest overlap first;
//     each pair ends up sharing exactly one boundary sample.
//
// Fits compare a line through the range ends with the median-radius circle
// through the range ends and each interior sample. Arc errors carry a 1.5
// penalty and ranges shorter than MinArcLength are always lines.
//
// # Errors
//
// Segmentation never terminates the process. A stroke that cannot be
// partitioned returns an error wrapping one of the package's sentinel
// errors, and the full region state is logged at error level.
//
// # Coordinate System
//
// Coordinates are taken as given. Arc sweeps are signed counter-clockwise
// in a y-up frame, which reads as clockwise on a y-down screen.
package strokeseg
