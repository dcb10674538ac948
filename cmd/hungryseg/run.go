package main

import (
	"context"
	"fmt"
	"io"

	"github.com/gogpu/strokeseg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// run segments every stroke of in. Failed strokes are reported with their
// error and skipped; they never abort the remaining strokes.
func run(ctx context.Context, seg *strokeseg.Segmenter, in *inputFile) *outputFile {
	out := &outputFile{Strokes: make([]strokeReport, 0, len(in.Strokes))}
	for i, s := range in.Strokes {
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("stroke-%d", i)
		}
		report := strokeReport{ID: id, Segments: []segmentJSON{}}

		var (
			res *strokeseg.Result
			err error
		)
		if len(s.Samples) > 0 {
			report.Samples = len(s.Samples)
			res, err = seg.Segment(ctx, s.stroke())
		} else {
			report.Samples = len(s.Points)
			res, err = seg.SegmentPoints(ctx, s.points())
		}
		if err != nil {
			report.Error = err.Error()
			out.Strokes = append(out.Strokes, report)
			continue
		}

		report.Seeds = res.Seeds
		report.Subsumed = res.Subsumed
		for _, segment := range res.Segments {
			report.Segments = append(report.Segments, newSegmentJSON(segment))
		}
		out.Strokes = append(out.Strokes, report)
	}
	return out
}

// summary aggregates an output document.
type summary struct {
	strokes, samples, lines, arcs, skipped int
}

func summarize(out *outputFile) summary {
	var s summary
	for _, r := range out.Strokes {
		s.strokes++
		s.samples += r.Samples
		if r.Error != "" {
			s.skipped++
			continue
		}
		for _, seg := range r.Segments {
			if seg.Kind == strokeseg.PrimitiveArc.String() {
				s.arcs++
			} else {
				s.lines++
			}
		}
	}
	return s
}

// printSummary writes a one-line summary with grouped numbers.
func printSummary(w io.Writer, out *outputFile) {
	s := summarize(out)
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%d strokes, %d samples: %d lines, %d arcs, %d skipped\n",
		s.strokes, s.samples, s.lines, s.arcs, s.skipped)
}
