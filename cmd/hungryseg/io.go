package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/strokeseg"
	"github.com/gogpu/strokeseg/preview"
)

// inputFile is the JSON document read by hungryseg.
type inputFile struct {
	Strokes []inputStroke `json:"strokes"`
}

// inputStroke carries either annotated samples or raw timed points.
// Samples win when both are present.
type inputStroke struct {
	ID      string       `json:"id"`
	Samples []sampleJSON `json:"samples,omitempty"`
	Points  []pointJSON  `json:"points,omitempty"`
}

type sampleJSON struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Speed     float64 `json:"speed"`
	Curvature float64 `json:"curvature"`
	T         float64 `json:"t"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T float64 `json:"t"`
}

// outputFile is the JSON document written by hungryseg.
type outputFile struct {
	Strokes []strokeReport `json:"strokes"`
}

type strokeReport struct {
	ID       string        `json:"id"`
	Samples  int           `json:"samples"`
	Seeds    []int         `json:"seeds,omitempty"`
	Segments []segmentJSON `json:"segments"`
	Subsumed int           `json:"subsumed,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type segmentJSON struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Kind  string    `json:"kind"`
	Error float64   `json:"error"`
	Line  *lineJSON `json:"line,omitempty"`
	Arc   *arcJSON  `json:"arc,omitempty"`
}

type lineJSON struct {
	P1 [2]float64 `json:"p1"`
	P2 [2]float64 `json:"p2"`
}

type arcJSON struct {
	Center [2]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Start  [2]float64 `json:"start"`
	Mid    [2]float64 `json:"mid"`
	End    [2]float64 `json:"end"`
}

func xy(p strokeseg.Point) [2]float64 {
	return [2]float64{p.X, p.Y}
}

// stroke converts annotated samples into a stroke.
func (s inputStroke) stroke() strokeseg.Stroke {
	samples := make([]strokeseg.Sample, len(s.Samples))
	for i, smp := range s.Samples {
		samples[i] = strokeseg.Sample{X: smp.X, Y: smp.Y, Speed: smp.Speed, Curvature: smp.Curvature, T: smp.T}
	}
	return strokeseg.NewStroke(samples)
}

// points converts raw points for annotation.
func (s inputStroke) points() []strokeseg.TimedPoint {
	pts := make([]strokeseg.TimedPoint, len(s.Points))
	for i, p := range s.Points {
		pts[i] = strokeseg.TimedPoint{X: p.X, Y: p.Y, T: p.T}
	}
	return pts
}

func newSegmentJSON(s strokeseg.Segment) segmentJSON {
	out := segmentJSON{Start: s.Start, End: s.End, Kind: s.Kind.String(), Error: s.Error}
	if math.IsInf(out.Error, 0) || math.IsNaN(out.Error) {
		// JSON has no representation for these.
		out.Error = -1
	}
	switch s.Kind {
	case strokeseg.PrimitiveArc:
		out.Arc = &arcJSON{
			Center: xy(s.Arc.Center),
			Radius: s.Arc.Radius,
			Start:  xy(s.Arc.Start),
			Mid:    xy(s.Arc.Mid),
			End:    xy(s.Arc.End),
		}
	default:
		out.Line = &lineJSON{P1: xy(s.Line.P1), P2: xy(s.Line.P2)}
	}
	return out
}

func readInput(path string) (*inputFile, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return decodeInput(r)
}

func decodeInput(r io.Reader) (*inputFile, error) {
	var in inputFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decode strokes: %w", err)
	}
	return &in, nil
}

func writeOutput(path string, out *outputFile) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return encodeOutput(w, out)
}

func encodeOutput(w io.Writer, out *outputFile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func savePNG(path string, canvas *preview.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := canvas.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
