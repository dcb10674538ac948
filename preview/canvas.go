// Package preview renders segmented strokes to images.
//
// A Canvas collects strokes as a strokeseg.Sink and rasterizes them on
// demand: the raw ink in gray, line segments in blue, arc segments in red,
// seeds as black dots and each segment's index next to its start.
package preview

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/gogpu/strokeseg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Colors used by the canvas.
var (
	BackgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	InkColor        = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	LineColor       = color.RGBA{R: 0x20, G: 0x40, B: 0xe0, A: 0xff}
	ArcColor        = color.RGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0xff}
	SeedColor       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	LabelColor      = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
)

// flattenTolerance is the maximum device-space deviation of flattened arcs.
const flattenTolerance = 0.25

// Canvas accumulates segmented strokes and renders them into one image.
// It implements strokeseg.Sink and is safe for concurrent use.
type Canvas struct {
	width, height int
	showRawInk    bool

	// LineWidth is the width of fitted primitives in pixels.
	LineWidth float64

	// Margin is the empty border around the drawing in pixels.
	Margin float64

	mu      sync.Mutex
	entries []entry
}

type entry struct {
	stroke strokeseg.Stroke
	res    strokeseg.Result
}

// NewCanvas creates a canvas of the given size. With showRawInk set the
// original samples are drawn beneath the fitted primitives.
func NewCanvas(width, height int, showRawInk bool) *Canvas {
	return &Canvas{
		width:      width,
		height:     height,
		showRawInk: showRawInk,
		LineWidth:  2,
		Margin:     16,
	}
}

// Consume records a segmented stroke for rendering.
func (c *Canvas) Consume(_ context.Context, stroke strokeseg.Stroke, res *strokeseg.Result) error {
	e := entry{stroke: stroke}
	if res != nil {
		e.res = strokeseg.Result{
			Segments: append([]strokeseg.Segment(nil), res.Segments...),
			Seeds:    append([]int(nil), res.Seeds...),
			Subsumed: res.Subsumed,
		}
	}
	c.mu.Lock()
	c.entries = append(c.entries, e)
	c.mu.Unlock()
	return nil
}

// Len returns the number of recorded strokes.
func (c *Canvas) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Image renders all recorded strokes, scaled uniformly to fit the canvas.
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	entries := append([]entry(nil), c.entries...)
	c.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, xdraw.Src)
	if len(entries) == 0 || c.width <= 0 || c.height <= 0 {
		return img
	}

	tr := c.fit(entries)
	for _, e := range entries {
		c.drawEntry(img, tr, e)
	}
	return img
}

// WritePNG renders the canvas and encodes it as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// transform maps stroke coordinates to device pixels.
type transform struct {
	origin strokeseg.Point
	scale  float64
	offset point
}

func (t transform) apply(p strokeseg.Point) point {
	return point{
		X: t.offset.X + (p.X-t.origin.X)*t.scale,
		Y: t.offset.Y + (p.Y-t.origin.Y)*t.scale,
	}
}

// fit computes the transform placing the union of all stroke bounds inside
// the canvas margins.
func (c *Canvas) fit(entries []entry) transform {
	var bounds strokeseg.Rect
	first := true
	for _, e := range entries {
		if e.stroke.Len() == 0 {
			continue
		}
		if first {
			bounds = e.stroke.Bounds()
			first = false
			continue
		}
		bounds = bounds.Union(e.stroke.Bounds())
	}

	availW := math.Max(float64(c.width)-2*c.Margin, 1)
	availH := math.Max(float64(c.height)-2*c.Margin, 1)
	scale := 1.0
	switch w, h := bounds.Width(), bounds.Height(); {
	case w > 0 && h > 0:
		scale = math.Min(availW/w, availH/h)
	case w > 0:
		scale = availW / w
	case h > 0:
		scale = availH / h
	}
	offset := point{
		X: (float64(c.width) - bounds.Width()*scale) / 2,
		Y: (float64(c.height) - bounds.Height()*scale) / 2,
	}
	return transform{origin: bounds.Min, scale: scale, offset: offset}
}

func (c *Canvas) drawEntry(img *image.RGBA, tr transform, e entry) {
	n := e.stroke.Len()
	if n == 0 {
		return
	}
	if c.showRawInk {
		ink := make([]point, n)
		for i := 0; i < n; i++ {
			ink[i] = tr.apply(e.stroke.Point(i))
		}
		fill(img, InkColor, func(z *vector.Rasterizer) {
			strokePolyline(z, ink, math.Max(c.LineWidth/2, 1))
		})
	}

	for _, seg := range e.res.Segments {
		var pts []point
		col := LineColor
		if seg.Kind == strokeseg.PrimitiveArc {
			col = ArcColor
			for _, p := range seg.Arc.Flatten(flattenTolerance / tr.scale) {
				pts = append(pts, tr.apply(p))
			}
		} else {
			pts = []point{tr.apply(seg.Line.P1), tr.apply(seg.Line.P2)}
		}
		fill(img, col, func(z *vector.Rasterizer) {
			strokePolyline(z, pts, c.LineWidth)
		})
	}

	fill(img, SeedColor, func(z *vector.Rasterizer) {
		for _, idx := range e.res.Seeds {
			if idx >= 0 && idx < n {
				disc(z, tr.apply(e.stroke.Point(idx)), c.LineWidth*1.5)
			}
		}
	})

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelColor),
		Face: basicfont.Face7x13,
	}
	for i, seg := range e.res.Segments {
		if seg.Start < 0 || seg.Start >= n {
			continue
		}
		p := tr.apply(e.stroke.Point(seg.Start))
		d.Dot = fixed.P(int(p.X)+4, int(p.Y)-4)
		d.DrawString(strconv.Itoa(i))
	}
}

// fill rasterizes the path built by build over the whole image in col.
func fill(img *image.RGBA, col color.Color, build func(z *vector.Rasterizer)) {
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = xdraw.Over
	build(z)
	z.Draw(img, b, image.NewUniform(col), image.Point{})
}
