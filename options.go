package strokeseg

import "log/slog"

// Option configures a Segmenter during creation.
// Use functional options to customize segmentation behavior.
//
// Example:
//
//	// Default parameters
//	seg, err := strokeseg.New()
//
//	// Stricter fitting and a renderer downstream
//	seg, err := strokeseg.New(
//	    strokeseg.WithErrorTolerance(25),
//	    strokeseg.WithSink(canvas),
//	)
type Option func(*segmenterOptions)

// segmenterOptions holds optional configuration for Segmenter creation.
type segmenterOptions struct {
	config Config
	logger *slog.Logger
	sinks  []Sink
}

// defaultOptions returns the default segmenter options.
func defaultOptions() segmenterOptions {
	return segmenterOptions{
		config: DefaultConfig(),
		logger: nil, // Will fall back to the package logger if nil
	}
}

// WithConfig replaces the whole parameter set.
func WithConfig(c Config) Option {
	return func(o *segmenterOptions) {
		o.config = c
	}
}

// WithSpeedMultiplier sets the slow-point threshold multiplier.
func WithSpeedMultiplier(m float64) Option {
	return func(o *segmenterOptions) {
		o.config.SpeedMultiplier = m
	}
}

// WithErrorTolerance sets the fit acceptance threshold.
func WithErrorTolerance(tol float64) Option {
	return func(o *segmenterOptions) {
		o.config.ErrorTolerance = tol
	}
}

// WithShowRawInk sets the pass-through display flag for renderers.
func WithShowRawInk(show bool) Option {
	return func(o *segmenterOptions) {
		o.config.ShowRawInk = show
	}
}

// WithCurvatureWindow sets the Euclidean curvature window used by
// SegmentPoints.
func WithCurvatureWindow(w float64) Option {
	return func(o *segmenterOptions) {
		o.config.CurvatureWindow = w
	}
}

// WithMaxRegionSteps caps the growth steps of each region.
func WithMaxRegionSteps(n int) Option {
	return func(o *segmenterOptions) {
		o.config.MaxRegionSteps = n
	}
}

// WithTrimThreshold sets the error increase that finishing regions undo.
func WithTrimThreshold(t float64) Option {
	return func(o *segmenterOptions) {
		o.config.TrimThreshold = t
	}
}

// WithLogger sets a logger for this Segmenter only, overriding the
// package logger installed by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *segmenterOptions) {
		o.logger = l
	}
}

// WithSink adds a collaborator that receives every successful result.
// Sinks are called in the order they were added.
func WithSink(s Sink) Option {
	return func(o *segmenterOptions) {
		if s != nil {
			o.sinks = append(o.sinks, s)
		}
	}
}
