package strokeseg

import "fmt"

// Default parameter values.
const (
	DefaultSpeedMultiplier = 0.75
	DefaultErrorTolerance  = 60.0
	DefaultCurvatureWindow = 24.0
)

// Config holds the tunable parameters of a Segmenter.
type Config struct {
	// SpeedMultiplier scales the mean stroke speed into the slow-point
	// threshold. Range [0, 1].
	SpeedMultiplier float64

	// ErrorTolerance is the maximum fit error at which greedy expansion
	// still accepts a sample. Range [0, 100].
	ErrorTolerance float64

	// ShowRawInk asks renderers to draw the original ink under the fitted
	// primitives. The segmenter itself ignores it.
	ShowRawInk bool

	// CurvatureWindow is the Euclidean window used when annotating raw
	// points with curvature.
	CurvatureWindow float64

	// MaxRegionSteps caps the growth steps of one region. Zero selects
	// 2n+2 for a stroke of n samples, which growth can never exceed.
	MaxRegionSteps int

	// TrimThreshold is the error increase above which the last growth step
	// of a finishing region is undone.
	TrimThreshold float64
}

// DefaultConfig returns the default parameters.
func DefaultConfig() Config {
	return Config{
		SpeedMultiplier: DefaultSpeedMultiplier,
		ErrorTolerance:  DefaultErrorTolerance,
		ShowRawInk:      true,
		CurvatureWindow: DefaultCurvatureWindow,
	}
}

// Validate checks every parameter against its documented range.
func (c Config) Validate() error {
	if err := bounded("speed multiplier", c.SpeedMultiplier, 0, 1); err != nil {
		return err
	}
	if err := bounded("error tolerance", c.ErrorTolerance, 0, 100); err != nil {
		return err
	}
	if !(c.CurvatureWindow > 0) || !isFinite(c.CurvatureWindow) {
		return fmt.Errorf("%w: curvature window %v must be positive", ErrInvalidConfig, c.CurvatureWindow)
	}
	if c.MaxRegionSteps < 0 {
		return fmt.Errorf("%w: max region steps %d must not be negative", ErrInvalidConfig, c.MaxRegionSteps)
	}
	if !(c.TrimThreshold >= 0) || !isFinite(c.TrimThreshold) {
		return fmt.Errorf("%w: trim threshold %v must not be negative", ErrInvalidConfig, c.TrimThreshold)
	}
	return nil
}

func bounded(name string, v, lo, hi float64) error {
	if !(v >= lo && v <= hi) {
		return fmt.Errorf("%w: %s %v outside [%v, %v]", ErrInvalidConfig, name, v, lo, hi)
	}
	return nil
}
