// Package config loads segmentation parameters from YAML files.
//
// Keys use the established hs-* parameter names so existing parameter
// files keep working. Absent keys keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/strokeseg"
	"gopkg.in/yaml.v3"
)

// DefaultFileYAML is a documented configuration with every default spelled out.
const DefaultFileYAML = `# strokeseg configuration

# Points slower than the mean speed times this value are slow. Range [0, 1].
hs-speed-mult: 0.75

# Maximum fit error tolerated by greedy expansion. Range [0, 100].
hs-error-tolerance: 60

# Draw the original ink under the fitted primitives in previews.
show-raw-ink: true

# Euclidean window for curvature when annotating raw points.
curvature-window: 24

# Growth steps allowed per region; 0 picks a bound from the stroke size.
max-region-steps: 0

# Error increase above which a finishing region drops its last sample.
trim-threshold: 0
`

// File models a strokeseg YAML configuration file. Pointer fields
// distinguish absent keys from explicit zero values.
type File struct {
	SpeedMultiplier *float64 `yaml:"hs-speed-mult"`
	ErrorTolerance  *float64 `yaml:"hs-error-tolerance"`
	ShowRawInk      *bool    `yaml:"show-raw-ink"`
	CurvatureWindow *float64 `yaml:"curvature-window"`
	MaxRegionSteps  *int     `yaml:"max-region-steps"`
	TrimThreshold   *float64 `yaml:"trim-threshold"`
}

// Load reads and validates the configuration at path.
func Load(path string) (strokeseg.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return strokeseg.Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return strokeseg.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a YAML configuration, applies it over the defaults and
// validates the result. An empty document yields the defaults.
func Decode(r io.Reader) (strokeseg.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return strokeseg.Config{}, err
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return strokeseg.Config{}, err
	}

	cfg := file.Apply(strokeseg.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return strokeseg.Config{}, err
	}
	return cfg, nil
}

// Apply overrides the fields of base that are present in the file.
func (f File) Apply(base strokeseg.Config) strokeseg.Config {
	if f.SpeedMultiplier != nil {
		base.SpeedMultiplier = *f.SpeedMultiplier
	}
	if f.ErrorTolerance != nil {
		base.ErrorTolerance = *f.ErrorTolerance
	}
	if f.ShowRawInk != nil {
		base.ShowRawInk = *f.ShowRawInk
	}
	if f.CurvatureWindow != nil {
		base.CurvatureWindow = *f.CurvatureWindow
	}
	if f.MaxRegionSteps != nil {
		base.MaxRegionSteps = *f.MaxRegionSteps
	}
	if f.TrimThreshold != nil {
		base.TrimThreshold = *f.TrimThreshold
	}
	return base
}

// WriteDefault writes DefaultFileYAML to path unless a file already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(DefaultFileYAML), 0o644)
}
