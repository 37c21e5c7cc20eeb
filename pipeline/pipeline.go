// Package pipeline runs named chains of transforms described in YAML.
//
// A pipeline file lists steps in application order:
//
//	steps:
//	  - op: grayscale
//	  - op: brightness
//	    delta: 50
//	  - op: contrast
//	    factor: 1.5
//
// Each step consumes the previous step's output grid; no step mutates its
// input, so a failed run leaves the original grid untouched.
package pipeline

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pipeline validation errors.
var (
	// ErrNoSteps is returned for a pipeline with an empty step list.
	ErrNoSteps = errors.New("pipeline: no steps defined")

	// ErrUnknownOp is returned when a step names an operation that does not
	// exist.
	ErrUnknownOp = errors.New("pipeline: unknown operation")
)

// Operation names accepted in a step's op field.
const (
	OpGrayscale      = "grayscale"
	OpFlipHorizontal = "flip-horizontal"
	OpFlipVertical   = "flip-vertical"
	OpBrightness     = "brightness"
	OpContrast       = "contrast"
	OpBlur           = "blur"
	OpRotate90       = "rotate90"
)

// knownOps is the set of valid operation names.
var knownOps = map[string]bool{
	OpGrayscale:      true,
	OpFlipHorizontal: true,
	OpFlipVertical:   true,
	OpBrightness:     true,
	OpContrast:       true,
	OpBlur:           true,
	OpRotate90:       true,
}

// Step is one transform application in a pipeline. Delta applies only to
// brightness, Factor only to contrast; both are ignored elsewhere.
type Step struct {
	Op     string  `yaml:"op"`
	Delta  int     `yaml:"delta"`
	Factor float64 `yaml:"factor"`
}

// Spec is an ordered list of steps parsed from a pipeline file.
type Spec struct {
	Steps []Step `yaml:"steps"`
}

// Parse unmarshals and validates a YAML pipeline description.
// Returns ErrNoSteps for an empty step list and ErrUnknownOp (wrapped with
// the offending name and position) for an unrecognized operation.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("pipeline: parse failed: %w", err)
	}

	if len(spec.Steps) == 0 {
		return nil, ErrNoSteps
	}
	for i, step := range spec.Steps {
		if !knownOps[step.Op] {
			return nil, fmt.Errorf("%w: %q (step %d)", ErrUnknownOp, step.Op, i+1)
		}
	}

	return &spec, nil
}

// Load reads and parses the pipeline file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read %s: %w", path, err)
	}
	return Parse(data)
}
