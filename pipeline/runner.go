package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pixproc/grid"
	"pixproc/logging"
	"pixproc/transform"
)

// Runner applies pipeline specs to grids, logging each step under a short
// per-run id.
type Runner struct {
	logger *logging.Logger
}

// NewRunner builds a Runner that logs through the given logger.
func NewRunner(logger *logging.Logger) *Runner {
	return &Runner{logger: logger}
}

// newRunID generates a short unique id for correlating a run's log entries.
func newRunID() string {
	return uuid.New().String()[:8]
}

// Run applies every step of the spec in order and returns the final grid.
// The input grid is never mutated; each step's output feeds the next step.
// The first failing step aborts the run with its error.
func (r *Runner) Run(spec *Spec, in *grid.Grid) (*grid.Grid, error) {
	if spec == nil || len(spec.Steps) == 0 {
		return nil, ErrNoSteps
	}

	runID := newRunID()
	r.logger.Info("pipeline started",
		zap.String("run_id", runID),
		zap.Int("steps", len(spec.Steps)),
	)

	current := in
	for i, step := range spec.Steps {
		start := time.Now()

		next, err := applyStep(step, current)
		if err != nil {
			r.logger.Error("pipeline step failed",
				zap.String("run_id", runID),
				zap.Int("step", i+1),
				zap.String("op", step.Op),
				zap.Error(err),
			)
			return nil, fmt.Errorf("pipeline: step %d (%s): %w", i+1, step.Op, err)
		}

		r.logger.Debug("pipeline step applied",
			zap.String("run_id", runID),
			zap.Int("step", i+1),
			zap.String("op", step.Op),
			zap.Int("width", next.Width),
			zap.Int("height", next.Height),
			zap.Int("channels", next.Channels),
			zap.Duration("elapsed", time.Since(start)),
		)
		current = next
	}

	r.logger.Info("pipeline finished",
		zap.String("run_id", runID),
		zap.Int("width", current.Width),
		zap.Int("height", current.Height),
		zap.Int("channels", current.Channels),
	)
	return current, nil
}

// applyStep dispatches a single step to its transform.
func applyStep(step Step, in *grid.Grid) (*grid.Grid, error) {
	switch step.Op {
	case OpGrayscale:
		return transform.Grayscale(in)
	case OpFlipHorizontal:
		return transform.FlipHorizontal(in)
	case OpFlipVertical:
		return transform.FlipVertical(in)
	case OpBrightness:
		return transform.Brightness(in, step.Delta)
	case OpContrast:
		return transform.Contrast(in, step.Factor)
	case OpBlur:
		return transform.Blur(in)
	case OpRotate90:
		return transform.Rotate90(in)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
}
