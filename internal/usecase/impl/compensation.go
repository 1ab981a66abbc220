package impl

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/pkg/errors"
)

type compensation struct {
	name string
	undo func(ctx context.Context) error
}

// compensationStack records how to undo each completed step of a multi-step
// workflow. Steps are undone in reverse order of completion.
type compensationStack struct {
	steps []compensation
}

func (s *compensationStack) push(name string, undo func(ctx context.Context) error) {
	s.steps = append(s.steps, compensation{name: name, undo: undo})
}

func (s *compensationStack) len() int {
	return len(s.steps)
}

// unwind runs every compensation even when some fail, and empties the stack.
// The request context may already be cancelled, so undo steps run detached
// from its cancellation.
func (s *compensationStack) unwind(ctx context.Context, logger *slog.Logger) error {
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := step.undo(ctx); err != nil {
			logger.Error("Compensation failed", slog.String("step", step.name), slog.Any("error", err))
			errs = append(errs, errors.Wrap(err, step.name))

			continue
		}
		logger.Debug("Compensation applied", slog.String("step", step.name))
	}
	s.steps = nil

	return stderrors.Join(errs...)
}
