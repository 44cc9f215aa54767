package input

import (
	"context"

	"github.com/constraint-foundry/winnow/pkg/winnow"
)

// ProblemSource produces a fully populated problem for the engine.
// Encoders (cryptarithmetic, n-queens, ...) implement this interface.
type ProblemSource interface {
	GetProblem(ctx context.Context) (winnow.Problem, error)
}

// ProblemSourceFunc adapts a plain function into a ProblemSource.
type ProblemSourceFunc func(ctx context.Context) (winnow.Problem, error)

func (f ProblemSourceFunc) GetProblem(ctx context.Context) (winnow.Problem, error) {
	return f(ctx)
}
