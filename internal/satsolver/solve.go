package satsolver

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"

	"github.com/constraint-foundry/winnow/internal/solver"
	"github.com/constraint-foundry/winnow/pkg/winnow"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
	unknown       = 0
)

var _ solver.Solver = &satSolver{}

// satSolver answers the same question as the backtracking engine by
// encoding the finite-domain problem directly into SAT: it serves as a
// cross-check oracle and as an alternative engine for problems whose
// conflict structure suits clause learning better than search.
type satSolver struct {
	g       inter.S
	problem winnow.Problem
}

// Solve encodes the problem and asks the underlying SAT solver for a
// model. Solutions are reconstructed from the model; unsatisfiability
// maps to winnow.NotSatisfiable and cancellation to
// solver.ErrIncomplete.
func (s *satSolver) Solve(ctx context.Context) (winnow.Assignment, error) {
	litMap, err := newLitMapping(s.problem)
	if err != nil {
		return nil, err
	}

	result, err := s.solve(ctx, litMap)

	// This likely indicates a bug, so discard whatever
	// return values were produced.
	if derr := litMap.Error(); derr != nil {
		return nil, derr
	}

	return result, err
}

func (s *satSolver) solve(ctx context.Context, litMap *litMapping) (winnow.Assignment, error) {
	if ctx.Err() != nil {
		return nil, solver.ErrIncomplete
	}

	// teach all clauses to the solver and assume they hold
	litMap.AddConstraints(s.g)
	litMap.AssumeConstraints(s.g)

	switch s.g.Solve() {
	case satisfiable:
		return litMap.AssignmentOf(s.g), nil
	case unsatisfiable:
		return nil, winnow.NotSatisfiable{}
	}
	return nil, solver.ErrIncomplete
}

func NewSolver(options ...Option) (solver.Solver, error) {
	s := satSolver{g: gini.New()}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *satSolver) error

func WithProblem(problem winnow.Problem) Option {
	return func(s *satSolver) error {
		if problem == nil {
			return fmt.Errorf("problem must not be nil")
		}
		s.problem = problem
		return nil
	}
}

var defaults = []Option{
	func(s *satSolver) error {
		if s.problem == nil {
			return fmt.Errorf("a problem is required: see WithProblem")
		}
		return nil
	},
}
