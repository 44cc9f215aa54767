package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/constraint-foundry/winnow/pkg/winnow"
)

var ErrIncomplete = errors.New("cancelled before a solution could be found")

type Solver interface {
	Solve(ctx context.Context) (winnow.Assignment, error)
}

type solver struct {
	problem winnow.Problem
	tracer  winnow.Tracer
}

// Solve searches for a complete assignment satisfying every constraint
// of the solver's problem. It returns winnow.NotSatisfiable when the
// problem is proven to have no solution, either during preprocessing
// or after exhausting the search tree, and ErrIncomplete when the
// provided Context is cancelled mid-search.
func (s *solver) Solve(ctx context.Context) (winnow.Assignment, error) {
	ok, emptied := oneConsistency(s.problem)
	if !ok {
		// infeasible before any node is visited: the tracer never
		// fires and no completeness test is made
		return nil, winnow.NotSatisfiable(emptied)
	}

	domains := make(map[winnow.Variable]winnow.Domain, len(s.problem.Variables()))
	for _, v := range s.problem.Variables() {
		domains[v] = s.problem.Domains()[v].Copy()
	}

	result, err := s.backtrack(ctx, winnow.Assignment{}, domains, 0)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, winnow.NotSatisfiable{}
	}
	return result, nil
}

// backtrack is the recursive search step. The assignment and domains
// it receives are owned by this call: branch points hand independent
// copies to each child, so backtracking is simply returning.
//
// Every call traces and completeness-checks its node exactly once,
// before anything else; branches rejected by forward checking are
// discarded without recursing, so they are never traced or
// completeness-checked.
func (s *solver) backtrack(ctx context.Context, assignment winnow.Assignment, domains map[winnow.Variable]winnow.Domain, depth int) (winnow.Assignment, error) {
	if ctx.Err() != nil {
		return nil, ErrIncomplete
	}

	s.tracer.Trace(searchPosition{assignment: assignment, depth: depth})
	if s.problem.IsComplete(assignment) {
		if s.problem.SatisfiesConstraints(assignment) {
			return assignment, nil
		}
		return nil, nil
	}

	variable := minimumRemainingValues(s.problem, domains)
	for _, value := range leastRestrainingValues(s.problem, variable, domains) {
		extended := assignment.Extend(variable, value)
		narrowed := copyDomainsWithout(domains, variable)
		if !forwardCheck(s.problem, variable, value, narrowed) {
			continue
		}
		result, err := s.backtrack(ctx, extended, narrowed, depth+1)
		if err != nil {
			return nil, err
		}
		if result != nil {
			// first solution wins, remaining candidates are not tried
			return result, nil
		}
	}
	return nil, nil
}

// copyDomainsWithout deep-copies a domains map, dropping the entry for
// the variable being assigned.
func copyDomainsWithout(domains map[winnow.Variable]winnow.Domain, assigned winnow.Variable) map[winnow.Variable]winnow.Domain {
	next := make(map[winnow.Variable]winnow.Domain, len(domains))
	for v, d := range domains {
		if v == assigned {
			continue
		}
		next[v] = d.Copy()
	}
	return next
}

func NewSolver(options ...Option) (Solver, error) {
	s := solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *solver) error

func WithProblem(problem winnow.Problem) Option {
	return func(s *solver) error {
		if problem == nil {
			return fmt.Errorf("problem must not be nil")
		}
		s.problem = problem
		return nil
	}
}

func WithTracer(t winnow.Tracer) Option {
	return func(s *solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.problem == nil {
			return fmt.Errorf("a problem is required: see WithProblem")
		}
		return nil
	},
	func(s *solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}
