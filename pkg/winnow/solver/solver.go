package solver

import (
	"context"
	"errors"

	internal "github.com/constraint-foundry/winnow/internal/solver"
	"github.com/constraint-foundry/winnow/internal/satsolver"
	"github.com/constraint-foundry/winnow/pkg/winnow"
	"github.com/constraint-foundry/winnow/pkg/winnow/input"
)

// Stats carries search metrics gathered while producing a Solution.
type Stats struct {
	// Nodes is the number of assignment nodes visited by the
	// backtracking engine. It is zero when the SAT engine is used and
	// when infeasibility is proven during preprocessing.
	Nodes int64
}

// Solution is returned by the Solver when the engine executed
// successfully. A successful execution can still end in an error when
// no satisfying assignment exists.
type Solution struct {
	err        error
	assignment winnow.Assignment
	variables  []winnow.Variable
	stats      Stats
}

// Error returns the resolution error in case the problem is unsat.
// On successful resolution it returns nil.
func (s *Solution) Error() error {
	return s.err
}

// Assignment returns the satisfying assignment found by the engine,
// or nil when the problem is unsat.
func (s *Solution) Assignment() winnow.Assignment {
	return s.assignment
}

// ValueOf returns the value assigned to the given variable. It returns
// false when the variable has no binding in the solution.
func (s *Solution) ValueOf(v winnow.Variable) (winnow.Value, bool) {
	value, ok := s.assignment[v]
	return value, ok
}

// AllVariables returns the problem's variables in their declared
// order. Note: this is only present if the AddAllVariablesToSolution
// option is passed to the Solve call that generated the solution.
func (s *Solution) AllVariables() []winnow.Variable {
	return s.variables
}

// Stats returns the metrics gathered while producing the solution.
func (s *Solution) Stats() Stats {
	return s.stats
}

type solutionOptions struct {
	addVariablesToSolution bool
	useSATEngine           bool
	tracer                 winnow.Tracer
}

func (s *solutionOptions) apply(options ...Option) *solutionOptions {
	for _, applyOption := range options {
		applyOption(s)
	}
	return s
}

func defaultSolutionOptions() *solutionOptions {
	return &solutionOptions{}
}

type Option func(solutionOptions *solutionOptions)

// AddAllVariablesToSolution is a Solve option that instructs the
// solver to include the problem's variable list in the Solution it
// produces.
func AddAllVariablesToSolution() Option {
	return func(solutionOptions *solutionOptions) {
		solutionOptions.addVariablesToSolution = true
	}
}

// UseSATEngine is a Solve option that routes the problem through the
// clause-learning SAT engine instead of the default backtracking
// engine.
func UseSATEngine() Option {
	return func(solutionOptions *solutionOptions) {
		solutionOptions.useSATEngine = true
	}
}

// WithTracer is a Solve option attaching a tracer to the backtracking
// engine's search. It has no effect on the SAT engine.
func WithTracer(t winnow.Tracer) Option {
	return func(solutionOptions *solutionOptions) {
		solutionOptions.tracer = t
	}
}

// Solver produces a Solution (or an error if none can be produced) for
// the problem generated by a ProblemSource.
type Solver struct {
	problemSource input.ProblemSource
}

func NewSolver(problemSource input.ProblemSource) *Solver {
	return &Solver{
		problemSource: problemSource,
	}
}

func (d Solver) Solve(ctx context.Context, options ...Option) (*Solution, error) {
	solutionOpts := defaultSolutionOptions().apply(options...)

	problem, err := d.problemSource.GetProblem(ctx)
	if err != nil {
		return nil, err
	}

	counting := &internal.CountingTracer{}
	var engine internal.Solver
	if solutionOpts.useSATEngine {
		engine, err = satsolver.NewSolver(satsolver.WithProblem(problem))
	} else {
		tracer := winnow.Tracer(counting)
		if solutionOpts.tracer != nil {
			tracer = internal.TeeTracer{counting, solutionOpts.tracer}
		}
		engine, err = internal.NewSolver(internal.WithProblem(problem), internal.WithTracer(tracer))
	}
	if err != nil {
		return nil, err
	}

	assignment, err := engine.Solve(ctx)
	if err != nil && !errors.As(err, &winnow.NotSatisfiable{}) {
		return nil, err
	}

	solution := &Solution{
		assignment: assignment,
		stats:      Stats{Nodes: counting.Nodes()},
	}
	if err != nil {
		unsatError := winnow.NotSatisfiable{}
		errors.As(err, &unsatError)
		solution.err = unsatError
	}

	if solutionOpts.addVariablesToSolution {
		solution.variables = problem.Variables()
	}

	return solution, nil
}
