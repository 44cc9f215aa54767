package solver

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constraint-foundry/winnow/pkg/winnow"
	"github.com/constraint-foundry/winnow/pkg/winnow/constraint"
	"github.com/constraint-foundry/winnow/pkg/winnow/input"
)

// spyProblem counts completeness tests so the visited-node accounting
// can be asserted directly.
type spyProblem struct {
	winnow.Problem
	isCompleteCalls int
}

func (s *spyProblem) IsComplete(assignment winnow.Assignment) bool {
	s.isCompleteCalls++
	return s.Problem.IsComplete(assignment)
}

func TestSolveNotEqualPair(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("X", winnow.Range(1, 4))
		b.Variable("Y", winnow.Range(1, 4))
		b.Constraint(constraint.NotEqual("X", "Y"))
	})

	s, err := NewSolver(WithProblem(problem))
	require.NoError(t, err)
	assignment, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Len(t, assignment, 2)
	assert.NotEqual(assignment["X"], assignment["Y"])
}

func TestSolveDeterministicSearch(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("X", winnow.Range(1, 4))
		b.Variable("Y", winnow.Range(1, 4))
		b.Constraint(constraint.NotEqual("X", "Y"))
	})

	tracer := &CountingTracer{}
	s, err := NewSolver(WithProblem(problem), WithTracer(tracer))
	require.NoError(t, err)
	assignment, err := s.Solve(context.Background())
	require.NoError(t, err)

	// MRV breaks the size tie towards X, LCV breaks the score tie
	// towards 1, forward checking trims Y to {2, 3}, and the first
	// recursion assigns Y=2: three nodes visited in total.
	assert.Equal(winnow.Assignment{"X": 1, "Y": 2}, assignment)
	assert.Equal(int64(3), tracer.Nodes())
}

func TestSolveUnsatisfiableByPreprocessing(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("Z", winnow.NewDomain(5))
		b.Constraint(constraint.Exclude("Z", 5))
	})
	spy := &spyProblem{Problem: problem}
	tracer := &CountingTracer{}

	s, err := NewSolver(WithProblem(spy), WithTracer(tracer))
	require.NoError(t, err)
	assignment, err := s.Solve(context.Background())

	assert.Nil(assignment)
	var unsat winnow.NotSatisfiable
	require.ErrorAs(t, err, &unsat)
	assert.Equal(winnow.NotSatisfiable{"Z"}, unsat)

	// infeasibility proven before search: no node ever visited
	assert.Zero(spy.isCompleteCalls)
	assert.Zero(tracer.Nodes())
}

func TestSolveUnsatisfiableAfterExhaustion(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("X", winnow.NewDomain(1))
		b.Variable("Y", winnow.NewDomain(1))
		b.Constraint(constraint.NotEqual("X", "Y"))
	})
	spy := &spyProblem{Problem: problem}
	tracer := &CountingTracer{}

	s, err := NewSolver(WithProblem(spy), WithTracer(tracer))
	require.NoError(t, err)
	_, err = s.Solve(context.Background())

	var unsat winnow.NotSatisfiable
	require.ErrorAs(t, err, &unsat)
	assert.Empty(unsat)

	// only the root is visited: X=1 is pruned by forward checking
	// before recursing, so the pruned child is never counted
	assert.Equal(1, spy.isCompleteCalls)
	assert.Equal(int64(1), tracer.Nodes())
}

func TestSolveSoundness(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("a", winnow.Range(0, 5))
		b.Variable("b", winnow.Range(0, 5))
		b.Variable("c", winnow.Range(0, 5))
		b.Constraint(constraint.Unary("a", func(v winnow.Value) bool { return v >= 2 }))
		b.Constraint(constraint.AllDifferent("a", "b", "c")...)
		b.Constraint(constraint.Binary("b", "c", func(x, y winnow.Value) bool { return x < y }))
	})

	s, err := NewSolver(WithProblem(problem))
	require.NoError(t, err)
	assignment, err := s.Solve(context.Background())
	require.NoError(t, err)

	assert.True(assignment["a"] >= 2)
	assert.True(assignment["b"] < assignment["c"])
	assert.NotEqual(assignment["a"], assignment["b"])
	assert.NotEqual(assignment["a"], assignment["c"])
}

func TestSolveCompletenessCheckPerVisitedNode(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("a", winnow.Range(0, 4))
		b.Variable("b", winnow.Range(0, 4))
		b.Variable("c", winnow.Range(0, 4))
		b.Constraint(constraint.AllDifferent("a", "b", "c")...)
	})
	spy := &spyProblem{Problem: problem}
	tracer := &CountingTracer{}

	s, err := NewSolver(WithProblem(spy), WithTracer(tracer))
	require.NoError(t, err)
	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	assert.Positive(spy.isCompleteCalls)
	assert.Equal(int64(spy.isCompleteCalls), tracer.Nodes())
}

func TestSolveCancelledContext(t *testing.T) {
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("X", winnow.Range(1, 4))
		b.Variable("Y", winnow.Range(1, 4))
		b.Constraint(constraint.NotEqual("X", "Y"))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := NewSolver(WithProblem(problem))
	require.NoError(t, err)
	_, err = s.Solve(ctx)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestNewSolverRequiresProblem(t *testing.T) {
	_, err := NewSolver()
	assert.Error(t, err)
}

func TestLoggingTracer(t *testing.T) {
	var buf bytes.Buffer
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("X", winnow.NewDomain(1))
	})

	s, err := NewSolver(WithProblem(problem), WithTracer(LoggingTracer{Writer: &buf}))
	require.NoError(t, err)
	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "depth=0 assignment={}")
	assert.Contains(t, buf.String(), "depth=1 assignment={X=1}")
}
