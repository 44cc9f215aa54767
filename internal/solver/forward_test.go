package solver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/constraint-foundry/winnow/pkg/winnow"
	"github.com/constraint-foundry/winnow/pkg/winnow/constraint"
	"github.com/constraint-foundry/winnow/pkg/winnow/input"
)

func TestForwardCheckFiltersNeighborDomains(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("x", winnow.Range(1, 4))
		b.Variable("y", winnow.Range(1, 4))
		b.Variable("z", winnow.Range(1, 4))
		b.Constraint(constraint.NotEqual("x", "y"))
	})
	domains := map[winnow.Variable]winnow.Domain{
		"y": winnow.Range(1, 4),
		"z": winnow.Range(1, 4),
	}

	assert.True(forwardCheck(problem, "x", 1, domains))
	assert.ElementsMatch([]winnow.Value{2, 3}, domains["y"].Values())
	// z is not constrained against x and must be untouched
	assert.Equal(3, domains["z"].Len())
}

func TestForwardCheckDetectsDeadBranch(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("x", winnow.Range(1, 4))
		b.Variable("y", winnow.NewDomain(1))
		b.Constraint(constraint.NotEqual("x", "y"))
	})
	domains := map[winnow.Variable]winnow.Domain{
		"y": winnow.NewDomain(1),
	}

	assert.False(forwardCheck(problem, "x", 1, domains))
	// the emptied result is never written back
	assert.Equal(1, domains["y"].Len())
}

func TestForwardCheckSkipsAssignedNeighbors(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("x", winnow.Range(1, 4))
		b.Variable("y", winnow.Range(1, 4))
		b.Constraint(constraint.NotEqual("x", "y"))
	})
	// y is already assigned: no entry in the live domains
	domains := map[winnow.Variable]winnow.Domain{}

	assert.True(forwardCheck(problem, "x", 1, domains))
	assert.Empty(domains)
}

func TestForwardCheckRespectsDeclaredOrder(t *testing.T) {
	assert := assert.New(t)
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("x", winnow.Range(0, 10))
		b.Variable("y", winnow.Range(0, 10))
		b.Constraint(constraint.Binary("x", "y", func(a, b winnow.Value) bool { return a < b }))
	})
	domains := map[winnow.Variable]winnow.Domain{
		"y": winnow.NewDomain(3, 7),
	}

	// condition runs as (value of x, value of y): 5 < 7 holds, 5 < 3 does not
	assert.True(forwardCheck(problem, "x", 5, domains))
	assert.ElementsMatch([]winnow.Value{7}, domains["y"].Values())

	// propagating from the second endpoint flips the argument positions
	domains = map[winnow.Variable]winnow.Domain{
		"x": winnow.NewDomain(3, 7),
	}
	assert.True(forwardCheck(problem, "y", 5, domains))
	assert.ElementsMatch([]winnow.Value{3}, domains["x"].Values())
}

func TestForwardCheckCopyIsolation(t *testing.T) {
	problem := buildProblem(t, func(b *input.ProblemBuilder) {
		b.Variable("x", winnow.Range(1, 4))
		b.Variable("y", winnow.Range(1, 4))
		b.Constraint(constraint.NotEqual("x", "y"))
	})
	original := map[winnow.Variable]winnow.Domain{
		"x": winnow.Range(1, 4),
		"y": winnow.Range(1, 4),
	}
	snapshot := copyDomainsWithout(original, "")

	branch := copyDomainsWithout(original, "x")
	assert.True(t, forwardCheck(problem, "x", 1, branch))

	// the branch's pruning is invisible to the caller's map
	if diff := cmp.Diff(snapshot, original); diff != "" {
		t.Errorf("caller's domains mutated (-want +got):\n%s", diff)
	}
}
