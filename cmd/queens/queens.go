package queens

import (
	"context"
	"fmt"
	"strings"

	"github.com/constraint-foundry/winnow/pkg/winnow"
	"github.com/constraint-foundry/winnow/pkg/winnow/constraint"
	"github.com/constraint-foundry/winnow/pkg/winnow/input"
)

// NewBoardSource adapts an n-queens board into a ProblemSource for the
// solver facade.
func NewBoardSource(n int) input.ProblemSource {
	return input.ProblemSourceFunc(func(_ context.Context) (winnow.Problem, error) {
		return EncodeProblem(n)
	})
}

// EncodeProblem encodes the n-queens board: one variable per row
// holding the queen's column, with pairwise constraints keeping every
// pair of queens off each other's column and diagonals.
func EncodeProblem(n int) (winnow.Problem, error) {
	if n < 1 {
		return nil, fmt.Errorf("board size must be positive, got %d", n)
	}

	b := input.NewProblemBuilder()
	row := func(i int) winnow.Variable {
		return winnow.Variable(fmt.Sprintf("R%d", i))
	}
	for i := 0; i < n; i++ {
		b.Variable(row(i), winnow.Range(0, winnow.Value(n)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			gap := winnow.Value(j - i)
			b.Constraint(constraint.Binary(row(i), row(j), func(upper, lower winnow.Value) bool {
				if upper == lower {
					return false
				}
				return upper-lower != gap && lower-upper != gap
			}))
		}
	}
	return b.Problem()
}

// FormatBoard renders a solved assignment as an ascii board, one rank
// per line with "Q" marking each queen.
func FormatBoard(n int, assignment winnow.Assignment) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		column := assignment[winnow.Variable(fmt.Sprintf("R%d", i))]
		for j := 0; j < n; j++ {
			if winnow.Value(j) == column {
				sb.WriteString("Q ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
