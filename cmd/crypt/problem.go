package crypt

import (
	"context"
	"fmt"

	"github.com/constraint-foundry/winnow/pkg/winnow"
	"github.com/constraint-foundry/winnow/pkg/winnow/constraint"
	"github.com/constraint-foundry/winnow/pkg/winnow/input"
)

// The column addition a + b + carryIn is encoded through an auxiliary
// tuple variable whose value packs all three summands into one integer:
//
//	t = a*20 + b*2 + carryIn
//
// Binary constraints then tie each component of t to the letter or
// carry variable it packs, and tie the column's result digit and
// carry-out to the decomposed sum. Packing keeps every constraint
// binary without weakening the column relation: a tuple value fixes
// the full column at once, so no inconsistent (a, b, carryIn)
// combination survives forward checking.
const (
	tupleBase  = 20
	digitCount = 10
)

func tupleA(t winnow.Value) winnow.Value     { return t / tupleBase }
func tupleB(t winnow.Value) winnow.Value     { return (t % tupleBase) / 2 }
func tupleCarry(t winnow.Value) winnow.Value { return t % 2 }

func tupleSum(t winnow.Value) winnow.Value {
	return tupleA(t) + tupleB(t) + tupleCarry(t)
}

// NewPuzzleSource adapts a parsed puzzle into a ProblemSource for the
// solver facade.
func NewPuzzleSource(p *Puzzle) input.ProblemSource {
	return input.ProblemSourceFunc(func(_ context.Context) (winnow.Problem, error) {
		return EncodeProblem(p)
	})
}

// EncodeProblem encodes a puzzle as a finite-domain problem: one
// variable per distinct letter over the digits 0-9, a binary carry
// variable between adjacent columns, and one tuple variable per
// column. Distinct letters take distinct digits and leading letters
// are non-zero.
func EncodeProblem(p *Puzzle) (winnow.Problem, error) {
	b := input.NewProblemBuilder()

	letters := p.Letters()
	letterVars := make([]winnow.Variable, len(letters))
	for i, letter := range letters {
		letterVars[i] = winnow.Variable(letter)
		b.Variable(letterVars[i], winnow.Range(0, digitCount))
	}

	columns := len(p.RHS)
	for _, term := range p.LHS {
		if len(term) > columns {
			columns = len(term)
		}
	}

	carry := func(i int) winnow.Variable {
		return winnow.Variable(fmt.Sprintf("C%d", i))
	}
	tuple := func(i int) winnow.Variable {
		return winnow.Variable(fmt.Sprintf("T%d", i))
	}
	for i := 0; i <= columns; i++ {
		b.Variable(carry(i), winnow.NewDomain(0, 1))
	}
	for i := 0; i < columns; i++ {
		l0, has0 := letterAt(p.LHS[0], i)
		l1, has1 := letterAt(p.LHS[1], i)
		b.Variable(tuple(i), tupleDomain(has0, has1))

		if has0 {
			b.Constraint(constraint.Binary(l0, tuple(i), func(digit, t winnow.Value) bool {
				return tupleA(t) == digit
			}))
		}
		if has1 {
			b.Constraint(constraint.Binary(l1, tuple(i), func(digit, t winnow.Value) bool {
				return tupleB(t) == digit
			}))
		}
		b.Constraint(constraint.Binary(carry(i), tuple(i), func(in, t winnow.Value) bool {
			return tupleCarry(t) == in
		}))
		if lr, ok := letterAt(p.RHS, i); ok {
			b.Constraint(constraint.Binary(lr, tuple(i), func(digit, t winnow.Value) bool {
				return tupleSum(t)%digitCount == digit
			}))
		} else {
			// The result has no digit in this column, so the column
			// must sum to a bare carry.
			b.Constraint(constraint.Unary(tuple(i), func(t winnow.Value) bool {
				return tupleSum(t)%digitCount == 0
			}))
		}
		b.Constraint(constraint.Binary(carry(i+1), tuple(i), func(out, t winnow.Value) bool {
			return tupleSum(t)/digitCount == out
		}))
	}

	// There is nothing to carry into the lowest column, and a carry out
	// of the highest column would mean the result is too short.
	b.Constraint(constraint.Pin(carry(0), 0))
	b.Constraint(constraint.Pin(carry(columns), 0))

	b.Constraint(constraint.AllDifferent(letterVars...)...)
	for _, term := range []string{p.LHS[0], p.LHS[1], p.RHS} {
		if len(term) > 1 {
			b.Constraint(constraint.Exclude(winnow.Variable(term[:1]), 0))
		}
	}

	return b.Problem()
}

// letterAt returns the term's letter at the given column, counting
// columns from the least significant digit.
func letterAt(term string, column int) (winnow.Variable, bool) {
	if column >= len(term) {
		return "", false
	}
	return winnow.Variable(term[len(term)-1-column : len(term)-column]), true
}

// tupleDomain enumerates the packed values of every (a, b, carryIn)
// combination admissible for a column; a missing summand contributes
// zero.
func tupleDomain(has0, has1 bool) winnow.Domain {
	d := winnow.NewDomain()
	aMax, bMax := 1, 1
	if has0 {
		aMax = digitCount
	}
	if has1 {
		bMax = digitCount
	}
	for a := 0; a < aMax; a++ {
		for c := 0; c < bMax; c++ {
			for in := 0; in <= 1; in++ {
				d.Add(winnow.Value(a*tupleBase + c*2 + in))
			}
		}
	}
	return d
}
